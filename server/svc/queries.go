package svc

import (
	"context"
	"errors"
	"strings"

	"github.com/dekarrin/marlin/parse"
	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/serr"
	"github.com/google/uuid"
)

// MaxSourceLen is the longest SPARQL text, in bytes, that the service will
// parse or save.
const MaxSourceLen = 1 << 20

// Parse parses text as the named kind of request, "query" or "update". An
// empty kind means "query". Syntax errors in text are not an error here; they
// are reported in the diagnostics of the result.
//
// The returned error matches serr.ErrBadArgument if kind is unknown or text
// is too long.
func (svc Service) Parse(kind, text string) (parse.Result, parse.Mode, error) {
	mode, err := parseKind(kind)
	if err != nil {
		return parse.Result{}, mode, err
	}
	if len(text) > MaxSourceLen {
		return parse.Result{}, mode, serr.New("text is too long", serr.ErrBadArgument)
	}

	return parse.ParseAs(mode, text), mode, nil
}

func parseKind(kind string) (parse.Mode, error) {
	if kind == "" {
		return parse.Query, nil
	}
	mode, ok := parse.ParseMode(strings.ToLower(kind))
	if !ok {
		return mode, serr.New("kind must be \"query\" or \"update\"", serr.ErrBadArgument)
	}
	return mode, nil
}

// SaveQuery parses text and stores it for the given user along with the
// diagnostics from parsing it. Text with syntax errors is saved all the same.
//
// The returned error matches serr.ErrBadArgument if an argument is invalid,
// serr.ErrNotFound if the owner does not exist and serr.ErrDB for problems
// with persistence.
func (svc Service) SaveQuery(ctx context.Context, owner uuid.UUID, name, kind, text string) (dao.SavedQuery, error) {
	if strings.TrimSpace(name) == "" {
		return dao.SavedQuery{}, serr.New("name cannot be blank", serr.ErrBadArgument)
	}

	res, mode, err := svc.Parse(kind, text)
	if err != nil {
		return dao.SavedQuery{}, err
	}

	if _, err := svc.GetUser(ctx, owner); err != nil {
		return dao.SavedQuery{}, err
	}

	saved, err := svc.DB.Queries().Create(ctx, dao.SavedQuery{
		UserID:      owner,
		Name:        name,
		Kind:        mode.String(),
		Source:      text,
		Diagnostics: toDAODiagnostics(res.Diagnostics),
	})
	if err != nil {
		if errors.Is(err, dao.ErrConstraintViolation) {
			return dao.SavedQuery{}, serr.New("owner does not exist", serr.ErrNotFound)
		}
		return dao.SavedQuery{}, serr.WrapDB("could not save query", err)
	}

	return saved, nil
}

// GetQuery returns the saved query with the given ID.
//
// The returned error matches serr.ErrNotFound if there is no such query and
// serr.ErrDB for problems with persistence.
func (svc Service) GetQuery(ctx context.Context, id uuid.UUID) (dao.SavedQuery, error) {
	q, err := svc.DB.Queries().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.SavedQuery{}, serr.ErrNotFound
		}
		return dao.SavedQuery{}, serr.WrapDB("could not get query", err)
	}
	return q, nil
}

// GetUserQueries returns every query saved by the given user, oldest first.
func (svc Service) GetUserQueries(ctx context.Context, owner uuid.UUID) ([]dao.SavedQuery, error) {
	all, err := svc.DB.Queries().GetAllByUser(ctx, owner)
	if err != nil {
		return nil, serr.WrapDB("could not get queries", err)
	}
	return all, nil
}

// DeleteQuery deletes the saved query with the given ID and returns it.
//
// The returned error matches serr.ErrNotFound if there is no such query and
// serr.ErrDB for problems with persistence.
func (svc Service) DeleteQuery(ctx context.Context, id uuid.UUID) (dao.SavedQuery, error) {
	q, err := svc.DB.Queries().Delete(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.SavedQuery{}, serr.ErrNotFound
		}
		return dao.SavedQuery{}, serr.WrapDB("could not delete query", err)
	}
	return q, nil
}

// Reparse parses a saved query again with the current parser.
func (svc Service) Reparse(q dao.SavedQuery) parse.Result {
	mode, _ := parse.ParseMode(q.Kind)
	return parse.ParseAs(mode, q.Source)
}

func toDAODiagnostics(diags []parse.Diagnostic) []dao.Diagnostic {
	if len(diags) == 0 {
		return nil
	}
	out := make([]dao.Diagnostic, len(diags))
	for i, d := range diags {
		out[i] = dao.Diagnostic{
			Message: d.Message,
			Found:   d.Found,
			Start:   d.Span.Start,
			End:     d.Span.End,
		}
	}
	return out
}
