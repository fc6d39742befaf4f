package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dekarrin/marlin/parse"
	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/result"
	"github.com/dekarrin/marlin/server/serr"
	"github.com/google/uuid"
)

// wantsTree returns whether the "tree" query parameter asks for a syntax
// tree in the response.
func wantsTree(req *http.Request) bool {
	v, err := strconv.ParseBool(req.URL.Query().Get("tree"))
	return err == nil && v
}

// HTTPGetAllQueries returns a HandlerFunc that lists the saved queries of the
// logged-in user. An admin may give the "user" query parameter to list the
// queries of someone else.
//
// The request context must hold the logged-in user.
func (api API) HTTPGetAllQueries() http.HandlerFunc {
	return api.endpoint(api.epGetAllQueries)
}

func (api API) epGetAllQueries(req *http.Request) result.Result {
	user := requestUser(req)

	owner := user.ID
	if ownerStr := req.URL.Query().Get("user"); ownerStr != "" {
		var err error
		owner, err = uuid.Parse(ownerStr)
		if err != nil {
			return result.BadRequest("user: not a valid UUID", "user param: %s", err.Error())
		}
		if owner != user.ID && user.Role != dao.Admin {
			return result.Forbidden("user '%s' (role %s) list queries of %s: forbidden", user.Username, user.Role, owner)
		}
	}

	all, err := api.Backend.GetUserQueries(req.Context(), owner)
	if err != nil {
		return result.InternalServerError(err.Error())
	}

	resp := make([]QueryModel, len(all))
	for i := range all {
		resp[i] = queryModel(all[i], nil)
	}

	return result.OK(resp, "user '%s' got %d saved queries", user.Username, len(resp))
}

// HTTPCreateQuery returns a HandlerFunc that parses and saves a query for the
// logged-in user.
//
// The request context must hold the logged-in user.
func (api API) HTTPCreateQuery() http.HandlerFunc {
	return api.endpoint(api.epCreateQuery)
}

func (api API) epCreateQuery(req *http.Request) result.Result {
	user := requestUser(req)

	var createReq QueryRequest
	if err := parseJSON(req, &createReq); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	saved, err := api.Backend.SaveQuery(req.Context(), user.ID, createReq.Name, createReq.Kind, createReq.Source)
	if err != nil {
		if errors.Is(err, serr.ErrBadArgument) {
			return result.BadRequest(err.Error(), err.Error())
		}
		return result.InternalServerError(err.Error())
	}

	var res *parse.Result
	if wantsTree(req) {
		r := api.Backend.Reparse(saved)
		res = &r
	}

	resp := queryModel(saved, res)
	return result.Created(resp, "user '%s' saved query %s with %d error(s)", user.Username, resp.ID, len(resp.Diagnostics))
}

// getOwnQuery gets the query named in the URI, checking that the logged-in
// user may see it. Non-admins get an HTTP-404 for queries of other users so
// that their IDs are not revealed.
func (api API) getOwnQuery(req *http.Request, action string) (dao.SavedQuery, *result.Result) {
	id := requireIDParam(req)
	user := requestUser(req)

	q, err := api.Backend.GetQuery(req.Context(), id)
	if err != nil {
		var r result.Result
		if errors.Is(err, serr.ErrNotFound) {
			r = result.NotFound()
		} else {
			r = result.InternalServerError(err.Error())
		}
		return q, &r
	}

	if q.UserID != user.ID && user.Role != dao.Admin {
		r := result.NotFound("user '%s' (role %s) %s query %s of another user", user.Username, user.Role, action, id)
		return q, &r
	}

	return q, nil
}

// HTTPGetQuery returns a HandlerFunc that gets one saved query. Giving the
// "tree" query parameter also returns its syntax tree.
//
// The request context must hold the logged-in user and the URI must hold the
// ID of the query.
func (api API) HTTPGetQuery() http.HandlerFunc {
	return api.endpoint(api.epGetQuery)
}

func (api API) epGetQuery(req *http.Request) result.Result {
	q, errResult := api.getOwnQuery(req, "get")
	if errResult != nil {
		return *errResult
	}

	var res *parse.Result
	if wantsTree(req) {
		r := api.Backend.Reparse(q)
		res = &r
	}

	return result.OK(queryModel(q, res), "user '%s' got query %s", requestUser(req).Username, q.ID)
}

// HTTPDeleteQuery returns a HandlerFunc that deletes one saved query.
//
// The request context must hold the logged-in user and the URI must hold the
// ID of the query.
func (api API) HTTPDeleteQuery() http.HandlerFunc {
	return api.endpoint(api.epDeleteQuery)
}

func (api API) epDeleteQuery(req *http.Request) result.Result {
	q, errResult := api.getOwnQuery(req, "delete")
	if errResult != nil {
		return *errResult
	}

	if _, err := api.Backend.DeleteQuery(req.Context(), q.ID); err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		}
		return result.InternalServerError(err.Error())
	}

	return result.NoContent("user '%s' deleted query %s", requestUser(req).Username, q.ID)
}
