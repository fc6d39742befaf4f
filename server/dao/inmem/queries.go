package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dekarrin/marlin/internal/util"
	"github.com/dekarrin/marlin/server/dao"
	"github.com/google/uuid"
)

func NewQueriesRepository() *InMemoryQueriesRepository {
	return &InMemoryQueriesRepository{
		queries: make(map[uuid.UUID]dao.SavedQuery),
		seq:     make(map[uuid.UUID]int),
	}
}

type InMemoryQueriesRepository struct {
	mu      sync.RWMutex
	queries map[uuid.UUID]dao.SavedQuery

	// creation order, so listings come back oldest first even when two
	// queries share a timestamp.
	seq   map[uuid.UUID]int
	count int
}

func (imqr *InMemoryQueriesRepository) Close() error {
	return nil
}

func (imqr *InMemoryQueriesRepository) Create(ctx context.Context, q dao.SavedQuery) (dao.SavedQuery, error) {
	imqr.mu.Lock()
	defer imqr.mu.Unlock()

	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.SavedQuery{}, fmt.Errorf("generate ID: %w", err)
	}

	q.ID = newUUID
	q.Created = time.Now()
	q.Diagnostics = copyDiags(q.Diagnostics)

	imqr.queries[q.ID] = q
	imqr.seq[q.ID] = imqr.count
	imqr.count++

	return q, nil
}

func (imqr *InMemoryQueriesRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.SavedQuery, error) {
	imqr.mu.RLock()
	defer imqr.mu.RUnlock()

	q, ok := imqr.queries[id]
	if !ok {
		return dao.SavedQuery{}, dao.ErrNotFound
	}

	q.Diagnostics = copyDiags(q.Diagnostics)
	return q, nil
}

func (imqr *InMemoryQueriesRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]dao.SavedQuery, error) {
	imqr.mu.RLock()
	defer imqr.mu.RUnlock()

	var all []dao.SavedQuery
	for _, q := range imqr.queries {
		if q.UserID == userID {
			q.Diagnostics = copyDiags(q.Diagnostics)
			all = append(all, q)
		}
	}

	all = util.SortBy(all, func(l, r dao.SavedQuery) bool {
		return imqr.seq[l.ID] < imqr.seq[r.ID]
	})

	return all, nil
}

func (imqr *InMemoryQueriesRepository) Delete(ctx context.Context, id uuid.UUID) (dao.SavedQuery, error) {
	imqr.mu.Lock()
	defer imqr.mu.Unlock()

	q, ok := imqr.queries[id]
	if !ok {
		return dao.SavedQuery{}, dao.ErrNotFound
	}

	delete(imqr.queries, id)
	delete(imqr.seq, id)

	return q, nil
}

// reassign moves every query owned by from to the user to. Queries are
// deleted instead if to is uuid.Nil.
func (imqr *InMemoryQueriesRepository) reassign(from, to uuid.UUID) {
	imqr.mu.Lock()
	defer imqr.mu.Unlock()

	for id, q := range imqr.queries {
		if q.UserID != from {
			continue
		}
		if to == uuid.Nil {
			delete(imqr.queries, id)
			delete(imqr.seq, id)
			continue
		}
		q.UserID = to
		imqr.queries[id] = q
	}
}

func copyDiags(diags []dao.Diagnostic) []dao.Diagnostic {
	if diags == nil {
		return nil
	}
	cp := make([]dao.Diagnostic, len(diags))
	copy(cp, diags)
	return cp
}
