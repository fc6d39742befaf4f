// Package inmem provides a dao.Store that keeps everything in memory. It is
// lost when the server stops.
package inmem

import (
	"fmt"

	"github.com/dekarrin/marlin/server/dao"
)

type store struct {
	users   *InMemoryUsersRepository
	queries *InMemoryQueriesRepository
}

// NewDatastore returns an empty store. Deleting a user deletes their saved
// queries and changing a user's ID moves their saved queries with them.
func NewDatastore() dao.Store {
	st := &store{
		users:   NewUsersRepository(),
		queries: NewQueriesRepository(),
	}
	st.users.owned = st.queries
	return st
}

func (s *store) Users() dao.UserRepository {
	return s.users
}

func (s *store) Queries() dao.QueryRepository {
	return s.queries
}

func (s *store) Close() error {
	var err error

	if nextErr := s.users.Close(); nextErr != nil {
		err = fmt.Errorf("users: %w", nextErr)
	}
	if nextErr := s.queries.Close(); nextErr != nil {
		if err != nil {
			err = fmt.Errorf("%s\nadditionally, queries: %w", err, nextErr)
		} else {
			err = fmt.Errorf("queries: %w", nextErr)
		}
	}

	return err
}
