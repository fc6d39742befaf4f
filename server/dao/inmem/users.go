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

// NewUsersRepository returns an empty user repository that is not linked to
// any saved queries.
func NewUsersRepository() *InMemoryUsersRepository {
	return &InMemoryUsersRepository{
		users:  make(map[uuid.UUID]dao.User),
		byName: make(map[string]uuid.UUID),
	}
}

// InMemoryUsersRepository is a dao.UserRepository backed by maps. When it is
// part of a store, changing or deleting a user carries over to that user's
// saved queries the same way the SQLite store's foreign key does.
type InMemoryUsersRepository struct {
	mu     sync.RWMutex
	users  map[uuid.UUID]dao.User
	byName map[string]uuid.UUID

	// owned is nil outside of a store.
	owned *InMemoryQueriesRepository
}

func (imur *InMemoryUsersRepository) Close() error {
	return nil
}

// taken returns whether a username or ID is used by a user other than the
// one with ID self.
func (imur *InMemoryUsersRepository) taken(self uuid.UUID, id uuid.UUID, username string) bool {
	if owner, ok := imur.byName[username]; ok && owner != self {
		return true
	}
	if _, ok := imur.users[id]; ok && id != self {
		return true
	}
	return false
}

func (imur *InMemoryUsersRepository) put(u dao.User) {
	imur.users[u.ID] = u
	imur.byName[u.Username] = u.ID
}

func (imur *InMemoryUsersRepository) remove(u dao.User) {
	delete(imur.users, u.ID)
	delete(imur.byName, u.Username)
}

func (imur *InMemoryUsersRepository) Create(ctx context.Context, user dao.User) (dao.User, error) {
	imur.mu.Lock()
	defer imur.mu.Unlock()

	id, err := uuid.NewRandom()
	if err != nil {
		return dao.User{}, fmt.Errorf("generate ID: %w", err)
	}
	if imur.taken(uuid.Nil, id, user.Username) {
		return dao.User{}, dao.ErrConstraintViolation
	}

	now := time.Now()
	user.ID = id
	user.Created, user.Modified = now, now
	user.LastLogoutTime, user.LastLoginTime = now, time.Time{}

	imur.put(user)
	return user, nil
}

// GetAll returns every user ordered by ID.
func (imur *InMemoryUsersRepository) GetAll(ctx context.Context) ([]dao.User, error) {
	imur.mu.RLock()
	defer imur.mu.RUnlock()

	all := make([]dao.User, 0, len(imur.users))
	for _, u := range imur.users {
		all = append(all, u)
	}

	return util.SortBy(all, func(l, r dao.User) bool {
		return l.ID.String() < r.ID.String()
	}), nil
}

func (imur *InMemoryUsersRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.User, error) {
	imur.mu.RLock()
	defer imur.mu.RUnlock()

	if u, ok := imur.users[id]; ok {
		return u, nil
	}
	return dao.User{}, dao.ErrNotFound
}

func (imur *InMemoryUsersRepository) GetByUsername(ctx context.Context, username string) (dao.User, error) {
	imur.mu.RLock()
	defer imur.mu.RUnlock()

	if id, ok := imur.byName[username]; ok {
		return imur.users[id], nil
	}
	return dao.User{}, dao.ErrNotFound
}

func (imur *InMemoryUsersRepository) Update(ctx context.Context, id uuid.UUID, user dao.User) (dao.User, error) {
	imur.mu.Lock()
	defer imur.mu.Unlock()

	existing, ok := imur.users[id]
	if !ok {
		return dao.User{}, dao.ErrNotFound
	}
	if imur.taken(id, user.ID, user.Username) {
		return dao.User{}, dao.ErrConstraintViolation
	}

	user.Created = existing.Created
	user.Modified = time.Now()

	imur.remove(existing)
	imur.put(user)

	if imur.owned != nil && user.ID != id {
		imur.owned.reassign(id, user.ID)
	}
	return user, nil
}

func (imur *InMemoryUsersRepository) Delete(ctx context.Context, id uuid.UUID) (dao.User, error) {
	imur.mu.Lock()
	defer imur.mu.Unlock()

	u, ok := imur.users[id]
	if !ok {
		return dao.User{}, dao.ErrNotFound
	}
	imur.remove(u)

	if imur.owned != nil {
		imur.owned.reassign(id, uuid.Nil)
	}
	return u, nil
}
