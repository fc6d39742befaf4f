package inmem

import (
	"context"
	"testing"

	"github.com/dekarrin/marlin/server/dao"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_UsersRepository(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepository()

	created, err := repo.Create(ctx, dao.User{Username: "jsmith", Password: "hash", Role: dao.Normal})
	require.NoError(t, err)
	assert.NotEqual(uuid.Nil, created.ID)
	assert.False(created.Created.IsZero())

	_, err = repo.Create(ctx, dao.User{Username: "jsmith"})
	assert.ErrorIs(err, dao.ErrConstraintViolation)

	byName, err := repo.GetByUsername(ctx, "jsmith")
	assert.NoError(err)
	assert.Equal(created, byName)

	// rename and re-id
	newID := uuid.New()
	renamed := created
	renamed.ID = newID
	renamed.Username = "jsmith2"
	updated, err := repo.Update(ctx, created.ID, renamed)
	require.NoError(t, err)
	assert.Equal("jsmith2", updated.Username)
	assert.Equal(created.Created, updated.Created)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)
	_, err = repo.GetByUsername(ctx, "jsmith")
	assert.ErrorIs(err, dao.ErrNotFound)

	other, err := repo.Create(ctx, dao.User{Username: "other"})
	require.NoError(t, err)
	clash := other
	clash.Username = "jsmith2"
	_, err = repo.Update(ctx, other.ID, clash)
	assert.ErrorIs(err, dao.ErrConstraintViolation)

	all, err := repo.GetAll(ctx)
	assert.NoError(err)
	assert.Len(all, 2)

	deleted, err := repo.Delete(ctx, newID)
	assert.NoError(err)
	assert.Equal("jsmith2", deleted.Username)
	_, err = repo.Delete(ctx, newID)
	assert.ErrorIs(err, dao.ErrNotFound)
}

func Test_QueriesRepository(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewQueriesRepository()

	owner := uuid.New()
	diags := []dao.Diagnostic{{Message: "expected '}'", Found: "end of input", Start: 9, End: 9}}

	first, err := repo.Create(ctx, dao.SavedQuery{UserID: owner, Name: "a", Kind: "query", Source: "ASK { ?s", Diagnostics: diags})
	require.NoError(t, err)
	second, err := repo.Create(ctx, dao.SavedQuery{UserID: owner, Name: "b", Kind: "update", Source: "CLEAR ALL"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, dao.SavedQuery{UserID: uuid.New(), Name: "c", Kind: "query", Source: "ASK {}"})
	require.NoError(t, err)

	// stored diagnostics are not shared with the caller
	diags[0].Message = "changed"

	got, err := repo.GetByID(ctx, first.ID)
	assert.NoError(err)
	assert.Equal("expected '}'", got.Diagnostics[0].Message)

	mine, err := repo.GetAllByUser(ctx, owner)
	assert.NoError(err)
	if assert.Len(mine, 2) {
		assert.Equal(first.ID, mine[0].ID)
		assert.Equal(second.ID, mine[1].ID)
	}

	_, err = repo.Delete(ctx, first.ID)
	assert.NoError(err)
	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(err, dao.ErrNotFound)
	_, err = repo.Delete(ctx, first.ID)
	assert.ErrorIs(err, dao.ErrNotFound)
}

func Test_Datastore_QueriesFollowOwner(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	st := NewDatastore()

	u, err := st.Users().Create(ctx, dao.User{Username: "owner"})
	require.NoError(t, err)
	q, err := st.Queries().Create(ctx, dao.SavedQuery{UserID: u.ID, Name: "q", Kind: "query", Source: "ASK {}"})
	require.NoError(t, err)

	moved := u
	moved.ID = uuid.New()
	_, err = st.Users().Update(ctx, u.ID, moved)
	require.NoError(t, err)

	got, err := st.Queries().GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(moved.ID, got.UserID)

	_, err = st.Users().Delete(ctx, moved.ID)
	require.NoError(t, err)

	_, err = st.Queries().GetByID(ctx, q.ID)
	assert.ErrorIs(err, dao.ErrNotFound)
}
