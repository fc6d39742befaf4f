package sqlite

import (
	"context"
	"net/mail"
	"testing"

	"github.com/dekarrin/marlin/server/dao"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) dao.Store {
	st, err := NewDatastore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func Test_UsersDB(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := newTestStore(t).Users()

	email, err := mail.ParseAddress("jsmith@example.com")
	require.NoError(t, err)

	created, err := repo.Create(ctx, dao.User{Username: "jsmith", Password: "hash", Email: email, Role: dao.Admin})
	require.NoError(t, err)
	assert.NotEqual(uuid.Nil, created.ID)
	assert.Equal(dao.Admin, created.Role)
	assert.Equal("jsmith@example.com", created.Email.Address)
	assert.True(created.LastLoginTime.IsZero())

	_, err = repo.Create(ctx, dao.User{Username: "jsmith"})
	assert.ErrorIs(err, dao.ErrConstraintViolation)

	byName, err := repo.GetByUsername(ctx, "jsmith")
	assert.NoError(err)
	assert.Equal(created.ID, byName.ID)

	renamed := created
	renamed.Username = "jsmith2"
	renamed.Email = nil
	updated, err := repo.Update(ctx, created.ID, renamed)
	require.NoError(t, err)
	assert.Equal("jsmith2", updated.Username)
	assert.Nil(updated.Email)

	_, err = repo.Update(ctx, uuid.New(), renamed)
	assert.ErrorIs(err, dao.ErrNotFound)

	_, err = repo.Create(ctx, dao.User{Username: "other"})
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	assert.NoError(err)
	assert.Len(all, 2)

	_, err = repo.Delete(ctx, created.ID)
	assert.NoError(err)
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)
}

func Test_QueriesDB(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	st := newTestStore(t)

	owner, err := st.Users().Create(ctx, dao.User{Username: "owner"})
	require.NoError(t, err)

	_, err = st.Queries().Create(ctx, dao.SavedQuery{UserID: uuid.New(), Name: "orphan", Kind: "query"})
	assert.ErrorIs(err, dao.ErrConstraintViolation, "user must exist")

	diags := []dao.Diagnostic{
		{Message: "expected '}'", Found: "end of input", Start: 24, End: 24},
	}
	first, err := st.Queries().Create(ctx, dao.SavedQuery{
		UserID:      owner.ID,
		Name:        "broken",
		Kind:        "query",
		Source:      "SELECT * WHERE { ?s ?p ",
		Diagnostics: diags,
	})
	require.NoError(t, err)
	assert.Equal(diags, first.Diagnostics)

	second, err := st.Queries().Create(ctx, dao.SavedQuery{
		UserID: owner.ID,
		Name:   "clear",
		Kind:   "update",
		Source: "CLEAR ALL",
	})
	require.NoError(t, err)
	assert.Nil(second.Diagnostics)

	got, err := st.Queries().GetByID(ctx, first.ID)
	assert.NoError(err)
	assert.Equal(first, got)

	all, err := st.Queries().GetAllByUser(ctx, owner.ID)
	assert.NoError(err)
	if assert.Len(all, 2) {
		assert.Equal("broken", all[0].Name)
		assert.Equal("clear", all[1].Name)
	}

	_, err = st.Queries().Delete(ctx, first.ID)
	assert.NoError(err)
	_, err = st.Queries().Delete(ctx, first.ID)
	assert.ErrorIs(err, dao.ErrNotFound)

	// removing the owner removes what they saved
	_, err = st.Users().Delete(ctx, owner.ID)
	require.NoError(t, err)
	_, err = st.Queries().GetByID(ctx, second.ID)
	assert.ErrorIs(err, dao.ErrNotFound)
}
