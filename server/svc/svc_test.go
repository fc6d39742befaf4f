package svc

import (
	"context"
	"testing"

	"github.com/dekarrin/marlin/internal/grammar"
	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/dao/inmem"
	"github.com/dekarrin/marlin/server/serr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() Service {
	a := grammar.NewAnalysis(grammar.SPARQL(), "QueryUnit", "UpdateUnit")
	a.Precompute()
	return Service{
		DB:       inmem.NewDatastore(),
		Grammar:  a,
		HashCost: bcrypt.MinCost,
	}
}

func Test_Service_LoginLogout(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	user, err := svc.CreateUser(ctx, "jsmith", "hunter2", "jsmith@example.com", dao.Normal)
	require.NoError(t, err)
	assert.NotEqual("hunter2", user.Password)

	_, err = svc.Login(ctx, "jsmith", "wrong")
	assert.ErrorIs(err, serr.ErrBadCredentials)
	_, err = svc.Login(ctx, "nobody", "hunter2")
	assert.ErrorIs(err, serr.ErrBadCredentials)

	loggedIn, err := svc.Login(ctx, "jsmith", "hunter2")
	require.NoError(t, err)
	assert.False(loggedIn.LastLoginTime.IsZero())

	loggedOut, err := svc.Logout(ctx, user.ID)
	require.NoError(t, err)
	assert.False(loggedOut.LastLogoutTime.Before(loggedIn.LastLoginTime))

	_, err = svc.Logout(ctx, uuid.New())
	assert.ErrorIs(err, serr.ErrNotFound)
}

func Test_Service_CreateUser(t *testing.T) {
	testCases := []struct {
		name      string
		username  string
		password  string
		email     string
		expectErr error
	}{
		{name: "valid", username: "a", password: "p"},
		{name: "valid with email", username: "b", password: "p", email: "b@example.com"},
		{name: "blank username", username: "", password: "p", expectErr: serr.ErrBadArgument},
		{name: "blank password", username: "c", password: "", expectErr: serr.ErrBadArgument},
		{name: "bad email", username: "d", password: "p", email: "not an email", expectErr: serr.ErrBadArgument},
		{name: "taken", username: "taken", password: "p", expectErr: serr.ErrAlreadyExists},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			svc := newTestService()
			_, err := svc.CreateUser(ctx, "taken", "p", "", dao.Normal)
			require.NoError(t, err)

			_, err = svc.CreateUser(ctx, tc.username, tc.password, tc.email, dao.Normal)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_Service_UpdateUser(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	a, err := svc.CreateUser(ctx, "a", "p", "", dao.Normal)
	require.NoError(t, err)
	b, err := svc.CreateUser(ctx, "b", "p", "", dao.Normal)
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, a.ID, a.ID, "b", "", dao.Normal)
	assert.ErrorIs(err, serr.ErrAlreadyExists)
	_, err = svc.UpdateUser(ctx, a.ID, b.ID, "a", "", dao.Normal)
	assert.ErrorIs(err, serr.ErrAlreadyExists)
	_, err = svc.UpdateUser(ctx, uuid.New(), uuid.New(), "z", "", dao.Normal)
	assert.ErrorIs(err, serr.ErrNotFound)

	updated, err := svc.UpdateUser(ctx, a.ID, a.ID, "a2", "a2@example.com", dao.Admin)
	require.NoError(t, err)
	assert.Equal("a2", updated.Username)
	assert.Equal(dao.Admin, updated.Role)
	assert.Equal("a2@example.com", updated.Email.Address)

	_, err = svc.UpdatePassword(ctx, a.ID, "new")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "a2", "new")
	assert.NoError(err)
}

func Test_Service_SavedQueries(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := newTestService()

	owner, err := svc.CreateUser(ctx, "owner", "p", "", dao.Normal)
	require.NoError(t, err)

	good, err := svc.SaveQuery(ctx, owner.ID, "all triples", "", "SELECT * WHERE { ?s ?p ?o }")
	require.NoError(t, err)
	assert.Equal("query", good.Kind)
	assert.Empty(good.Diagnostics)

	bad, err := svc.SaveQuery(ctx, owner.ID, "broken", "query", "SELECT * WHERE { ?s ?p ")
	require.NoError(t, err)
	assert.NotEmpty(bad.Diagnostics)

	upd, err := svc.SaveQuery(ctx, owner.ID, "wipe", "UPDATE", "CLEAR ALL")
	require.NoError(t, err)
	assert.Equal("update", upd.Kind)
	assert.Empty(upd.Diagnostics)
	assert.True(svc.Reparse(upd).OK())

	_, err = svc.SaveQuery(ctx, owner.ID, "", "query", "ASK {}")
	assert.ErrorIs(err, serr.ErrBadArgument)
	_, err = svc.SaveQuery(ctx, owner.ID, "x", "construct", "ASK {}")
	assert.ErrorIs(err, serr.ErrBadArgument)
	_, err = svc.SaveQuery(ctx, uuid.New(), "x", "query", "ASK {}")
	assert.ErrorIs(err, serr.ErrNotFound)

	all, err := svc.GetUserQueries(ctx, owner.ID)
	assert.NoError(err)
	if assert.Len(all, 3) {
		assert.Equal("all triples", all[0].Name)
		assert.Equal("wipe", all[2].Name)
	}

	_, err = svc.DeleteQuery(ctx, bad.ID)
	assert.NoError(err)
	_, err = svc.GetQuery(ctx, bad.ID)
	assert.ErrorIs(err, serr.ErrNotFound)

	_, err = svc.DeleteUser(ctx, owner.ID)
	assert.NoError(err)
	_, err = svc.GetQuery(ctx, good.ID)
	assert.ErrorIs(err, serr.ErrNotFound)
}

func Test_Service_Rule(t *testing.T) {
	assert := assert.New(t)
	svc := newTestService()

	_, err := svc.Rule("groupgraphpattern")
	assert.ErrorIs(err, serr.ErrNotFound)

	info, err := svc.Rule("GroupGraphPattern")
	require.NoError(t, err)
	assert.False(info.Nullable)
	assert.Equal([]string{"'{'"}, info.First)
	assert.Contains(info.Definition, "GroupGraphPattern ::=")

	all := svc.Rules()
	assert.Equal("QueryUnit", all[0].Name)
	for _, r := range all {
		assert.NotContains(r.First, grammar.Epsilon, r.Name)
	}
}
