package authtoken

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/dao/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func Test_Get(t *testing.T) {
	testCases := []struct {
		name      string
		header    string
		expect    string
		expectErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", expect: "abc.def.ghi"},
		{name: "scheme is case-insensitive", header: "bearer   abc ", expect: "abc"},
		{name: "missing", header: "", expectErr: true},
		{name: "no scheme", header: "abc.def.ghi", expectErr: true},
		{name: "basic", header: "Basic dXNlcjpwYXNz", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			req := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			actual, err := Get(req)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_GenerateValidate(t *testing.T) {
	ctx := context.Background()
	users := inmem.NewUsersRepository()

	user, err := users.Create(ctx, dao.User{Username: "jsmith", Password: "hash"})
	require.NoError(t, err)

	tok, err := Generate(testSecret, user)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		got, err := Validate(ctx, tok, testSecret, users)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := Validate(ctx, tok, []byte("some other secret that is long enough"), users)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Validate(ctx, "not-a-token", testSecret, users)
		assert.Error(t, err)
	})

	t.Run("invalid after logout", func(t *testing.T) {
		loggedOut := user
		loggedOut.LastLogoutTime = time.Now().Add(time.Second)
		_, err := users.Update(ctx, user.ID, loggedOut)
		require.NoError(t, err)

		_, err = Validate(ctx, tok, testSecret, users)
		assert.Error(t, err)
	})

	t.Run("invalid after user deleted", func(t *testing.T) {
		other, err := users.Create(ctx, dao.User{Username: "gone", Password: "hash"})
		require.NoError(t, err)
		otherTok, err := Generate(testSecret, other)
		require.NoError(t, err)
		_, err = users.Delete(ctx, other.ID)
		require.NoError(t, err)

		_, err = Validate(ctx, otherTok, testSecret, users)
		assert.Error(t, err)
	})
}
