package middle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dekarrin/marlin/server/authtoken"
	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/dao/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func Test_AuthHandler(t *testing.T) {
	users := inmem.NewUsersRepository()
	user, err := users.Create(context.Background(), dao.User{Username: "jsmith", Password: "hash"})
	require.NoError(t, err)
	tok, err := authtoken.Generate(testSecret, user)
	require.NoError(t, err)

	guest := dao.User{Username: "guest", Role: dao.Guest}

	testCases := []struct {
		name           string
		mw             Middleware
		authHeader     string
		expectStatus   int
		expectLoggedIn bool
		expectUsername string
	}{
		{
			name:           "required, valid token",
			mw:             RequireAuth(users, testSecret, 0),
			authHeader:     "Bearer " + tok,
			expectStatus:   http.StatusOK,
			expectLoggedIn: true,
			expectUsername: "jsmith",
		},
		{
			name:         "required, no token",
			mw:           RequireAuth(users, testSecret, 0),
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:         "required, bad token",
			mw:           RequireAuth(users, testSecret, 0),
			authHeader:   "Bearer nope",
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:           "optional, valid token",
			mw:             OptionalAuth(users, testSecret, 0, guest),
			authHeader:     "Bearer " + tok,
			expectStatus:   http.StatusOK,
			expectLoggedIn: true,
			expectUsername: "jsmith",
		},
		{
			name:           "optional, no token gets default user",
			mw:             OptionalAuth(users, testSecret, 0, guest),
			expectStatus:   http.StatusOK,
			expectUsername: "guest",
		},
		{
			name:           "optional, bad token gets default user",
			mw:             OptionalAuth(users, testSecret, 0, guest),
			authHeader:     "Bearer nope",
			expectStatus:   http.StatusOK,
			expectUsername: "guest",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			var reached bool
			var loggedIn bool
			var got dao.User
			h := tc.mw(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				reached = true
				loggedIn = req.Context().Value(AuthLoggedIn).(bool)
				got = req.Context().Value(AuthUser).(dao.User)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/queries", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(tc.expectStatus, w.Code)
			if tc.expectStatus != http.StatusOK {
				assert.False(reached)
				return
			}
			assert.True(reached)
			assert.Equal(tc.expectLoggedIn, loggedIn)
			assert.Equal(tc.expectUsername, got.Username)
		})
	}
}
