package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dekarrin/marlin/server/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestServer(t *testing.T) *Server {
	srv, err := New(Config{
		TokenSecret:       []byte(testSecret),
		UnauthDelayMillis: -1,
		HashCost:          bcrypt.MinCost,
	})
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })

	require.NoError(t, srv.EnsureAdmin(context.Background(), "admin", "admin-pass"))
	return srv
}

type call struct {
	method string
	path   string
	body   string
	token  string
}

func (c call) do(t *testing.T, srv *Server) *httptest.ResponseRecorder {
	var req *http.Request
	if c.body != "" {
		req = httptest.NewRequest(c.method, api.PathPrefix+c.path, strings.NewReader(c.body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(c.method, api.PathPrefix+c.path, nil)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func decode[E any](t *testing.T, w *httptest.ResponseRecorder) E {
	var v E
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func login(t *testing.T, srv *Server, username, password string) api.LoginResponse {
	w := call{method: http.MethodPost, path: "/login", body: `{"username":"` + username + `","password":"` + password + `"}`}.do(t, srv)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	return decode[api.LoginResponse](t, w)
}

func Test_Server_parse(t *testing.T) {
	srv := newTestServer(t)

	testCases := []struct {
		name          string
		body          string
		expectStatus  int
		expectOK      bool
		expectKind    string
		expectDiags   int
		expectTreeTop string
	}{
		{
			name:         "valid query",
			body:         `{"source": "SELECT * WHERE { ?s ?p ?o }"}`,
			expectStatus: http.StatusOK,
			expectOK:     true,
			expectKind:   "query",
		},
		{
			name:          "valid update with tree",
			body:          `{"kind": "update", "source": "CLEAR ALL", "tree": true}`,
			expectStatus:  http.StatusOK,
			expectOK:      true,
			expectKind:    "update",
			expectTreeTop: "UpdateUnit",
		},
		{
			name:          "syntax error is still 200",
			body:          `{"source": "SELECT * WHERE { ?s ?p ", "tree": true}`,
			expectStatus:  http.StatusOK,
			expectKind:    "query",
			expectDiags:   1,
			expectTreeTop: "QueryUnit",
		},
		{
			name:         "unknown kind",
			body:         `{"kind": "construct", "source": "ASK {}"}`,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "malformed JSON",
			body:         `{"source": `,
			expectStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			w := call{method: http.MethodPost, path: "/parse", body: tc.body}.do(t, srv)
			if !assert.Equal(tc.expectStatus, w.Code, "body: %s", w.Body.String()) || tc.expectStatus != http.StatusOK {
				return
			}

			resp := decode[api.ParseResponse](t, w)
			assert.Equal(tc.expectOK, resp.OK)
			assert.Equal(tc.expectKind, resp.Kind)
			if tc.expectDiags > 0 {
				assert.GreaterOrEqual(len(resp.Diagnostics), tc.expectDiags)
				assert.Equal(1, resp.Diagnostics[0].Line)
			} else {
				assert.Empty(resp.Diagnostics)
			}
			if tc.expectTreeTop != "" {
				if assert.NotNil(resp.Tree) {
					assert.Equal(tc.expectTreeTop, resp.Tree.Kind)
				}
			} else {
				assert.Nil(resp.Tree)
			}
		})
	}
}

func Test_Server_savedQueries(t *testing.T) {
	assert := assert.New(t)
	srv := newTestServer(t)

	adminTok := login(t, srv, "admin", "admin-pass").Token

	// no auth
	w := call{method: http.MethodGet, path: "/queries"}.do(t, srv)
	assert.Equal(http.StatusUnauthorized, w.Code)

	// admin makes a normal user
	w = call{method: http.MethodPost, path: "/users", token: adminTok, body: `{"username":"jsmith","password":"pw","role":"normal"}`}.do(t, srv)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	userTok := login(t, srv, "jsmith", "pw").Token

	w = call{method: http.MethodPost, path: "/queries", token: userTok, body: `{"name":"broken","source":"ASK { ?s ?p }"}`}.do(t, srv)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	saved := decode[api.QueryModel](t, w)
	assert.False(saved.OK)
	assert.NotEmpty(saved.Diagnostics)
	assert.Equal("query", saved.Kind)

	w = call{method: http.MethodPost, path: "/queries?tree=true", token: userTok, body: `{"name":"ok","kind":"update","source":"DROP ALL"}`}.do(t, srv)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	second := decode[api.QueryModel](t, w)
	assert.True(second.OK)
	if assert.NotNil(second.Tree) {
		assert.Equal("UpdateUnit", second.Tree.Kind)
	}

	w = call{method: http.MethodGet, path: "/queries", token: userTok}.do(t, srv)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]api.QueryModel](t, w)
	if assert.Len(list, 2) {
		assert.Equal("broken", list[0].Name)
	}

	// admin sees nothing of their own but may look at the user's
	w = call{method: http.MethodGet, path: "/queries", token: adminTok}.do(t, srv)
	assert.Empty(decode[[]api.QueryModel](t, w))
	w = call{method: http.MethodGet, path: "/queries?user=" + saved.Owner, token: adminTok}.do(t, srv)
	assert.Len(decode[[]api.QueryModel](t, w), 2)
	w = call{method: http.MethodGet, path: "/queries/" + saved.ID, token: adminTok}.do(t, srv)
	assert.Equal(http.StatusOK, w.Code)

	// another normal user cannot see or delete them
	w = call{method: http.MethodPost, path: "/users", token: adminTok, body: `{"username":"other","password":"pw","role":"normal"}`}.do(t, srv)
	require.Equal(t, http.StatusCreated, w.Code)
	otherTok := login(t, srv, "other", "pw").Token
	w = call{method: http.MethodGet, path: "/queries/" + saved.ID, token: otherTok}.do(t, srv)
	assert.Equal(http.StatusNotFound, w.Code)
	w = call{method: http.MethodDelete, path: "/queries/" + saved.ID, token: otherTok}.do(t, srv)
	assert.Equal(http.StatusNotFound, w.Code)
	w = call{method: http.MethodGet, path: "/queries?user=" + saved.Owner, token: otherTok}.do(t, srv)
	assert.Equal(http.StatusForbidden, w.Code)

	w = call{method: http.MethodDelete, path: "/queries/" + saved.ID, token: userTok}.do(t, srv)
	assert.Equal(http.StatusNoContent, w.Code)
	w = call{method: http.MethodGet, path: "/queries/" + saved.ID, token: userTok}.do(t, srv)
	assert.Equal(http.StatusNotFound, w.Code)
}

func Test_Server_logoutInvalidatesToken(t *testing.T) {
	assert := assert.New(t)
	srv := newTestServer(t)

	lr := login(t, srv, "admin", "admin-pass")

	w := call{method: http.MethodPost, path: "/tokens", token: lr.Token}.do(t, srv)
	assert.Equal(http.StatusCreated, w.Code)

	w = call{method: http.MethodDelete, path: "/login/" + lr.UserID, token: lr.Token}.do(t, srv)
	assert.Equal(http.StatusNoContent, w.Code)

	w = call{method: http.MethodGet, path: "/users", token: lr.Token}.do(t, srv)
	assert.Equal(http.StatusUnauthorized, w.Code)

	w = call{method: http.MethodPost, path: "/login", body: `{"username":"admin","password":"wrong"}`}.do(t, srv)
	assert.Equal(http.StatusUnauthorized, w.Code)
}

func Test_Server_grammarAndInfo(t *testing.T) {
	assert := assert.New(t)
	srv := newTestServer(t)

	w := call{method: http.MethodGet, path: "/grammar/rules/GroupGraphPattern"}.do(t, srv)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	rule := decode[api.RuleModel](t, w)
	assert.Equal([]string{"'{'"}, rule.First)
	assert.False(rule.Nullable)

	w = call{method: http.MethodGet, path: "/grammar/rules/NoSuchRule"}.do(t, srv)
	assert.Equal(http.StatusNotFound, w.Code)

	w = call{method: http.MethodGet, path: "/grammar/rules"}.do(t, srv)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Greater(len(decode[[]api.RuleModel](t, w)), 100)

	w = call{method: http.MethodGet, path: "/info"}.do(t, srv)
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[api.InfoModel](t, w)
	assert.NotEmpty(info.Version.Marlin)

	w = call{method: http.MethodDelete, path: "/info"}.do(t, srv)
	assert.Equal(http.StatusMethodNotAllowed, w.Code)

	w = call{method: http.MethodGet, path: "/nowhere"}.do(t, srv)
	assert.Equal(http.StatusNotFound, w.Code)
}

func Test_LoadConfig(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "marlin.toml")
	err := os.WriteFile(file, []byte(`
listen = "0.0.0.0:9000"
token_secret = "`+testSecret+`"
database = "sqlite:data"
unauth_delay_ms = 250
password_hash_cost = 10
`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal("0.0.0.0:9000", cfg.Listen)
	assert.Equal([]byte(testSecret), cfg.TokenSecret)
	assert.Equal(Database{Type: DatabaseSQLite, DataDir: filepath.Join(dir, "data")}, cfg.DB)
	assert.Equal(250, cfg.UnauthDelayMillis)
	assert.NoError(cfg.FillDefaults().Validate())

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`database = "postgres:x"`), 0644))
	_, err = LoadConfig(bad)
	assert.Error(err)
}

func Test_ParseDBConnString(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Database
		expectErr bool
	}{
		{name: "inmem", input: "inmem", expect: Database{Type: DatabaseInMemory}},
		{name: "sqlite", input: "sqlite:/data", expect: Database{Type: DatabaseSQLite, DataDir: "/data"}},
		{name: "sqlite without dir", input: "sqlite", expectErr: true},
		{name: "inmem with params", input: "inmem:x", expectErr: true},
		{name: "none", input: "none", expectErr: true},
		{name: "unknown", input: "mysql:x", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := ParseDBConnString(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}
