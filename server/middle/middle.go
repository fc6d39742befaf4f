// Package middle contains middleware for use with the Marlin server.
package middle

import (
	"context"
	"net/http"
	"time"

	"github.com/dekarrin/marlin/server/authtoken"
	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/result"
)

// Middleware is a function that takes a handler and returns a new handler which
// wraps the given one and provides some additional functionality.
type Middleware func(next http.Handler) http.Handler

// AuthKey is a key in the context of a request populated by an AuthHandler.
type AuthKey int64

const (
	AuthLoggedIn AuthKey = iota
	AuthUser
)

// AuthHandler is middleware that reads the bearer token of a request and
// looks up the user it belongs to.
//
// AuthUser and AuthLoggedIn are set in the request context before it is
// passed on. When auth is required, a request without a valid token gets an
// HTTP-401 and never reaches the next handler. When it is optional, such a
// request continues with AuthLoggedIn false and AuthUser set to the default
// user.
type AuthHandler struct {
	db            dao.UserRepository
	secret        []byte
	required      bool
	defaultUser   dao.User
	unauthedDelay time.Duration
	next          http.Handler
}

func (ah *AuthHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	user, err := ah.authenticate(req)
	loggedIn := err == nil
	if !loggedIn {
		user = ah.defaultUser
	}

	if !loggedIn && ah.required {
		r := result.Unauthorized("", err.Error())
		logUnauthed(req, r)
		time.Sleep(ah.unauthedDelay)
		r.WriteResponse(w, req)
		return
	}

	ctx := context.WithValue(req.Context(), AuthLoggedIn, loggedIn)
	ctx = context.WithValue(ctx, AuthUser, user)
	ah.next.ServeHTTP(w, req.WithContext(ctx))
}

func (ah *AuthHandler) authenticate(req *http.Request) (dao.User, error) {
	tok, err := authtoken.Get(req)
	if err != nil {
		return dao.User{}, err
	}
	return authtoken.Validate(req.Context(), tok, ah.secret, ah.db)
}

// RequireAuth returns middleware that rejects requests without a valid token.
func RequireAuth(db dao.UserRepository, secret []byte, unauthDelay time.Duration) Middleware {
	return auth(AuthHandler{db: db, secret: secret, unauthedDelay: unauthDelay, required: true})
}

// OptionalAuth returns middleware that lets through requests without a valid
// token as defaultUser.
func OptionalAuth(db dao.UserRepository, secret []byte, unauthDelay time.Duration, defaultUser dao.User) Middleware {
	return auth(AuthHandler{db: db, secret: secret, unauthedDelay: unauthDelay, defaultUser: defaultUser})
}

func auth(tmpl AuthHandler) Middleware {
	return func(next http.Handler) http.Handler {
		ah := tmpl
		ah.next = next
		return &ah
	}
}
