package api

import (
	"errors"
	"net/http"

	"github.com/dekarrin/marlin/server/authtoken"
	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/result"
	"github.com/dekarrin/marlin/server/serr"
)

// HTTPCreateLogin returns a HandlerFunc that checks a username and password
// and responds with a new bearer token for that user.
func (api API) HTTPCreateLogin() http.HandlerFunc {
	return api.endpoint(api.epCreateLogin)
}

// HTTPCreateToken returns a HandlerFunc that issues a fresh token to the user
// that is already logged in, so a client can keep a session going past the
// lifetime of its current token.
func (api API) HTTPCreateToken() http.HandlerFunc {
	return api.endpoint(api.epCreateToken)
}

// HTTPDeleteLogin returns a HandlerFunc that invalidates every token issued
// to the user whose ID is in the URI. Users may only log out themselves
// unless they are an admin.
func (api API) HTTPDeleteLogin() http.HandlerFunc {
	return api.endpoint(api.epDeleteLogin)
}

func (api API) epCreateLogin(req *http.Request) result.Result {
	var creds LoginRequest
	if err := parseJSON(req, &creds); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	switch {
	case creds.Username == "":
		return result.BadRequest("username: property is empty or missing from request", "empty username")
	case creds.Password == "":
		return result.BadRequest("password: property is empty or missing from request", "empty password")
	}

	user, err := api.Backend.Login(req.Context(), creds.Username, creds.Password)
	if errors.Is(err, serr.ErrBadCredentials) {
		return result.Unauthorized(serr.ErrBadCredentials.Error(), "login as %q: %s", creds.Username, err.Error())
	} else if err != nil {
		return result.InternalServerError(err.Error())
	}

	return api.issueToken(user, "logged in")
}

func (api API) epCreateToken(req *http.Request) result.Result {
	return api.issueToken(requestUser(req), "renewed token")
}

// issueToken responds with a new token for u.
func (api API) issueToken(u dao.User, what string) result.Result {
	tok, err := authtoken.Generate(api.Secret, u)
	if err != nil {
		return result.InternalServerError("generate token: " + err.Error())
	}

	resp := LoginResponse{Token: tok, UserID: u.ID.String()}
	return result.Created(resp, "%s %s", describeUser(u, true), what)
}

func (api API) epDeleteLogin(req *http.Request) result.Result {
	target := requireIDParam(req)
	caller := requestUser(req)

	if target != caller.ID && caller.Role != dao.Admin {
		return result.Forbidden("%s tried to log out user %s", describeUser(caller, true), target)
	}

	out, err := api.Backend.Logout(req.Context(), target)
	if errors.Is(err, serr.ErrNotFound) {
		return result.NotFound()
	} else if err != nil {
		return result.InternalServerError("log out: " + err.Error())
	}

	if out.ID == caller.ID {
		return result.NoContent("%s logged out", describeUser(caller, true))
	}
	return result.NoContent("%s logged out %s", describeUser(caller, true), describeUser(out, true))
}
