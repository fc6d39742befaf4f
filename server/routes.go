package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/dekarrin/marlin/server/api"
	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/middle"
	"github.com/dekarrin/marlin/server/result"
	"github.com/go-chi/chi/v5"
)

var (
	paramTypePats = map[string]string{
		"uuid": "[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}",
		"rule": "[A-Za-z_][A-Za-z0-9_]*",
	}
)

// p is a quick parameter in a URI, made very small to ease readability in route
// listings.
func p(nameType string) string {
	var name string
	var pat string

	parts := strings.SplitN(nameType, ":", 2)
	name = parts[0]
	if len(parts) == 2 {
		// we have a type, if it's a name in the paramTypePats map use that else
		// treat it as a normal pattern
		pat = parts[1]

		if translatedPat, ok := paramTypePats[parts[1]]; ok {
			pat = translatedPat
		}
	}

	if pat == "" {
		return "{" + name + "}"
	}
	return "{" + name + ":" + pat + "}"
}

// guest is the user of requests made without logging in.
var guest = dao.User{Username: "guest", Role: dao.Guest}

type routeAuth struct {
	required middle.Middleware
	optional middle.Middleware
}

func newRouter(a api.API) chi.Router {
	r := chi.NewRouter()

	r.Mount(api.PathPrefix, newAPIRouter(a))

	return r
}

// Routes:
//
//	POST   /login              - log in with username and password, get a token
//	DELETE /login/{id}         - log out a user, invalidating their tokens
//	POST   /tokens             - get a fresh token (auth)
//	GET    /users              - list users (admin)
//	POST   /users              - create a user (admin)
//	GET    /users/{id}         - get a user (self or admin)
//	PUT    /users/{id}         - create a user with a given ID (admin)
//	PATCH  /users/{id}         - update a user (self or admin)
//	DELETE /users/{id}         - delete a user (self or admin)
//	POST   /parse              - parse SPARQL text (auth optional)
//	GET    /queries            - list saved queries (auth)
//	POST   /queries            - parse and save a query (auth)
//	GET    /queries/{id}       - get a saved query (owner or admin)
//	DELETE /queries/{id}       - delete a saved query (owner or admin)
//	GET    /grammar/rules      - list grammar rules (auth optional)
//	GET    /grammar/rules/{n}  - get one grammar rule (auth optional)
//	GET    /info               - version info (auth optional)
func newAPIRouter(a api.API) chi.Router {
	r := chi.NewRouter()

	auth := routeAuth{
		required: middle.RequireAuth(a.Backend.DB.Users(), a.Secret, a.UnauthDelay),
		optional: middle.OptionalAuth(a.Backend.DB.Users(), a.Secret, a.UnauthDelay, guest),
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		result.NotFound().WriteResponse(w, req)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		time.Sleep(a.UnauthDelay)
		result.MethodNotAllowed(req).WriteResponse(w, req)
	})

	r.Mount("/login", newLoginRouter(a, auth))
	r.Mount("/tokens", newTokensRouter(a, auth))
	r.Mount("/users", newUsersRouter(a, auth))
	r.Mount("/parse", newParseRouter(a, auth))
	r.Mount("/queries", newQueriesRouter(a, auth))
	r.Mount("/grammar", newGrammarRouter(a, auth))
	r.Mount("/info", newInfoRouter(a, auth))
	r.HandleFunc("/info/", RedirectNoTrailingSlash)

	return r
}

func newLoginRouter(a api.API, auth routeAuth) chi.Router {
	r := chi.NewRouter()

	r.Post("/", a.HTTPCreateLogin())
	r.With(auth.required).Delete("/"+p("id:uuid"), a.HTTPDeleteLogin())
	r.HandleFunc("/"+p("id:uuid")+"/", RedirectNoTrailingSlash)

	return r
}

func newTokensRouter(a api.API, auth routeAuth) chi.Router {
	r := chi.NewRouter()

	r.With(auth.required).Post("/", a.HTTPCreateToken())

	return r
}

func newUsersRouter(a api.API, auth routeAuth) chi.Router {
	r := chi.NewRouter()

	r.Use(auth.required)

	r.Get("/", a.HTTPGetAllUsers())
	r.Post("/", a.HTTPCreateUser())

	r.Route("/"+p("id:uuid"), func(r chi.Router) {
		r.Get("/", a.HTTPGetUser())
		r.Put("/", a.HTTPReplaceUser())
		r.Patch("/", a.HTTPUpdateUser())
		r.Delete("/", a.HTTPDeleteUser())
	})

	return r
}

func newParseRouter(a api.API, auth routeAuth) chi.Router {
	r := chi.NewRouter()

	r.With(auth.optional).Post("/", a.HTTPParse())

	return r
}

func newQueriesRouter(a api.API, auth routeAuth) chi.Router {
	r := chi.NewRouter()

	r.Use(auth.required)

	r.Get("/", a.HTTPGetAllQueries())
	r.Post("/", a.HTTPCreateQuery())

	r.Route("/"+p("id:uuid"), func(r chi.Router) {
		r.Get("/", a.HTTPGetQuery())
		r.Delete("/", a.HTTPDeleteQuery())
	})

	return r
}

func newGrammarRouter(a api.API, auth routeAuth) chi.Router {
	r := chi.NewRouter()

	r.Use(auth.optional)

	r.Get("/rules", a.HTTPGetAllRules())
	r.Get("/rules/"+p("name:rule"), a.HTTPGetRule())

	return r
}

func newInfoRouter(a api.API, auth routeAuth) chi.Router {
	r := chi.NewRouter()

	r.With(auth.optional).Get("/", a.HTTPGetInfo())

	return r
}

// RedirectNoTrailingSlash is an http.HandlerFunc that redirects to the same URL as the
// request but with no trailing slash.
func RedirectNoTrailingSlash(w http.ResponseWriter, req *http.Request) {
	redirPath := strings.TrimRight(req.URL.Path, "/")
	result.Redirection(redirPath).WriteResponse(w, req)
}
