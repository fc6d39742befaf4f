package api

import (
	"errors"
	"net/http"

	"github.com/dekarrin/marlin/server/result"
	"github.com/dekarrin/marlin/server/serr"
	"github.com/go-chi/chi/v5"
)

// HTTPGetAllRules returns a HandlerFunc that lists every rule of the SPARQL
// grammar with its FIRST and FOLLOW sets.
func (api API) HTTPGetAllRules() http.HandlerFunc {
	return api.endpoint(api.epGetAllRules)
}

func (api API) epGetAllRules(req *http.Request) result.Result {
	rules := api.Backend.Rules()
	resp := make([]RuleModel, len(rules))
	for i := range rules {
		resp[i] = ruleModel(rules[i])
	}
	return result.OK(resp, "%s got %d grammar rules", describeUser(requestUser(req), requestLoggedIn(req)), len(resp))
}

// HTTPGetRule returns a HandlerFunc that gets one grammar rule by its name.
func (api API) HTTPGetRule() http.HandlerFunc {
	return api.endpoint(api.epGetRule)
}

func (api API) epGetRule(req *http.Request) result.Result {
	name := chi.URLParam(req, "name")

	info, err := api.Backend.Rule(name)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound("no grammar rule %q", name)
		}
		return result.InternalServerError(err.Error())
	}

	return result.OK(ruleModel(info), "%s got grammar rule %s", describeUser(requestUser(req), requestLoggedIn(req)), name)
}
