package api

import (
	"errors"
	"net/http"

	"github.com/dekarrin/marlin/server/result"
	"github.com/dekarrin/marlin/server/serr"
)

// HTTPParse returns a HandlerFunc that parses SPARQL text sent by the client
// and returns its diagnostics and, if asked for, its syntax tree. Text with
// syntax errors still gets an HTTP-200; the errors are the response.
//
// The request context must say whether the client is logged in.
func (api API) HTTPParse() http.HandlerFunc {
	return api.endpoint(api.epParse)
}

func (api API) epParse(req *http.Request) result.Result {
	var parseReq ParseRequest
	if err := parseJSON(req, &parseReq); err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	res, mode, err := api.Backend.Parse(parseReq.Kind, parseReq.Source)
	if err != nil {
		if errors.Is(err, serr.ErrBadArgument) {
			return result.BadRequest(err.Error(), err.Error())
		}
		return result.InternalServerError(err.Error())
	}

	resp := parseResponse(mode, parseReq.Source, res, parseReq.Tree)
	who := describeUser(requestUser(req), requestLoggedIn(req))
	return result.OK(resp, "%s parsed %d bytes as %s with %d error(s)", who, len(parseReq.Source), mode, len(resp.Diagnostics))
}
