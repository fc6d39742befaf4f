package api

import (
	"net/http"

	"github.com/dekarrin/marlin/internal/version"
	"github.com/dekarrin/marlin/server/result"
)

// HTTPGetInfo returns a HandlerFunc that retrieves information on the API and
// server.
//
// The request context must say whether the client is logged in.
func (api API) HTTPGetInfo() http.HandlerFunc {
	return api.endpoint(api.epGetInfo)
}

func (api API) epGetInfo(req *http.Request) result.Result {
	var resp InfoModel
	resp.Version.Server = version.ServerCurrent
	resp.Version.Marlin = version.Current

	who := describeUser(requestUser(req), requestLoggedIn(req))
	return result.OK(resp, "%s got API info", who)
}
