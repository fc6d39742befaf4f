package middle

import (
	"log"
	"net"
	"net/http"

	"github.com/dekarrin/marlin/server/result"
)

// logUnauthed logs a request turned away before reaching its endpoint.
func logUnauthed(req *http.Request, r result.Result) {
	client, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		client = req.RemoteAddr
	}
	log.Printf("ERROR %s %s %s: HTTP-%d %s", client, req.Method, req.URL.Path, r.Status, r.InternalMsg)
}
