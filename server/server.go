// Package server provides the Marlin HTTP REST server, which parses SPARQL
// for clients and keeps the queries that logged-in users save.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/dekarrin/marlin/internal/grammar"
	"github.com/dekarrin/marlin/server/api"
	"github.com/dekarrin/marlin/server/dao"
	"github.com/dekarrin/marlin/server/svc"
)

// Server is an HTTP REST server that parses SPARQL and stores saved queries.
// The zero-value of a Server should not be used directly; call New() to get
// one ready for use.
type Server struct {
	router http.Handler
	db     dao.Store
	api    api.API
	listen string
}

// New creates a new Server from cfg. Unset values in cfg are given their
// defaults. The returned Server holds an open database connection that is
// released with Close.
func New(cfg Config) (*Server, error) {
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	db, err := cfg.DB.Connect()
	if err != nil {
		return nil, err
	}

	analysis := grammar.NewAnalysis(grammar.SPARQL(), "QueryUnit", "UpdateUnit")
	analysis.Precompute()

	srv := &Server{
		db:     db,
		listen: cfg.Listen,
		api: api.API{
			Backend: svc.Service{
				DB:       db,
				Grammar:  analysis,
				HashCost: cfg.HashCost,
			},
			UnauthDelay: cfg.UnauthDelay(),
			Secret:      cfg.TokenSecret,
		},
	}
	srv.router = newRouter(srv.api)

	return srv, nil
}

// Backend returns the service that performs the server's operations.
func (s *Server) Backend() svc.Service {
	return s.api.Backend
}

// ServeHTTP routes a request to the endpoint for it.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

// EnsureAdmin creates an admin user with the given name and password unless
// a user with that name already exists.
func (s *Server) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.db.Users().GetByUsername(ctx, username)
	if err == nil {
		return nil
	}

	_, err = s.api.Backend.CreateUser(ctx, username, password, "", dao.Admin)
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	log.Printf("INFO  Created admin user %q", username)
	return nil
}

// ServeForever begins listening on the configured address for HTTP REST
// client requests. It only returns if the server cannot listen.
func (s *Server) ServeForever() error {
	log.Printf("INFO  Listening on %s", s.listen)
	return http.ListenAndServe(s.listen, s)
}

// Close releases the database connection of the server.
func (s *Server) Close() error {
	return s.db.Close()
}
