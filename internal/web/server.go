// Package web provides the HTTP JSON API for imobdesk.
package web

import (
	"fmt"
	"net/http"

	"imobdesk/internal/agent"
	"imobdesk/internal/client"
	"imobdesk/internal/commission"
	"imobdesk/internal/contract"
	"imobdesk/internal/logging"
	"imobdesk/internal/metrics"
	"imobdesk/internal/property"
	"imobdesk/internal/schedule"
	"imobdesk/internal/store"
	"imobdesk/internal/visit"
)

// Server is the JSON API HTTP server.
type Server struct {
	properties  *property.Repository
	clients     *client.Repository
	agents      *agent.Repository
	visits      *visit.Repository
	contracts   *contract.Repository
	commissions *commission.Repository
	scheduler   *schedule.Scheduler
	store       store.Store
	handler     http.Handler
}

// NewServer creates an API server over the given store.
func NewServer(st store.Store, opts schedule.Options) *Server {
	s := &Server{
		store:       st,
		properties:  property.NewRepository(st),
		clients:     client.NewRepository(st),
		agents:      agent.NewRepository(st),
		visits:      visit.NewRepository(st),
		contracts:   contract.NewRepository(st),
		commissions: commission.NewRepository(st),
		scheduler:   schedule.New(st, opts),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/api/properties", s.handleProperties)
	mux.HandleFunc("/api/properties/", s.handleProperty)
	mux.HandleFunc("/api/clients", s.handleClients)
	mux.HandleFunc("/api/clients/", s.handleClient)
	mux.HandleFunc("/api/agents", s.handleAgents)
	mux.HandleFunc("/api/visits", s.handleVisits)
	mux.HandleFunc("/api/visits/", s.handleVisit)
	mux.HandleFunc("/api/contracts", s.handleContracts)
	mux.HandleFunc("/api/commissions", s.handleCommissions)
	mux.HandleFunc("/api/stats", s.handleStats)

	s.handler = logging.RequestLogger(mux)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting API server on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
