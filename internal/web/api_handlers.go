package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"imobdesk/internal/client"
	"imobdesk/internal/commission"
	"imobdesk/internal/contract"
	"imobdesk/internal/property"
	"imobdesk/internal/schedule"
	"imobdesk/internal/store"
	"imobdesk/internal/visit"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// repoError maps a repository error onto an HTTP response.
func repoError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		apiError(w, "not found", http.StatusNotFound)
		return
	}
	apiError(w, err.Error(), http.StatusInternalServerError)
}

// handleProperties serves /api/properties: list (with filter query
// params) or add.
func (s *Server) handleProperties(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		props, err := s.properties.List(r.Context())
		if err != nil {
			repoError(w, err)
			return
		}

		q := r.URL.Query()
		f := property.Filter{
			Search:   q.Get("search"),
			Status:   q.Get("status"),
			Type:     q.Get("type"),
			City:     q.Get("city"),
			MinPrice: q.Get("min_price"),
			MaxPrice: q.Get("max_price"),
		}
		apiJSON(w, f.Apply(props), http.StatusOK)

	case http.MethodPost:
		var p property.Property
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			apiError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		p.ID = ""
		if err := p.Validate(); err != nil {
			apiError(w, err.Error(), http.StatusBadRequest)
			return
		}
		created, err := s.properties.Create(r.Context(), &p)
		if err != nil {
			repoError(w, err)
			return
		}
		apiJSON(w, created, http.StatusCreated)

	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleProperty serves /api/properties/{id}: show, update or remove.
func (s *Server) handleProperty(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/properties/")
	if id == "" || strings.Contains(id, "/") {
		apiError(w, "invalid property id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := s.properties.Get(r.Context(), id)
		if err != nil {
			repoError(w, err)
			return
		}
		apiJSON(w, p, http.StatusOK)

	case http.MethodPut:
		var p property.Property
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			apiError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		p.ID = id
		if err := p.Validate(); err != nil {
			apiError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.properties.Update(r.Context(), &p); err != nil {
			repoError(w, err)
			return
		}
		apiJSON(w, &p, http.StatusOK)

	case http.MethodDelete:
		if err := s.properties.Delete(r.Context(), id); err != nil {
			repoError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleClients serves /api/clients: search or add.
func (s *Server) handleClients(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		clients, err := s.clients.List(r.Context())
		if err != nil {
			repoError(w, err)
			return
		}
		apiJSON(w, client.Search(clients, r.URL.Query().Get("search")), http.StatusOK)

	case http.MethodPost:
		var c client.Client
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			apiError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		c.ID = ""
		if c.Name == "" {
			apiError(w, "client name is required", http.StatusBadRequest)
			return
		}
		created, err := s.clients.Create(r.Context(), &c)
		if err != nil {
			repoError(w, err)
			return
		}
		apiJSON(w, created, http.StatusCreated)

	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleClient serves /api/clients/{id}: show, update, remove, or
// record a property view via /api/clients/{id}/view.
func (s *Server) handleClient(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/clients/")

	if rest, ok := strings.CutSuffix(path, "/view"); ok {
		if r.Method != http.MethodPost {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := s.scheduler.RecordView(r.Context(), rest); err != nil {
			repoError(w, err)
			return
		}
		c, err := s.clients.Get(r.Context(), rest)
		if err != nil {
			repoError(w, err)
			return
		}
		apiJSON(w, c, http.StatusOK)
		return
	}

	id := path
	if id == "" || strings.Contains(id, "/") {
		apiError(w, "invalid client id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		c, err := s.clients.Get(r.Context(), id)
		if err != nil {
			repoError(w, err)
			return
		}
		apiJSON(w, c, http.StatusOK)

	case http.MethodPut:
		var c client.Client
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			apiError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		c.ID = id
		if c.Name == "" {
			apiError(w, "client name is required", http.StatusBadRequest)
			return
		}
		// Update ignores counter fields from the body; they are derived.
		if err := s.clients.Update(r.Context(), &c); err != nil {
			repoError(w, err)
			return
		}
		apiJSON(w, &c, http.StatusOK)

	case http.MethodDelete:
		if err := s.clients.Delete(r.Context(), id); err != nil {
			repoError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleAgents serves /api/agents: list.
func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	agents, err := s.agents.List(r.Context())
	if err != nil {
		repoError(w, err)
		return
	}
	apiJSON(w, agents, http.StatusOK)
}

// scheduleRequest is the POST /api/visits body.
type scheduleRequest struct {
	ClientID   string `json:"clientId"`
	AgentID    string `json:"agentId"`
	PropertyID string `json:"propertyId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Notes      string `json:"notes"`
}

// handleVisits serves /api/visits: list (with filter query params) or
// schedule.
func (s *Server) handleVisits(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		visits, err := s.visits.List(r.Context())
		if err != nil {
			repoError(w, err)
			return
		}

		q := r.URL.Query()
		f := visit.Filter{
			Search: q.Get("search"),
			Status: q.Get("status"),
			Date:   q.Get("date"),
		}
		apiJSON(w, f.Apply(visits), http.StatusOK)

	case http.MethodPost:
		var req scheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		v, err := s.scheduler.Schedule(r.Context(), schedule.Request{
			ClientID:   req.ClientID,
			AgentID:    req.AgentID,
			PropertyID: req.PropertyID,
			Date:       req.Date,
			Time:       req.Time,
			Notes:      req.Notes,
		})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				apiError(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			apiError(w, err.Error(), http.StatusBadRequest)
			return
		}
		apiJSON(w, v, http.StatusCreated)

	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleVisit serves /api/visits/{id} and /api/visits/{id}/status.
func (s *Server) handleVisit(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/visits/")

	if rest, ok := strings.CutSuffix(path, "/status"); ok {
		if r.Method != http.MethodPost {
			apiError(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var body struct {
			Status visit.Status `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiError(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		v, err := s.scheduler.SetStatus(r.Context(), rest, body.Status)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				repoError(w, err)
				return
			}
			apiError(w, err.Error(), http.StatusBadRequest)
			return
		}
		apiJSON(w, v, http.StatusOK)
		return
	}

	id := path
	if id == "" || strings.Contains(id, "/") {
		apiError(w, "invalid visit id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		v, err := s.visits.Get(r.Context(), id)
		if err != nil {
			repoError(w, err)
			return
		}
		apiJSON(w, v, http.StatusOK)

	case http.MethodDelete:
		if err := s.scheduler.Delete(r.Context(), id); err != nil {
			repoError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleContracts serves /api/contracts: list with filter query params.
func (s *Server) handleContracts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contracts, err := s.contracts.List(r.Context())
	if err != nil {
		repoError(w, err)
		return
	}

	q := r.URL.Query()
	f := contract.Filter{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Type:   q.Get("type"),
	}
	apiJSON(w, f.Apply(contracts), http.StatusOK)
}

// handleCommissions serves /api/commissions: list with filter query params.
func (s *Server) handleCommissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	commissions, err := s.commissions.List(r.Context())
	if err != nil {
		repoError(w, err)
		return
	}

	q := r.URL.Query()
	f := commission.Filter{
		Search: q.Get("search"),
		Status: q.Get("status"),
	}
	apiJSON(w, f.Apply(commissions), http.StatusOK)
}
