package web

import (
	"net/http"

	"imobdesk/internal/stats"
)

// handleStats serves /api/stats, the dashboard summary counts.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := stats.Collect(r.Context(), s.store)
	if err != nil {
		repoError(w, err)
		return
	}
	apiJSON(w, summary, http.StatusOK)
}
