package api

import (
	"net/http"
)

// handleHealth is a liveness probe. It does not touch storage.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
