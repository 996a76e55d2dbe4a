package api

import (
	"context"
	"net/http"
	"time"

	"github.com/vytor/lecturedeck/internal/logger"
)

const readyTimeout = 2 * time.Second

// handleHealth returns a liveness probe - always returns 200 OK.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady returns 200 when the database answers a ping, 503 otherwise.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if s.DB == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "database not configured"})
		return
	}
	if err := s.DB.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn("readiness check failed - database: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "database unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
