package api

import "net/http"

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	dashboard, err := s.ProgressService.Dashboard(r.Context(), studentFromContext(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (s *Server) handleWeakTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.ProgressService.WeakTopics(r.Context(), studentFromContext(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"weak_topics": topics})
}
