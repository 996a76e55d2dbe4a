package api

import "net/http"

type createTranscriptRequest struct {
	Title string `json:"title" validate:"max=200"`
	Text  string `json:"text" validate:"required"`
}

func (s *Server) handleCreateTranscript(w http.ResponseWriter, r *http.Request) {
	var req createTranscriptRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	t, err := s.TranscriptService.Create(r.Context(), studentFromContext(r.Context()), req.Title, req.Text)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}
