package api

import (
	"net/http"
)

func (s *Server) handleListSets(w http.ResponseWriter, r *http.Request) {
	sets, err := s.SetService.List(r.Context(), studentFromContext(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sets": sets})
}

func (s *Server) handleGetSet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	set, err := s.SetService.Get(r.Context(), studentFromContext(r.Context()), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

func (s *Server) handleSetFlashcards(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	cards, err := s.FlashcardService.ListBySet(r.Context(), studentFromContext(r.Context()), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"flashcards": cards})
}

func (s *Server) handleSetQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	questions, err := s.QuizService.ListBySet(r.Context(), studentFromContext(r.Context()), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}
