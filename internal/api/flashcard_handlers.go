package api

import (
	"net/http"
	"strconv"

	"github.com/vytor/lecturedeck/internal/errors"
	"github.com/vytor/lecturedeck/internal/logger"
)

type rateFlashcardRequest struct {
	Rating      int     `json:"rating"`
	TimeSeconds float64 `json:"time_seconds" validate:"gte=0"`
}

func (s *Server) handleDueFlashcards(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			handleError(w, r, errors.NewBadRequestError("invalid limit"))
			return
		}
		limit = n
	}

	cards, err := s.FlashcardService.Due(r.Context(), studentFromContext(r.Context()), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"flashcards": cards})
}

func (s *Server) handleRateFlashcard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req rateFlashcardRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	log = log.WithFields(map[string]any{
		"flashcard_id": id,
		"rating":       req.Rating,
		"time_seconds": req.TimeSeconds,
	})
	log.Debug("rating flashcard")

	res, err := s.FlashcardService.Rate(r.Context(), studentFromContext(r.Context()), id, req.Rating, req.TimeSeconds)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("flashcard rated: box=%d", res.Box)
	writeJSON(w, http.StatusOK, res)
}
