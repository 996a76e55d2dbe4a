package api

import (
	"net/http"

	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
)

type generateFlashcardsRequest struct {
	TranscriptIDs []int64 `json:"transcript_ids" validate:"required,min=1,dive,gt=0"`
	Count         int     `json:"count" validate:"required,gt=0"`
	Difficulty    string  `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Title         string  `json:"title" validate:"max=200"`
}

// MCQ sets come in fixed sizes.
type generateMCQsRequest struct {
	TranscriptIDs []int64 `json:"transcript_ids" validate:"required,min=1,dive,gt=0"`
	Count         int     `json:"count" validate:"required,oneof=5 10 20"`
	Difficulty    string  `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Title         string  `json:"title" validate:"max=200"`
}

func (s *Server) handleGenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req generateFlashcardsRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	out, err := s.GenerationService.Generate(r.Context(), models.GenerationRequest{
		StudentID:     studentFromContext(r.Context()),
		TranscriptIDs: req.TranscriptIDs,
		Count:         req.Count,
		Difficulty:    models.Difficulty(req.Difficulty),
		Kind:          models.KindFlashcard,
		Title:         req.Title,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("flashcard set generated: set_id=%d", out.Set.ID)
	writeJSON(w, http.StatusCreated, map[string]any{
		"set_id":         out.Set.ID,
		"set":            out.Set,
		"transcript_ids": out.TranscriptIDs,
		"flashcards":     out.Flashcards,
	})
}

func (s *Server) handleGenerateMCQs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req generateMCQsRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	out, err := s.GenerationService.Generate(r.Context(), models.GenerationRequest{
		StudentID:     studentFromContext(r.Context()),
		TranscriptIDs: req.TranscriptIDs,
		Count:         req.Count,
		Difficulty:    models.Difficulty(req.Difficulty),
		Kind:          models.KindMCQ,
		Title:         req.Title,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("mcq set generated: set_id=%d", out.Set.ID)
	writeJSON(w, http.StatusCreated, map[string]any{
		"set_id":         out.Set.ID,
		"set":            out.Set,
		"transcript_ids": out.TranscriptIDs,
		"questions":      out.Questions,
	})
}
