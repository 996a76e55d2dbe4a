package services

import (
	"context"
	"strings"
	"time"

	"github.com/vytor/lecturedeck/internal/errors"
	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
)

// TranscriptService stores transcripts handed over by the capture pipeline.
type TranscriptService interface {
	Create(ctx context.Context, studentID int64, title, text string) (*models.Transcript, error)
}

type transcriptService struct {
	transcripts repository.TranscriptRepository
	now         func() time.Time
}

// NewTranscriptService creates a new TranscriptService
func NewTranscriptService(transcripts repository.TranscriptRepository) TranscriptService {
	return &transcriptService{transcripts: transcripts, now: time.Now}
}

func (s *transcriptService) Create(ctx context.Context, studentID int64, title, text string) (*models.Transcript, error) {
	log := logger.FromContext(ctx).WithPrefix("transcripts")

	t := models.Transcript{
		StudentID: studentID,
		Title:     strings.TrimSpace(title),
		Text:      strings.TrimSpace(text),
		CreatedAt: s.now().UTC(),
	}
	if t.Text == "" {
		return nil, errors.NewValidationError("text", "must not be blank")
	}
	if t.Title == "" {
		t.Title = "Transcript " + t.CreatedAt.Format(time.RFC3339)
	}

	id, err := s.transcripts.Insert(ctx, t)
	if err != nil {
		log.Error("failed to store transcript: %v", err)
		return nil, errors.NewInternalError(err)
	}
	t.ID = id

	log.Info("transcript %d stored: %d chars", id, len(t.Text))
	return &t, nil
}
