package repository

import (
	"context"

	"github.com/vytor/lecturedeck/internal/models"
)

// TranscriptRepository handles transcript data access
type TranscriptRepository interface {
	// ListOwned returns the transcripts among ids owned by studentID, in the order of ids.
	ListOwned(ctx context.Context, studentID int64, ids []int64) ([]models.Transcript, error)
	Insert(ctx context.Context, t models.Transcript) (int64, error)
}
