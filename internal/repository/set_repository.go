package repository

import (
	"context"

	"github.com/vytor/lecturedeck/internal/models"
)

// SetRepository handles revision set data access
type SetRepository interface {
	// CreateFlashcardSet persists the set and its cards in one transaction.
	CreateFlashcardSet(ctx context.Context, set models.RevisionSet, cards []models.Flashcard) (*models.GeneratedSet, error)
	// CreateMCQSet persists the set and its questions in one transaction.
	CreateMCQSet(ctx context.Context, set models.RevisionSet, questions []models.MCQQuestion) (*models.GeneratedSet, error)
	LinkTranscripts(ctx context.Context, setID int64, transcriptIDs []int64) error
	TranscriptIDs(ctx context.Context, setID int64) ([]int64, error)
	Get(ctx context.Context, id int64) (*models.RevisionSet, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.RevisionSet, error)
	CountByStudent(ctx context.Context, studentID int64) (int, error)
	CountTranscriptsStudied(ctx context.Context, studentID int64) (int, error)
}
