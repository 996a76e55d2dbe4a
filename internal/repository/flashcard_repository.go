package repository

import (
	"context"
	"time"

	"github.com/vytor/lecturedeck/internal/models"
)

// FlashcardRepository handles flashcard data access
type FlashcardRepository interface {
	// Get returns the card only if its set belongs to studentID.
	Get(ctx context.Context, id int64, studentID int64) (*models.Flashcard, error)
	ListBySet(ctx context.Context, setID int64) ([]models.Flashcard, error)
	Due(ctx context.Context, studentID int64, now time.Time, limit int) ([]models.Flashcard, error)
	// UpdateSchedule moves the card from fromBox to box. It reports false without
	// writing when the stored box is no longer fromBox.
	UpdateSchedule(ctx context.Context, id int64, fromBox, box int, nextReviewAt time.Time) (bool, error)
	InsertReview(ctx context.Context, review models.FlashcardReview) error
}
