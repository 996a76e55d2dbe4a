package repository

import (
	"context"

	"github.com/vytor/lecturedeck/internal/models"
)

// ProgressRepository handles student progress data access
type ProgressRepository interface {
	Get(ctx context.Context, studentID int64) (*models.Progress, error)
	// Apply creates the row if missing and runs fn on it inside one transaction,
	// persisting the result.
	Apply(ctx context.Context, studentID int64, fn func(*models.Progress) error) (*models.Progress, error)
}
