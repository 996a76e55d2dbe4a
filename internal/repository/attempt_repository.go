package repository

import (
	"context"

	"github.com/vytor/lecturedeck/internal/models"
)

// AttemptRepository handles answer attempt data access
type AttemptRepository interface {
	InsertBatch(ctx context.Context, attempts []models.Attempt) ([]int64, error)
	ListWithSource(ctx context.Context, studentID int64) ([]models.AttemptWithSource, error)
}
