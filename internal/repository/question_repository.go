package repository

import (
	"context"

	"github.com/vytor/lecturedeck/internal/models"
)

// QuestionRepository handles multiple-choice question data access
type QuestionRepository interface {
	ListBySet(ctx context.Context, setID int64) ([]models.MCQQuestion, error)
	// GetMany returns the questions among ids whose set belongs to studentID, keyed by id.
	GetMany(ctx context.Context, studentID int64, ids []int64) (map[int64]models.MCQQuestion, error)
}
