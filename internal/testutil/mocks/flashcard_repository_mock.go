package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lecturedeck/internal/models"
)

// MockFlashcardRepository is a mock implementation of repository.FlashcardRepository
type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) Get(ctx context.Context, id int64, studentID int64) (*models.Flashcard, error) {
	args := m.Called(ctx, id, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) ListBySet(ctx context.Context, setID int64) ([]models.Flashcard, error) {
	args := m.Called(ctx, setID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) Due(ctx context.Context, studentID int64, now time.Time, limit int) ([]models.Flashcard, error) {
	args := m.Called(ctx, studentID, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) UpdateSchedule(ctx context.Context, id int64, fromBox, box int, nextReviewAt time.Time) (bool, error) {
	args := m.Called(ctx, id, fromBox, box, nextReviewAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlashcardRepository) InsertReview(ctx context.Context, review models.FlashcardReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
