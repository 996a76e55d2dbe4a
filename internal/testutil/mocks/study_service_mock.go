package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lecturedeck/internal/models"
)

// MockSetService is a mock implementation of services.SetService
type MockSetService struct {
	mock.Mock
}

func (m *MockSetService) List(ctx context.Context, studentID int64) ([]models.RevisionSet, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RevisionSet), args.Error(1)
}

func (m *MockSetService) Get(ctx context.Context, studentID, setID int64) (*models.RevisionSet, error) {
	args := m.Called(ctx, studentID, setID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RevisionSet), args.Error(1)
}

// MockFlashcardService is a mock implementation of services.FlashcardService
type MockFlashcardService struct {
	mock.Mock
}

func (m *MockFlashcardService) ListBySet(ctx context.Context, studentID, setID int64) ([]models.Flashcard, error) {
	args := m.Called(ctx, studentID, setID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flashcard), args.Error(1)
}

func (m *MockFlashcardService) Due(ctx context.Context, studentID int64, limit int) ([]models.Flashcard, error) {
	args := m.Called(ctx, studentID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flashcard), args.Error(1)
}

func (m *MockFlashcardService) Rate(ctx context.Context, studentID, flashcardID int64, rating int, timeSeconds float64) (*models.RatingResult, error) {
	args := m.Called(ctx, studentID, flashcardID, rating, timeSeconds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RatingResult), args.Error(1)
}

// MockQuizService is a mock implementation of services.QuizService
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) ListBySet(ctx context.Context, studentID, setID int64) ([]models.MCQQuestion, error) {
	args := m.Called(ctx, studentID, setID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MCQQuestion), args.Error(1)
}

func (m *MockQuizService) Submit(ctx context.Context, studentID int64, answers []models.Answer) (*models.SubmitResult, error) {
	args := m.Called(ctx, studentID, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmitResult), args.Error(1)
}
