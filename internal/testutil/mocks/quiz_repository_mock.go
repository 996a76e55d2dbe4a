package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lecturedeck/internal/models"
)

// MockQuestionRepository is a mock implementation of repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) ListBySet(ctx context.Context, setID int64) ([]models.MCQQuestion, error) {
	args := m.Called(ctx, setID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MCQQuestion), args.Error(1)
}

func (m *MockQuestionRepository) GetMany(ctx context.Context, studentID int64, ids []int64) (map[int64]models.MCQQuestion, error) {
	args := m.Called(ctx, studentID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]models.MCQQuestion), args.Error(1)
}

// MockAttemptRepository is a mock implementation of repository.AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) InsertBatch(ctx context.Context, attempts []models.Attempt) ([]int64, error) {
	args := m.Called(ctx, attempts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockAttemptRepository) ListWithSource(ctx context.Context, studentID int64) ([]models.AttemptWithSource, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttemptWithSource), args.Error(1)
}
