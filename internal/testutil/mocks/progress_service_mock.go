package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lecturedeck/internal/models"
)

// MockProgressService is a mock implementation of services.ProgressService
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) ApplyFlashcardReview(ctx context.Context, studentID int64) (*models.Progress, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func (m *MockProgressService) ApplyMCQAttempts(ctx context.Context, studentID int64, attempts []models.Attempt) (*models.Progress, error) {
	args := m.Called(ctx, studentID, attempts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func (m *MockProgressService) Dashboard(ctx context.Context, studentID int64) (*models.Dashboard, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dashboard), args.Error(1)
}

func (m *MockProgressService) WeakTopics(ctx context.Context, studentID int64) ([]models.WeakTopic, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeakTopic), args.Error(1)
}
