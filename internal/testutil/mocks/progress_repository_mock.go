package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lecturedeck/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository.
// Apply runs fn against the *models.Progress given as the first return value.
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, studentID int64) (*models.Progress, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func (m *MockProgressRepository) Apply(ctx context.Context, studentID int64, fn func(*models.Progress) error) (*models.Progress, error) {
	args := m.Called(ctx, studentID, fn)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	p := args.Get(0).(*models.Progress)
	if err := fn(p); err != nil {
		return nil, err
	}
	return p, nil
}
