package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lecturedeck/internal/models"
)

// MockTranscriptRepository is a mock implementation of repository.TranscriptRepository
type MockTranscriptRepository struct {
	mock.Mock
}

func (m *MockTranscriptRepository) ListOwned(ctx context.Context, studentID int64, ids []int64) ([]models.Transcript, error) {
	args := m.Called(ctx, studentID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transcript), args.Error(1)
}

func (m *MockTranscriptRepository) Insert(ctx context.Context, t models.Transcript) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}
