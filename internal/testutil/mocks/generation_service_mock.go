package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lecturedeck/internal/models"
)

// MockGenerationService is a mock implementation of services.GenerationService
type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) Generate(ctx context.Context, req models.GenerationRequest) (*models.GeneratedSet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeneratedSet), args.Error(1)
}

// MockTranscriptService is a mock implementation of services.TranscriptService
type MockTranscriptService struct {
	mock.Mock
}

func (m *MockTranscriptService) Create(ctx context.Context, studentID int64, title, text string) (*models.Transcript, error) {
	args := m.Called(ctx, studentID, title, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transcript), args.Error(1)
}
