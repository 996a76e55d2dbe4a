package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/lecturedeck/internal/models"
)

// MockSetRepository is a mock implementation of repository.SetRepository
type MockSetRepository struct {
	mock.Mock
}

func (m *MockSetRepository) CreateFlashcardSet(ctx context.Context, set models.RevisionSet, cards []models.Flashcard) (*models.GeneratedSet, error) {
	args := m.Called(ctx, set, cards)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeneratedSet), args.Error(1)
}

func (m *MockSetRepository) CreateMCQSet(ctx context.Context, set models.RevisionSet, questions []models.MCQQuestion) (*models.GeneratedSet, error) {
	args := m.Called(ctx, set, questions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeneratedSet), args.Error(1)
}

func (m *MockSetRepository) LinkTranscripts(ctx context.Context, setID int64, transcriptIDs []int64) error {
	args := m.Called(ctx, setID, transcriptIDs)
	return args.Error(0)
}

func (m *MockSetRepository) TranscriptIDs(ctx context.Context, setID int64) ([]int64, error) {
	args := m.Called(ctx, setID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockSetRepository) Get(ctx context.Context, id int64) (*models.RevisionSet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RevisionSet), args.Error(1)
}

func (m *MockSetRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.RevisionSet, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RevisionSet), args.Error(1)
}

func (m *MockSetRepository) CountByStudent(ctx context.Context, studentID int64) (int, error) {
	args := m.Called(ctx, studentID)
	return args.Int(0), args.Error(1)
}

func (m *MockSetRepository) CountTranscriptsStudied(ctx context.Context, studentID int64) (int, error) {
	args := m.Called(ctx, studentID)
	return args.Int(0), args.Error(1)
}
