package services

import (
	"context"

	"github.com/vytor/lecturedeck/internal/errors"
	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
)

// SetService handles revision set lookups
type SetService interface {
	List(ctx context.Context, studentID int64) ([]models.RevisionSet, error)
	Get(ctx context.Context, studentID, setID int64) (*models.RevisionSet, error)
}

type setService struct {
	sets repository.SetRepository
}

// NewSetService creates a new SetService
func NewSetService(sets repository.SetRepository) SetService {
	return &setService{sets: sets}
}

func (s *setService) List(ctx context.Context, studentID int64) ([]models.RevisionSet, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing sets: student_id=%d", studentID)

	sets, err := s.sets.ListByStudent(ctx, studentID)
	if err != nil {
		log.Error("failed to list sets: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return sets, nil
}

func (s *setService) Get(ctx context.Context, studentID, setID int64) (*models.RevisionSet, error) {
	set, err := ownedSet(ctx, s.sets, studentID, setID)
	if err != nil {
		return nil, err
	}

	ids, err := s.sets.TranscriptIDs(ctx, setID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load transcript links: %v", err)
		return nil, errors.NewInternalError(err)
	}
	set.TranscriptIDs = ids
	return set, nil
}

// ownedSet loads a set and hides sets of other students behind NotFound.
func ownedSet(ctx context.Context, sets repository.SetRepository, studentID, setID int64) (*models.RevisionSet, error) {
	log := logger.FromContext(ctx)

	set, err := sets.Get(ctx, setID)
	if err != nil {
		log.Error("failed to get set: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if set == nil || set.StudentID != studentID {
		return nil, errors.NewNotFoundError("set", setID)
	}
	return set, nil
}
