package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vytor/lecturedeck/internal/errors"
	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/progress"
	"github.com/vytor/lecturedeck/internal/repository"
)

// ProgressService tracks XP, streaks and mastery per student.
type ProgressService interface {
	ApplyFlashcardReview(ctx context.Context, studentID int64) (*models.Progress, error)
	ApplyMCQAttempts(ctx context.Context, studentID int64, attempts []models.Attempt) (*models.Progress, error)
	Dashboard(ctx context.Context, studentID int64) (*models.Dashboard, error)
	WeakTopics(ctx context.Context, studentID int64) ([]models.WeakTopic, error)
}

type progressService struct {
	progress repository.ProgressRepository
	sets     repository.SetRepository
	attempts repository.AttemptRepository
	locks    *keyedMutex
	now      func() time.Time
}

// NewProgressService creates a new ProgressService
func NewProgressService(
	progressRepo repository.ProgressRepository,
	sets repository.SetRepository,
	attempts repository.AttemptRepository,
) ProgressService {
	return &progressService{
		progress: progressRepo,
		sets:     sets,
		attempts: attempts,
		locks:    newKeyedMutex(),
		now:      time.Now,
	}
}

func (s *progressService) apply(ctx context.Context, studentID int64, fn func(*models.Progress)) (*models.Progress, error) {
	unlock := s.locks.Lock(studentID)
	defer unlock()

	p, err := s.progress.Apply(ctx, studentID, func(p *models.Progress) error {
		fn(p)
		return nil
	})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return p, nil
}

func (s *progressService) ApplyFlashcardReview(ctx context.Context, studentID int64) (*models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress")
	log.Debug("applying flashcard review: student_id=%d", studentID)

	now := s.now()
	p, err := s.apply(ctx, studentID, func(p *models.Progress) {
		progress.ApplyFlashcardReview(p, now)
	})
	if err != nil {
		log.Error("failed to apply flashcard review: %v", err)
		return nil, err
	}
	log.Debug("progress after review: xp=%d, streak=%d", p.XPPoints, p.CurrentStreakDays)
	return p, nil
}

func (s *progressService) ApplyMCQAttempts(ctx context.Context, studentID int64, attempts []models.Attempt) (*models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress")
	log.Debug("applying %d mcq attempts: student_id=%d", len(attempts), studentID)

	now := s.now()
	p, err := s.apply(ctx, studentID, func(p *models.Progress) {
		progress.ApplyMCQAttempts(p, attempts, now)
	})
	if err != nil {
		log.Error("failed to apply mcq attempts: %v", err)
		return nil, err
	}
	log.Debug("progress after attempts: xp=%d, streak=%d", p.XPPoints, p.CurrentStreakDays)
	return p, nil
}

func (s *progressService) Dashboard(ctx context.Context, studentID int64) (*models.Dashboard, error) {
	log := logger.FromContext(ctx).WithPrefix("progress")
	log.Debug("building dashboard: student_id=%d", studentID)

	var (
		p        *models.Progress
		studied  int
		setCount int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = s.progress.Get(gctx, studentID)
		return err
	})
	g.Go(func() error {
		var err error
		studied, err = s.sets.CountTranscriptsStudied(gctx, studentID)
		return err
	})
	g.Go(func() error {
		var err error
		setCount, err = s.sets.CountByStudent(gctx, studentID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("failed to load dashboard: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if p == nil {
		p = &models.Progress{StudentID: studentID}
	}

	return &models.Dashboard{
		Progress:           *p,
		Accuracy:           progress.Accuracy(*p),
		Badges:             progress.Badges(*p),
		TranscriptsStudied: studied,
		SetCount:           setCount,
	}, nil
}

func (s *progressService) WeakTopics(ctx context.Context, studentID int64) ([]models.WeakTopic, error) {
	log := logger.FromContext(ctx).WithPrefix("progress")
	log.Debug("ranking weak topics: student_id=%d", studentID)

	attempts, err := s.attempts.ListWithSource(ctx, studentID)
	if err != nil {
		log.Error("failed to load attempts: %v", err)
		return nil, errors.NewInternalError(err)
	}

	topics := progress.RankWeakTopics(attempts)
	log.Debug("found %d topics from %d attempts", len(topics), len(attempts))
	return topics, nil
}
