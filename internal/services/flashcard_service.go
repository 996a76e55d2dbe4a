package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vytor/lecturedeck/internal/errors"
	"github.com/vytor/lecturedeck/internal/flashcard"
	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
)

const (
	DefaultDueLimit = 20
	MaxDueLimit     = 100
)

// maxScheduleAttempts bounds how often a rating is recomputed when another
// rating of the same card lands between the read and the write.
const maxScheduleAttempts = 3

// FlashcardService handles flashcard-related business logic
type FlashcardService interface {
	ListBySet(ctx context.Context, studentID, setID int64) ([]models.Flashcard, error)
	Due(ctx context.Context, studentID int64, limit int) ([]models.Flashcard, error)
	Rate(ctx context.Context, studentID, flashcardID int64, rating int, timeSeconds float64) (*models.RatingResult, error)
}

type flashcardService struct {
	cards    repository.FlashcardRepository
	sets     repository.SetRepository
	progress ProgressService
	now      func() time.Time
}

// NewFlashcardService creates a new FlashcardService
func NewFlashcardService(cards repository.FlashcardRepository, sets repository.SetRepository, progress ProgressService) FlashcardService {
	return &flashcardService{
		cards:    cards,
		sets:     sets,
		progress: progress,
		now:      time.Now,
	}
}

func (s *flashcardService) ListBySet(ctx context.Context, studentID, setID int64) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing flashcards: set_id=%d", setID)

	set, err := ownedSet(ctx, s.sets, studentID, setID)
	if err != nil {
		return nil, err
	}
	if set.Kind != models.KindFlashcard {
		return nil, errors.NewBadRequestError("set is not a flashcard set")
	}

	cards, err := s.cards.ListBySet(ctx, setID)
	if err != nil {
		log.Error("failed to list flashcards: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

func (s *flashcardService) Due(ctx context.Context, studentID int64, limit int) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = DefaultDueLimit
	}
	if limit > MaxDueLimit {
		limit = MaxDueLimit
	}
	log.Debug("getting due flashcards: student_id=%d, limit=%d", studentID, limit)

	cards, err := s.cards.Due(ctx, studentID, s.now().UTC(), limit)
	if err != nil {
		log.Error("failed to get due flashcards: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return cards, nil
}

func (s *flashcardService) Rate(ctx context.Context, studentID, flashcardID int64, rating int, timeSeconds float64) (*models.RatingResult, error) {
	log := logger.FromContext(ctx).WithField("flashcard_id", flashcardID)
	log.Debug("rating flashcard: rating=%d", rating)

	if rating < flashcard.RatingAgain || rating > flashcard.RatingEasy {
		return nil, errors.NewInvalidRatingError(rating)
	}
	if timeSeconds < 0 {
		return nil, errors.NewValidationError("time_seconds", "must not be negative")
	}

	card, res, err := s.reschedule(ctx, studentID, flashcardID, rating)
	if err != nil {
		return nil, err
	}
	now := s.now()

	// Review history and progress are secondary; the schedule is already saved.
	if err := s.cards.InsertReview(ctx, models.FlashcardReview{
		FlashcardID: card.ID,
		Rating:      rating,
		TimeSeconds: timeSeconds,
		ReviewedAt:  now.UTC(),
	}); err != nil {
		log.Warn("failed to store review history: %v", err)
	}
	if _, err := s.progress.ApplyFlashcardReview(ctx, studentID); err != nil {
		log.Error("failed to update progress after review: %v", err)
	}

	return &models.RatingResult{
		FlashcardID:  card.ID,
		Box:          res.Box,
		IntervalDays: res.IntervalDays,
		NextReviewAt: res.NextReviewAt,
	}, nil
}

// reschedule reads the card and writes its next schedule only if its box is
// unchanged since the read, so concurrent ratings each advance from the box
// the other one left.
func (s *flashcardService) reschedule(ctx context.Context, studentID, flashcardID int64, rating int) (*models.Flashcard, flashcard.Result, error) {
	log := logger.FromContext(ctx).WithField("flashcard_id", flashcardID)

	for attempt := 1; attempt <= maxScheduleAttempts; attempt++ {
		card, err := s.cards.Get(ctx, flashcardID, studentID)
		if err != nil {
			log.Error("failed to get flashcard: %v", err)
			return nil, flashcard.Result{}, errors.NewInternalError(err)
		}
		if card == nil {
			return nil, flashcard.Result{}, errors.NewNotFoundError("flashcard", flashcardID)
		}

		res, err := flashcard.Schedule(card.Box, rating, s.now())
		if err != nil {
			return nil, flashcard.Result{}, errors.NewInvalidRatingError(rating)
		}

		updated, err := s.cards.UpdateSchedule(ctx, card.ID, card.Box, res.Box, res.NextReviewAt)
		if err != nil {
			log.Error("failed to update flashcard: %v", err)
			return nil, flashcard.Result{}, errors.NewInternalError(err)
		}
		if updated {
			log.Debug("scheduled: box %d -> %d, next review in %d days", card.Box, res.Box, res.IntervalDays)
			return card, res, nil
		}
		log.Debug("box changed concurrently, retrying (attempt %d/%d)", attempt, maxScheduleAttempts)
	}

	log.Error("gave up rescheduling after %d attempts", maxScheduleAttempts)
	return nil, flashcard.Result{}, errors.NewInternalError(fmt.Errorf("flashcard %d kept changing while being rated", flashcardID))
}
