package flashcard

import (
	"errors"
	"fmt"
	"time"

	"github.com/vytor/lecturedeck/internal/models"
)

// Ratings a learner can give a card.
const (
	RatingAgain = 1
	RatingHard  = 2
	RatingGood  = 3
	RatingEasy  = 4
)

// MasteredIntervalDays is the interval used once a card reaches the top box.
const MasteredIntervalDays = 30

var ErrInvalidRating = errors.New("invalid rating")

// Result is the next scheduling state of a card.
type Result struct {
	Box          int
	IntervalDays int
	NextReviewAt time.Time
}

// Schedule computes the next box and review time using a five-box Leitner system.
// A zero box means the card has never been scheduled and starts in box 1;
// out-of-range boxes are clamped to [1, 5].
// rating: 1=Again, 2=Hard, 3=Good, 4=Easy
func Schedule(currentBox, rating int, now time.Time) (Result, error) {
	box := clampBox(currentBox)

	var days int
	switch rating {
	case RatingAgain:
		box = models.MinBox
		days = 1
	case RatingHard:
		days = 3
	case RatingGood:
		box = min(box+1, models.MaxBox)
		days = intervalFor(box, 2)
	case RatingEasy:
		box = min(box+2, models.MaxBox)
		days = intervalFor(box, 4)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidRating, rating)
	}

	return Result{
		Box:          box,
		IntervalDays: days,
		NextReviewAt: now.UTC().AddDate(0, 0, days),
	}, nil
}

// ApplyRating returns card with its box and next review time advanced for rating.
func ApplyRating(card models.Flashcard, rating int, now time.Time) (models.Flashcard, error) {
	res, err := Schedule(card.Box, rating, now)
	if err != nil {
		return card, err
	}
	card.Box = res.Box
	card.NextReviewAt = res.NextReviewAt
	return card, nil
}

func intervalFor(box, multiplier int) int {
	if box == models.MaxBox {
		return MasteredIntervalDays
	}
	return box * multiplier
}

func clampBox(box int) int {
	if box < models.MinBox {
		return models.MinBox
	}
	if box > models.MaxBox {
		return models.MaxBox
	}
	return box
}
