package progress

import (
	"time"

	"github.com/vytor/lecturedeck/internal/models"
)

// XP awards.
const (
	DailyBonusXP      = 50
	FlashcardReviewXP = 5
	CorrectAnswerXP   = 10
)

// StartOfUTCDay truncates t to midnight UTC.
func StartOfUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayDiff returns the number of UTC calendar days from "from" to "to".
func DayDiff(from, to time.Time) int {
	return int(StartOfUTCDay(to).Sub(StartOfUTCDay(from)).Hours() / 24)
}

// ApplyDailyActivity updates the streak for activity at now and returns the
// daily bonus earned. The first activity of a UTC day earns the bonus; a gap
// of exactly one day extends the streak, any other gap restarts it at 1.
// The last active date never moves backwards.
func ApplyDailyActivity(p *models.Progress, now time.Time) int {
	bonus := DailyBonusXP

	if p.LastActiveDate == nil {
		p.CurrentStreakDays = 1
	} else {
		switch DayDiff(*p.LastActiveDate, now) {
		case 0:
			bonus = 0
		case 1:
			p.CurrentStreakDays++
		default:
			p.CurrentStreakDays = 1
		}
	}

	if p.LastActiveDate == nil || DayDiff(*p.LastActiveDate, now) >= 0 {
		day := StartOfUTCDay(now)
		p.LastActiveDate = &day
	}
	return bonus
}

// ApplyFlashcardReview records one flashcard review at now.
func ApplyFlashcardReview(p *models.Progress, now time.Time) {
	bonus := ApplyDailyActivity(p, now)
	p.TotalFlashcardsReviewed++
	p.XPPoints += FlashcardReviewXP + bonus
}

// ApplyMCQAttempts records a batch of answered questions at now. The daily
// bonus is applied at most once per batch.
func ApplyMCQAttempts(p *models.Progress, attempts []models.Attempt, now time.Time) {
	correct := 0
	for _, a := range attempts {
		if a.IsCorrect {
			correct++
		}
	}

	bonus := ApplyDailyActivity(p, now)
	p.TotalMCQsDone += len(attempts)
	p.TotalCorrect += correct
	p.XPPoints += correct*CorrectAnswerXP + bonus
}
