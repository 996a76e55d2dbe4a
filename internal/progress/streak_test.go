package progress_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/progress"
)

func day(d int, hour int) time.Time {
	return time.Date(2024, 5, d, hour, 0, 0, 0, time.UTC)
}

func TestApplyDailyActivity_StreakSequence(t *testing.T) {
	p := &models.Progress{StudentID: 1}

	bonus := progress.ApplyDailyActivity(p, day(1, 9))
	assert.Equal(t, 50, bonus, "first activity ever")
	assert.Equal(t, 1, p.CurrentStreakDays)

	bonus = progress.ApplyDailyActivity(p, day(1, 22))
	assert.Equal(t, 0, bonus, "same day")
	assert.Equal(t, 1, p.CurrentStreakDays)

	bonus = progress.ApplyDailyActivity(p, day(2, 1))
	assert.Equal(t, 50, bonus, "next day")
	assert.Equal(t, 2, p.CurrentStreakDays)

	bonus = progress.ApplyDailyActivity(p, day(5, 12))
	assert.Equal(t, 50, bonus, "three-day gap")
	assert.Equal(t, 1, p.CurrentStreakDays)

	require.NotNil(t, p.LastActiveDate)
	assert.Equal(t, day(5, 0), *p.LastActiveDate)
}

func TestApplyDailyActivity_UsesUTCDays(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	p := &models.Progress{}

	progress.ApplyDailyActivity(p, time.Date(2024, 5, 1, 20, 0, 0, 0, loc)) // 2024-05-02 01:00 UTC
	assert.Equal(t, day(2, 0), *p.LastActiveDate)

	bonus := progress.ApplyDailyActivity(p, day(2, 23))
	assert.Equal(t, 0, bonus)
}

func TestApplyDailyActivity_ClockSkewNeverMovesDateBack(t *testing.T) {
	last := day(10, 0)
	p := &models.Progress{CurrentStreakDays: 4, LastActiveDate: &last}

	bonus := progress.ApplyDailyActivity(p, day(8, 12))

	assert.Equal(t, 50, bonus)
	assert.Equal(t, 1, p.CurrentStreakDays)
	assert.Equal(t, day(10, 0), *p.LastActiveDate)
}

func TestApplyFlashcardReview(t *testing.T) {
	p := &models.Progress{}

	progress.ApplyFlashcardReview(p, day(1, 8))
	progress.ApplyFlashcardReview(p, day(1, 9))

	assert.Equal(t, 2, p.TotalFlashcardsReviewed)
	assert.Equal(t, 5+50+5, p.XPPoints)
}

func TestApplyMCQAttempts(t *testing.T) {
	p := &models.Progress{}
	attempts := []models.Attempt{
		{IsCorrect: true},
		{IsCorrect: false},
		{IsCorrect: true},
	}

	progress.ApplyMCQAttempts(p, attempts, day(3, 10))

	assert.Equal(t, 3, p.TotalMCQsDone)
	assert.Equal(t, 2, p.TotalCorrect)
	assert.Equal(t, 2*10+50, p.XPPoints, "daily bonus applies once per batch")
	assert.Equal(t, 1, p.CurrentStreakDays)
}

func TestDayDiff(t *testing.T) {
	assert.Equal(t, 0, progress.DayDiff(day(1, 0), day(1, 23)))
	assert.Equal(t, 1, progress.DayDiff(day(1, 23), day(2, 0)))
	assert.Equal(t, -2, progress.DayDiff(day(3, 5), day(1, 5)))
}
