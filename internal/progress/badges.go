package progress

import (
	"math"

	"github.com/vytor/lecturedeck/internal/models"
)

const (
	BadgeFirstFlashcard = "First Flashcard"
	BadgeTenDayStreak   = "10-Day Streak"
	BadgeHundredMCQs    = "100 MCQs"
	BadgePerfectScore   = "Perfect Score"
)

// Accuracy is the rounded percentage of correct answers, 0 with no attempts.
func Accuracy(p models.Progress) int {
	return percent(p.TotalCorrect, p.TotalMCQsDone)
}

// Badges derives the earned badges from counters. It is computed on read and never stored.
func Badges(p models.Progress) []string {
	badges := []string{}
	if p.TotalFlashcardsReviewed >= 1 {
		badges = append(badges, BadgeFirstFlashcard)
	}
	if p.CurrentStreakDays >= 10 {
		badges = append(badges, BadgeTenDayStreak)
	}
	if p.TotalMCQsDone >= 100 {
		badges = append(badges, BadgeHundredMCQs)
	}
	if p.TotalMCQsDone > 0 && Accuracy(p) == 100 {
		badges = append(badges, BadgePerfectScore)
	}
	return badges
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
