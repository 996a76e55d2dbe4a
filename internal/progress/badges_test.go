package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/progress"
)

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0, progress.Accuracy(models.Progress{}))
	assert.Equal(t, 67, progress.Accuracy(models.Progress{TotalMCQsDone: 3, TotalCorrect: 2}))
	assert.Equal(t, 50, progress.Accuracy(models.Progress{TotalMCQsDone: 8, TotalCorrect: 4}))
	assert.Equal(t, 100, progress.Accuracy(models.Progress{TotalMCQsDone: 5, TotalCorrect: 5}))
}

func TestBadges(t *testing.T) {
	tests := []struct {
		name string
		p    models.Progress
		want []string
	}{
		{
			name: "new student",
			p:    models.Progress{},
			want: []string{},
		},
		{
			name: "first flashcard",
			p:    models.Progress{TotalFlashcardsReviewed: 1},
			want: []string{progress.BadgeFirstFlashcard},
		},
		{
			name: "streak and volume",
			p:    models.Progress{CurrentStreakDays: 10, TotalMCQsDone: 100, TotalCorrect: 60},
			want: []string{progress.BadgeTenDayStreak, progress.BadgeHundredMCQs},
		},
		{
			name: "perfect score",
			p:    models.Progress{TotalFlashcardsReviewed: 3, TotalMCQsDone: 4, TotalCorrect: 4},
			want: []string{progress.BadgeFirstFlashcard, progress.BadgePerfectScore},
		},
		{
			name: "near perfect rounds to 100",
			p:    models.Progress{TotalMCQsDone: 300, TotalCorrect: 299},
			want: []string{progress.BadgeHundredMCQs, progress.BadgePerfectScore},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, progress.Badges(tt.p))
		})
	}
}
