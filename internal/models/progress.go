package models

import "time"

type Progress struct {
	StudentID               int64      `json:"student_id"`
	TotalFlashcardsReviewed int        `json:"total_flashcards_reviewed"`
	TotalMCQsDone           int        `json:"total_mcqs_done"`
	TotalCorrect            int        `json:"total_correct"`
	CurrentStreakDays       int        `json:"current_streak_days"`
	XPPoints                int        `json:"xp_points"`
	LastActiveDate          *time.Time `json:"last_active_date"`
}

// Dashboard is the read model served to the progress page.
type Dashboard struct {
	Progress
	Accuracy           int      `json:"accuracy"`
	Badges             []string `json:"badges"`
	TranscriptsStudied int      `json:"transcripts_studied"`
	SetCount           int      `json:"set_count"`
}

type WeakTopic struct {
	Topic    string `json:"topic"`
	Total    int    `json:"total"`
	Correct  int    `json:"correct"`
	Accuracy int    `json:"accuracy"`
}
