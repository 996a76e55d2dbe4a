package models

import "time"

const (
	MinBox = 1
	MaxBox = 5

	DefaultEaseFactor = 2.5
)

type Flashcard struct {
	ID           int64     `json:"id"`
	SetID        int64     `json:"set_id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	SourceRef    string    `json:"source_ref"`
	Box          int       `json:"srs_box"`
	NextReviewAt time.Time `json:"next_review"`
	EaseFactor   float64   `json:"ease_factor"`
	CreatedAt    time.Time `json:"created_at"`
}

type FlashcardReview struct {
	ID          int64     `json:"id"`
	FlashcardID int64     `json:"flashcard_id"`
	Rating      int       `json:"rating"`
	TimeSeconds float64   `json:"time_seconds"`
	ReviewedAt  time.Time `json:"reviewed_at"`
}

// RatingResult is the new schedule of a rated card.
type RatingResult struct {
	FlashcardID  int64     `json:"flashcard_id"`
	Box          int       `json:"srs_box"`
	IntervalDays int       `json:"interval_days"`
	NextReviewAt time.Time `json:"next_review"`
}
