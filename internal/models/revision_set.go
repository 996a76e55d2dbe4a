package models

import "time"

type RevisionSet struct {
	ID         int64      `json:"id"`
	StudentID  int64      `json:"student_id"`
	Title      string     `json:"title"`
	Kind       SetKind    `json:"kind"`
	Difficulty Difficulty `json:"difficulty"`
	ItemCount  int        `json:"item_count"`
	CreatedAt  time.Time  `json:"created_at"`

	// TranscriptIDs is only loaded for single-set reads.
	TranscriptIDs []int64 `json:"transcript_ids,omitempty"`
}

// GenerationRequest asks for a new set built from the student's transcripts.
type GenerationRequest struct {
	StudentID     int64
	TranscriptIDs []int64
	Count         int
	Difficulty    Difficulty
	Kind          SetKind
	Title         string
}

// GeneratedSet is a persisted set with its items in creation order.
// Exactly one of Flashcards or Questions is populated, matching Set.Kind.
type GeneratedSet struct {
	Set           RevisionSet   `json:"set"`
	Flashcards    []Flashcard   `json:"flashcards,omitempty"`
	Questions     []MCQQuestion `json:"questions,omitempty"`
	TranscriptIDs []int64       `json:"transcript_ids"`
}
