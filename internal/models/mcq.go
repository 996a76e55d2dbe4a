package models

import "time"

// Options holds the four answer choices of a question.
type Options struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// Get returns the option text for a letter, or "" for anything but A-D.
func (o Options) Get(letter string) string {
	switch letter {
	case "A":
		return o.A
	case "B":
		return o.B
	case "C":
		return o.C
	case "D":
		return o.D
	}
	return ""
}

// ValidChoice reports whether s is one of A, B, C, D.
func ValidChoice(s string) bool {
	switch s {
	case "A", "B", "C", "D":
		return true
	}
	return false
}

type MCQQuestion struct {
	ID          int64      `json:"id"`
	SetID       int64      `json:"set_id"`
	Question    string     `json:"question"`
	Options     Options    `json:"options"`
	Correct     string     `json:"correct"`
	Explanation string     `json:"explanation"`
	SourceRef   string     `json:"source_ref"`
	Difficulty  Difficulty `json:"difficulty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Attempt struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"student_id"`
	QuestionID  int64     `json:"question_id"`
	Selected    string    `json:"selected"`
	IsCorrect   bool      `json:"is_correct"`
	TimeTakenMs int64     `json:"time_taken_ms"`
	AttemptedAt time.Time `json:"attempted_at"`
}

// AttemptWithSource joins an attempt with the source reference of its question.
type AttemptWithSource struct {
	QuestionID int64
	IsCorrect  bool
	SourceRef  string
}

// Answer is one submitted answer.
type Answer struct {
	QuestionID  int64
	Selected    string
	TimeTakenMs int64
}

type SubmittedAnswer struct {
	QuestionID  int64  `json:"question_id"`
	Selected    string `json:"selected"`
	IsCorrect   bool   `json:"is_correct"`
	Correct     string `json:"correct"`
	Explanation string `json:"explanation"`
	SourceRef   string `json:"source_ref"`
}

type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type SubmitResult struct {
	Submitted []SubmittedAnswer `json:"submitted"`
	Score     Score             `json:"score"`
}
