package models

// SetKind distinguishes flashcard sets from multiple-choice sets.
type SetKind string

const (
	KindFlashcard SetKind = "flashcard"
	KindMCQ       SetKind = "mcq"
)

func (k SetKind) Valid() bool {
	return k == KindFlashcard || k == KindMCQ
}

// Difficulty is the requested difficulty of generated items.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
