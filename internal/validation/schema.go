package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vytor/lecturedeck/internal/generator"
	"github.com/vytor/lecturedeck/internal/models"
)

var ErrSchema = errors.New("schema violation")

// ValidateFlashcard checks that a flashcard candidate has a front, a back
// and a source reference. Whitespace-only values count as missing.
func ValidateFlashcard(c generator.FlashcardCandidate) error {
	if err := required("front", c.Front); err != nil {
		return err
	}
	if err := required("back", c.Back); err != nil {
		return err
	}
	return required("source_ref", c.SourceRef)
}

// ValidateQuestion checks that a question candidate has text, four options,
// a correct letter among A-D, an explanation and a source reference.
func ValidateQuestion(c generator.QuestionCandidate) error {
	if err := required("question", c.Question); err != nil {
		return err
	}
	for _, letter := range []string{"A", "B", "C", "D"} {
		if err := required("options."+letter, c.Options.Get(letter)); err != nil {
			return err
		}
	}
	if !models.ValidChoice(c.Correct) {
		return fmt.Errorf("%w: correct must be one of A, B, C, D, got %q", ErrSchema, c.Correct)
	}
	if err := required("explanation", c.Explanation); err != nil {
		return err
	}
	return required("source_ref", c.SourceRef)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrSchema, field)
	}
	return nil
}
