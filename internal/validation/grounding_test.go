package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/lecturedeck/internal/generator"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/validation"
)

const transcript = "Transcript 1: Photosynthesis converts light energy into chemical energy inside the chloroplast."

func TestTokenize(t *testing.T) {
	tokens := validation.Tokenize("The Krebs-cycle (TCA) runs in 2024, ok? Mitochondria!")

	assert.Equal(t, []string{"krebs", "cycle", "runs", "2024", "mitochondria"}, tokens)
}

func TestTokenize_DropsShortTokens(t *testing.T) {
	assert.Empty(t, validation.Tokenize("a an the cat dog"))
}

func TestTokenize_NonASCIIBecomesSeparator(t *testing.T) {
	assert.Equal(t, []string{"latte"}, validation.Tokenize("café latte"))
	assert.Equal(t, []string{"teria"}, validation.Tokenize("caféteria"))
}

func TestIsGrounded(t *testing.T) {
	tokens := validation.NewTokenSet(transcript)

	assert.True(t, validation.IsGrounded("What does photosynthesis produce?", tokens))
	assert.True(t, validation.IsGrounded("CHLOROPLAST", tokens), "matching is case-insensitive")
	assert.False(t, validation.IsGrounded("Quantum entanglement of bosons", tokens))
	assert.False(t, validation.IsGrounded("the and for", tokens), "short tokens never ground")
}

func TestIsGrounded_EmptyTranscript(t *testing.T) {
	assert.False(t, validation.IsGrounded("photosynthesis", validation.NewTokenSet("")))
}

func TestFlashcardText(t *testing.T) {
	c := generator.FlashcardCandidate{Front: "Quantum", Back: "Bosons", SourceRef: "Chloroplast section"}

	assert.Equal(t, "Quantum Bosons Chloroplast section", validation.FlashcardText(c))
	assert.True(t, validation.IsGrounded(validation.FlashcardText(c), validation.NewTokenSet(transcript)),
		"source_ref counts toward grounding")
}

func TestQuestionText(t *testing.T) {
	c := generator.QuestionCandidate{
		Question:    "Q",
		Options:     models.Options{A: "a", B: "b", C: "c", D: "d"},
		Correct:     "A",
		Explanation: "E",
		SourceRef:   "S",
	}

	assert.Equal(t, "Q a b c d E S", validation.QuestionText(c))
}
