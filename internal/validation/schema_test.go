package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/lecturedeck/internal/generator"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/validation"
)

func validQuestion() generator.QuestionCandidate {
	return generator.QuestionCandidate{
		Question:    "Where does photosynthesis occur?",
		Options:     models.Options{A: "Mitochondria", B: "Chloroplast", C: "Nucleus", D: "Ribosome"},
		Correct:     "B",
		Explanation: "Chloroplasts host photosynthesis.",
		SourceRef:   "Transcript 1",
	}
}

func TestValidateFlashcard(t *testing.T) {
	tests := []struct {
		name    string
		card    generator.FlashcardCandidate
		wantErr bool
	}{
		{name: "valid", card: generator.FlashcardCandidate{Front: "f", Back: "b", SourceRef: "s"}},
		{name: "missing front", card: generator.FlashcardCandidate{Back: "b", SourceRef: "s"}, wantErr: true},
		{name: "missing back", card: generator.FlashcardCandidate{Front: "f", SourceRef: "s"}, wantErr: true},
		{name: "missing source", card: generator.FlashcardCandidate{Front: "f", Back: "b"}, wantErr: true},
		{name: "whitespace front", card: generator.FlashcardCandidate{Front: "  \t", Back: "b", SourceRef: "s"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateFlashcard(tt.card)
			if tt.wantErr {
				assert.ErrorIs(t, err, validation.ErrSchema)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*generator.QuestionCandidate)
		wantErr string
	}{
		{name: "valid", mutate: func(*generator.QuestionCandidate) {}},
		{name: "missing question", mutate: func(q *generator.QuestionCandidate) { q.Question = "" }, wantErr: "question"},
		{name: "missing option C", mutate: func(q *generator.QuestionCandidate) { q.Options.C = " " }, wantErr: "options.C"},
		{name: "lowercase correct", mutate: func(q *generator.QuestionCandidate) { q.Correct = "b" }, wantErr: "correct"},
		{name: "correct E", mutate: func(q *generator.QuestionCandidate) { q.Correct = "E" }, wantErr: "correct"},
		{name: "missing explanation", mutate: func(q *generator.QuestionCandidate) { q.Explanation = "" }, wantErr: "explanation"},
		{name: "missing source", mutate: func(q *generator.QuestionCandidate) { q.SourceRef = "" }, wantErr: "source_ref"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)

			err := validation.ValidateQuestion(q)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, validation.ErrSchema)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
