package sqlite_test

import (
	"context"
	"database/sql"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository/sqlite"
)

var baseTime = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

func insertTranscript(t require.TestingT, db *sql.DB, studentID int64, text string) int64 {
	id, err := sqlite.NewTranscriptRepository(db).Insert(context.Background(), models.Transcript{
		StudentID: studentID,
		Title:     "Lecture",
		Text:      text,
		CreatedAt: baseTime,
	})
	require.NoError(t, err)
	return id
}

func createFlashcardSet(t require.TestingT, db *sql.DB, studentID int64, fronts ...string) *models.GeneratedSet {
	cards := make([]models.Flashcard, 0, len(fronts))
	for _, f := range fronts {
		cards = append(cards, models.Flashcard{Front: f, Back: "back of " + f, SourceRef: "Transcript 1"})
	}
	set, err := sqlite.NewSetRepository(db).CreateFlashcardSet(context.Background(), models.RevisionSet{
		StudentID:  studentID,
		Title:      "Cards",
		Difficulty: models.DifficultyMedium,
		CreatedAt:  baseTime,
	}, cards)
	require.NoError(t, err)
	return set
}

func createMCQSet(t require.TestingT, db *sql.DB, studentID int64, sourceRefs ...string) *models.GeneratedSet {
	questions := make([]models.MCQQuestion, 0, len(sourceRefs))
	for _, ref := range sourceRefs {
		questions = append(questions, models.MCQQuestion{
			Question:    "Question about " + ref,
			Options:     models.Options{A: "a", B: "b", C: "c", D: "d"},
			Correct:     "C",
			Explanation: "because",
			SourceRef:   ref,
		})
	}
	set, err := sqlite.NewSetRepository(db).CreateMCQSet(context.Background(), models.RevisionSet{
		StudentID:  studentID,
		Title:      "Quiz",
		Difficulty: models.DifficultyHard,
		CreatedAt:  baseTime,
	}, questions)
	require.NoError(t, err)
	return set
}
