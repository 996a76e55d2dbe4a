package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
	"github.com/vytor/lecturedeck/internal/repository/sqlite"
	"github.com/vytor/lecturedeck/internal/testutil"
)

type QuizRepositorySuite struct {
	suite.Suite
	db        *sql.DB
	questions repository.QuestionRepository
	attempts  repository.AttemptRepository
}

func (s *QuizRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.questions = sqlite.NewQuestionRepository(s.db)
	s.attempts = sqlite.NewAttemptRepository(s.db)
}

func (s *QuizRepositorySuite) TestGetMany_OnlyOwnedQuestions() {
	ctx := context.Background()
	mine := createMCQSet(s.T(), s.db, 1, "T1", "T2")
	theirs := createMCQSet(s.T(), s.db, 2, "T3")

	ids := []int64{mine.Questions[0].ID, theirs.Questions[0].ID, mine.Questions[1].ID, 9999}
	got, err := s.questions.GetMany(ctx, 1, ids)
	s.Require().NoError(err)

	s.Assert().Len(got, 2)
	s.Assert().Contains(got, mine.Questions[0].ID)
	s.Assert().Contains(got, mine.Questions[1].ID)
	s.Assert().NotContains(got, theirs.Questions[0].ID)
}

func (s *QuizRepositorySuite) TestInsertBatchAndListWithSource() {
	ctx := context.Background()
	set := createMCQSet(s.T(), s.db, 1, "T1, para 1", "T2")

	ids, err := s.attempts.InsertBatch(ctx, []models.Attempt{
		{StudentID: 1, QuestionID: set.Questions[0].ID, Selected: "A", IsCorrect: false, TimeTakenMs: 1200, AttemptedAt: baseTime},
		{StudentID: 1, QuestionID: set.Questions[1].ID, Selected: "C", IsCorrect: true, TimeTakenMs: 800, AttemptedAt: baseTime},
	})
	s.Require().NoError(err)
	s.Assert().Len(ids, 2)

	got, err := s.attempts.ListWithSource(ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Assert().Equal(models.AttemptWithSource{QuestionID: set.Questions[0].ID, IsCorrect: false, SourceRef: "T1, para 1"}, got[0])
	s.Assert().Equal(models.AttemptWithSource{QuestionID: set.Questions[1].ID, IsCorrect: true, SourceRef: "T2"}, got[1])

	other, err := s.attempts.ListWithSource(ctx, 2)
	s.Require().NoError(err)
	s.Assert().Empty(other)
}

func (s *QuizRepositorySuite) TestInsertBatch_RejectsNegativeTime() {
	ctx := context.Background()
	set := createMCQSet(s.T(), s.db, 1, "T1")

	_, err := s.attempts.InsertBatch(ctx, []models.Attempt{
		{StudentID: 1, QuestionID: set.Questions[0].ID, Selected: "A", TimeTakenMs: 10},
		{StudentID: 1, QuestionID: set.Questions[0].ID, Selected: "B", TimeTakenMs: -1},
	})
	s.Require().Error(err)

	got, err := s.attempts.ListWithSource(ctx, 1)
	s.Require().NoError(err)
	s.Assert().Empty(got, "batch is all or nothing")
}

func TestQuizRepositorySuite(t *testing.T) {
	suite.Run(t, new(QuizRepositorySuite))
}
