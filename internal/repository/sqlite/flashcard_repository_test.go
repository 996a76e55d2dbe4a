package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
	"github.com/vytor/lecturedeck/internal/repository/sqlite"
	"github.com/vytor/lecturedeck/internal/testutil"
)

type FlashcardRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.FlashcardRepository
}

func (s *FlashcardRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewFlashcardRepository(s.db)
}

func (s *FlashcardRepositorySuite) TestGet_ChecksOwnership() {
	ctx := context.Background()
	set := createFlashcardSet(s.T(), s.db, 1, "Mitosis")
	id := set.Flashcards[0].ID

	card, err := s.repo.Get(ctx, id, 1)
	s.Require().NoError(err)
	s.Require().NotNil(card)
	s.Assert().Equal("Mitosis", card.Front)

	card, err = s.repo.Get(ctx, id, 2)
	s.Assert().NoError(err)
	s.Assert().Nil(card, "another student's card is not found")
}

func (s *FlashcardRepositorySuite) TestUpdateSchedule() {
	ctx := context.Background()
	set := createFlashcardSet(s.T(), s.db, 1, "Mitosis")
	id := set.Flashcards[0].ID
	next := baseTime.AddDate(0, 0, 6)

	updated, err := s.repo.UpdateSchedule(ctx, id, 1, 3, next)
	s.Require().NoError(err)
	s.Assert().True(updated)

	card, err := s.repo.Get(ctx, id, 1)
	s.Require().NoError(err)
	s.Assert().Equal(3, card.Box)
	s.Assert().True(next.Equal(card.NextReviewAt))
}

func (s *FlashcardRepositorySuite) TestUpdateSchedule_StaleBoxIsNotWritten() {
	ctx := context.Background()
	set := createFlashcardSet(s.T(), s.db, 1, "Mitosis")
	id := set.Flashcards[0].ID

	updated, err := s.repo.UpdateSchedule(ctx, id, 1, 2, baseTime.AddDate(0, 0, 4))
	s.Require().NoError(err)
	s.Require().True(updated)

	// A second rating computed from the same read of box 1 must not overwrite box 2.
	updated, err = s.repo.UpdateSchedule(ctx, id, 1, 3, baseTime.AddDate(0, 0, 6))
	s.Require().NoError(err)
	s.Assert().False(updated)

	card, err := s.repo.Get(ctx, id, 1)
	s.Require().NoError(err)
	s.Assert().Equal(2, card.Box)
	s.Assert().True(baseTime.AddDate(0, 0, 4).Equal(card.NextReviewAt))
}

func (s *FlashcardRepositorySuite) TestDue() {
	ctx := context.Background()
	set := createFlashcardSet(s.T(), s.db, 1, "due-later", "due-now", "future")
	createFlashcardSet(s.T(), s.db, 2, "someone else")

	for _, u := range []struct {
		id   int64
		box  int
		next time.Time
	}{
		{set.Flashcards[0].ID, 2, baseTime.Add(2 * time.Hour)},
		{set.Flashcards[1].ID, 1, baseTime.Add(time.Hour)},
		{set.Flashcards[2].ID, 4, baseTime.AddDate(0, 0, 8)},
	} {
		updated, err := s.repo.UpdateSchedule(ctx, u.id, 1, u.box, u.next)
		s.Require().NoError(err)
		s.Require().True(updated)
	}

	due, err := s.repo.Due(ctx, 1, baseTime.Add(3*time.Hour), 10)
	s.Require().NoError(err)
	s.Require().Len(due, 2)
	s.Assert().Equal("due-now", due[0].Front, "earliest review first")
	s.Assert().Equal("due-later", due[1].Front)

	due, err = s.repo.Due(ctx, 1, baseTime.Add(3*time.Hour), 1)
	s.Require().NoError(err)
	s.Assert().Len(due, 1)
}

func (s *FlashcardRepositorySuite) TestInsertReview() {
	ctx := context.Background()
	set := createFlashcardSet(s.T(), s.db, 1, "Mitosis")

	err := s.repo.InsertReview(ctx, models.FlashcardReview{
		FlashcardID: set.Flashcards[0].ID,
		Rating:      3,
		TimeSeconds: 4.5,
	})
	s.Require().NoError(err)

	var rating int
	var seconds float64
	err = s.db.QueryRowContext(ctx, `SELECT rating, time_seconds FROM flashcard_reviews WHERE flashcard_id = ?`, set.Flashcards[0].ID).Scan(&rating, &seconds)
	s.Require().NoError(err)
	s.Assert().Equal(3, rating)
	s.Assert().Equal(4.5, seconds)
}

func TestFlashcardRepositorySuite(t *testing.T) {
	suite.Run(t, new(FlashcardRepositorySuite))
}
