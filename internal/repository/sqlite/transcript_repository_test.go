package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/lecturedeck/internal/repository"
	"github.com/vytor/lecturedeck/internal/repository/sqlite"
	"github.com/vytor/lecturedeck/internal/testutil"
)

type TranscriptRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.TranscriptRepository
}

func (s *TranscriptRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewTranscriptRepository(s.db)
}

func (s *TranscriptRepositorySuite) TestListOwned_KeepsRequestOrder() {
	a := insertTranscript(s.T(), s.db, 1, "alpha")
	b := insertTranscript(s.T(), s.db, 1, "beta")
	c := insertTranscript(s.T(), s.db, 1, "gamma")

	got, err := s.repo.ListOwned(context.Background(), 1, []int64{c, a, b, a})
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Assert().Equal("gamma", got[0].Text)
	s.Assert().Equal("alpha", got[1].Text)
	s.Assert().Equal("beta", got[2].Text)
}

func (s *TranscriptRepositorySuite) TestListOwned_FiltersForeignAndMissing() {
	mine := insertTranscript(s.T(), s.db, 1, "mine")
	theirs := insertTranscript(s.T(), s.db, 2, "theirs")

	got, err := s.repo.ListOwned(context.Background(), 1, []int64{theirs, 9999, mine})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Assert().Equal(mine, got[0].ID)
}

func (s *TranscriptRepositorySuite) TestListOwned_Empty() {
	got, err := s.repo.ListOwned(context.Background(), 1, nil)
	s.Assert().NoError(err)
	s.Assert().Empty(got)
}

func TestTranscriptRepositorySuite(t *testing.T) {
	suite.Run(t, new(TranscriptRepositorySuite))
}
