package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
	"github.com/vytor/lecturedeck/internal/repository/sqlite"
	"github.com/vytor/lecturedeck/internal/testutil"
)

type ProgressRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ProgressRepository
}

func (s *ProgressRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewProgressRepository(s.db)
}

func (s *ProgressRepositorySuite) TestGet_Missing() {
	p, err := s.repo.Get(context.Background(), 42)
	s.Assert().NoError(err)
	s.Assert().Nil(p)
}

func (s *ProgressRepositorySuite) TestApply_CreatesAndPersists() {
	ctx := context.Background()

	p, err := s.repo.Apply(ctx, 7, func(p *models.Progress) error {
		s.Assert().Equal(int64(7), p.StudentID)
		s.Assert().Nil(p.LastActiveDate)
		p.XPPoints = 55
		p.CurrentStreakDays = 1
		p.TotalFlashcardsReviewed = 1
		day := baseTime
		p.LastActiveDate = &day
		return nil
	})
	s.Require().NoError(err)
	s.Assert().Equal(55, p.XPPoints)

	stored, err := s.repo.Get(ctx, 7)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Assert().Equal(55, stored.XPPoints)
	s.Assert().Equal(1, stored.TotalFlashcardsReviewed)
	s.Require().NotNil(stored.LastActiveDate)
	s.Assert().True(baseTime.Equal(*stored.LastActiveDate))
}

func (s *ProgressRepositorySuite) TestApply_ErrorRollsBack() {
	ctx := context.Background()

	_, err := s.repo.Apply(ctx, 7, func(p *models.Progress) error {
		p.XPPoints = 1000
		return errors.New("boom")
	})
	s.Require().Error(err)

	stored, err := s.repo.Get(ctx, 7)
	s.Require().NoError(err)
	s.Assert().Nil(stored, "the lazily created row is rolled back too")
}

func (s *ProgressRepositorySuite) TestApply_ConcurrentUpdatesAreNotLost() {
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.Apply(ctx, 3, func(p *models.Progress) error {
				p.XPPoints += 5
				return nil
			})
			s.Assert().NoError(err)
		}()
	}
	wg.Wait()

	stored, err := s.repo.Get(ctx, 3)
	s.Require().NoError(err)
	s.Assert().Equal(100, stored.XPPoints)
}

func TestProgressRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProgressRepositorySuite))
}
