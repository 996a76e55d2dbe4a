package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

const selectProgress = `
SELECT student_id, total_flashcards_reviewed, total_mcqs_done, total_correct, current_streak_days, xp_points, last_active_date
FROM student_progress
WHERE student_id = ?
`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func loadProgress(ctx context.Context, q queryRower, studentID int64) (*models.Progress, error) {
	var p models.Progress
	var lastActive sql.NullTime
	err := q.QueryRowContext(ctx, selectProgress, studentID).Scan(
		&p.StudentID, &p.TotalFlashcardsReviewed, &p.TotalMCQsDone, &p.TotalCorrect,
		&p.CurrentStreakDays, &p.XPPoints, &lastActive,
	)
	if err != nil {
		return nil, err
	}
	p.LastActiveDate = timePtr(lastActive)
	return &p, nil
}

func (r *progressRepository) Get(ctx context.Context, studentID int64) (*models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: student_id=%d", studentID)

	p, err := loadProgress(ctx, r.db, studentID)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no progress yet: student_id=%d", studentID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	return p, nil
}

func (r *progressRepository) Apply(ctx context.Context, studentID int64, fn func(*models.Progress) error) (*models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("applying progress update: student_id=%d", studentID)

	var out *models.Progress
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO student_progress (student_id) VALUES (?)`, studentID); err != nil {
			log.Error("failed to ensure progress row: %v", err)
			return err
		}

		p, err := loadProgress(ctx, tx, studentID)
		if err != nil {
			log.Error("failed to load progress: %v", err)
			return err
		}

		if err := fn(p); err != nil {
			return err
		}

		var lastActive any
		if p.LastActiveDate != nil {
			lastActive = p.LastActiveDate.UTC()
		}
		_, err = tx.ExecContext(ctx, `
UPDATE student_progress
SET total_flashcards_reviewed = ?, total_mcqs_done = ?, total_correct = ?,
    current_streak_days = ?, xp_points = ?, last_active_date = ?, updated_at = ?
WHERE student_id = ?
`, p.TotalFlashcardsReviewed, p.TotalMCQsDone, p.TotalCorrect, p.CurrentStreakDays, p.XPPoints, lastActive, nowUTC(), studentID)
		if err != nil {
			log.Error("failed to update progress: %v", err)
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("progress updated: student_id=%d, xp=%d, streak=%d", studentID, out.XPPoints, out.CurrentStreakDays)
	return out, nil
}
