package sqlite

import (
	"context"
	"database/sql"

	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
)

type attemptRepository struct {
	db *sql.DB
}

// NewAttemptRepository creates a new AttemptRepository implementation
func NewAttemptRepository(db *sql.DB) repository.AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) InsertBatch(ctx context.Context, attempts []models.Attempt) ([]int64, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("batch inserting %d attempts", len(attempts))

	if len(attempts) == 0 {
		return nil, nil
	}

	var ids []int64
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO mcq_attempts (student_id, question_id, selected, is_correct, time_taken_ms, attempted_at)
VALUES (?, ?, ?, ?, ?, ?)
`)
		if err != nil {
			log.Error("failed to prepare batch insert: %v", err)
			return err
		}
		defer stmt.Close()

		for _, a := range attempts {
			attemptedAt := a.AttemptedAt
			if attemptedAt.IsZero() {
				attemptedAt = nowUTC()
			}
			res, err := stmt.ExecContext(ctx, a.StudentID, a.QuestionID, a.Selected, a.IsCorrect, a.TimeTakenMs, attemptedAt.UTC())
			if err != nil {
				log.Error("failed to insert attempt question_id=%d: %v", a.QuestionID, err)
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("batch insert completed, %d attempts inserted", len(ids))
	return ids, nil
}

func (r *attemptRepository) ListWithSource(ctx context.Context, studentID int64) ([]models.AttemptWithSource, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("listing attempts with source: student_id=%d", studentID)

	rows, err := r.db.QueryContext(ctx, `
SELECT a.question_id, a.is_correct, COALESCE(q.source_ref, '')
FROM mcq_attempts a
LEFT JOIN mcq_questions q ON q.id = a.question_id
WHERE a.student_id = ?
ORDER BY a.attempted_at, a.id
`, studentID)
	if err != nil {
		log.Error("failed to query attempts: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.AttemptWithSource
	for rows.Next() {
		var a models.AttemptWithSource
		if err := rows.Scan(&a.QuestionID, &a.IsCorrect, &a.SourceRef); err != nil {
			log.Error("failed to scan attempt row: %v", err)
			return nil, err
		}
		out = append(out, a)
	}
	log.Debug("found %d attempts", len(out))
	return out, rows.Err()
}
