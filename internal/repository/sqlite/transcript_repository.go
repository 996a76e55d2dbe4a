package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
)

type transcriptRepository struct {
	db *sql.DB
}

// NewTranscriptRepository creates a new TranscriptRepository implementation
func NewTranscriptRepository(db *sql.DB) repository.TranscriptRepository {
	return &transcriptRepository{db: db}
}

func (r *transcriptRepository) ListOwned(ctx context.Context, studentID int64, ids []int64) ([]models.Transcript, error) {
	log := logger.FromContext(ctx).WithPrefix("transcript_repo")
	log.Debug("listing owned transcripts: student_id=%d, ids=%v", studentID, ids)

	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlBuilder.
		Select("id", "student_id", "title", "text", "created_at").
		From("transcripts").
		Where(squirrel.Eq{"student_id": studentID, "id": ids}).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query transcripts: %v", err)
		return nil, err
	}
	defer rows.Close()

	byID := make(map[int64]models.Transcript, len(ids))
	for rows.Next() {
		var t models.Transcript
		if err := rows.Scan(&t.ID, &t.StudentID, &t.Title, &t.Text, &t.CreatedAt); err != nil {
			log.Error("failed to scan transcript row: %v", err)
			return nil, err
		}
		byID[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Keep request order and drop duplicate ids.
	var out []models.Transcript
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
			delete(byID, id)
		}
	}
	log.Debug("resolved %d of %d transcripts", len(out), len(ids))
	return out, nil
}

func (r *transcriptRepository) Insert(ctx context.Context, t models.Transcript) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("transcript_repo")
	log.Debug("inserting transcript: student_id=%d, title=%s", t.StudentID, t.Title)

	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = nowUTC()
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO transcripts (student_id, title, text, created_at)
VALUES (?, ?, ?, ?)
`, t.StudentID, t.Title, t.Text, createdAt.UTC())
	if err != nil {
		log.Error("failed to insert transcript: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get transcript id: %v", err)
		return 0, err
	}
	log.Debug("transcript inserted: id=%d", id)
	return id, nil
}
