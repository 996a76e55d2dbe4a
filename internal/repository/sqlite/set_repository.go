package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
)

type setRepository struct {
	db *sql.DB
}

// NewSetRepository creates a new SetRepository implementation
func NewSetRepository(db *sql.DB) repository.SetRepository {
	return &setRepository{db: db}
}

var setColumns = []string{"id", "student_id", "title", "kind", "difficulty", "item_count", "created_at"}

func scanSet(row interface{ Scan(...any) error }) (models.RevisionSet, error) {
	var s models.RevisionSet
	err := row.Scan(&s.ID, &s.StudentID, &s.Title, &s.Kind, &s.Difficulty, &s.ItemCount, &s.CreatedAt)
	return s, err
}

func insertSet(ctx context.Context, tx *sql.Tx, set *models.RevisionSet) error {
	if set.CreatedAt.IsZero() {
		set.CreatedAt = nowUTC()
	}
	res, err := tx.ExecContext(ctx, `
INSERT INTO revision_sets (student_id, title, kind, difficulty, item_count, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`, set.StudentID, set.Title, set.Kind, set.Difficulty, set.ItemCount, set.CreatedAt.UTC())
	if err != nil {
		return err
	}
	set.ID, err = res.LastInsertId()
	return err
}

func (r *setRepository) CreateFlashcardSet(ctx context.Context, set models.RevisionSet, cards []models.Flashcard) (*models.GeneratedSet, error) {
	log := logger.FromContext(ctx).WithPrefix("set_repo")
	log.Debug("creating flashcard set: student_id=%d, cards=%d", set.StudentID, len(cards))

	set.Kind = models.KindFlashcard
	set.ItemCount = len(cards)
	out := &models.GeneratedSet{}

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		if err := insertSet(ctx, tx, &set); err != nil {
			log.Error("failed to insert set: %v", err)
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO flashcards (set_id, front, back, source_ref, box, next_review_at, ease_factor, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`)
		if err != nil {
			log.Error("failed to prepare flashcard insert: %v", err)
			return err
		}
		defer stmt.Close()

		for _, c := range cards {
			c.SetID = set.ID
			if c.Box == 0 {
				c.Box = models.MinBox
			}
			if c.EaseFactor == 0 {
				c.EaseFactor = models.DefaultEaseFactor
			}
			if c.CreatedAt.IsZero() {
				c.CreatedAt = set.CreatedAt
			}
			if c.NextReviewAt.IsZero() {
				c.NextReviewAt = c.CreatedAt
			}
			res, err := stmt.ExecContext(ctx, c.SetID, c.Front, c.Back, c.SourceRef, c.Box, c.NextReviewAt.UTC(), c.EaseFactor, c.CreatedAt.UTC())
			if err != nil {
				log.Error("failed to insert flashcard: %v", err)
				return err
			}
			if c.ID, err = res.LastInsertId(); err != nil {
				return err
			}
			out.Flashcards = append(out.Flashcards, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.Set = set
	log.Info("flashcard set created: id=%d, cards=%d", set.ID, len(out.Flashcards))
	return out, nil
}

func (r *setRepository) CreateMCQSet(ctx context.Context, set models.RevisionSet, questions []models.MCQQuestion) (*models.GeneratedSet, error) {
	log := logger.FromContext(ctx).WithPrefix("set_repo")
	log.Debug("creating mcq set: student_id=%d, questions=%d", set.StudentID, len(questions))

	set.Kind = models.KindMCQ
	set.ItemCount = len(questions)
	out := &models.GeneratedSet{}

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		if err := insertSet(ctx, tx, &set); err != nil {
			log.Error("failed to insert set: %v", err)
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO mcq_questions (set_id, question, option_a, option_b, option_c, option_d, correct, explanation, source_ref, difficulty, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
		if err != nil {
			log.Error("failed to prepare question insert: %v", err)
			return err
		}
		defer stmt.Close()

		for _, q := range questions {
			q.SetID = set.ID
			if q.Difficulty == "" {
				q.Difficulty = set.Difficulty
			}
			if q.CreatedAt.IsZero() {
				q.CreatedAt = set.CreatedAt
			}
			res, err := stmt.ExecContext(ctx, q.SetID, q.Question, q.Options.A, q.Options.B, q.Options.C, q.Options.D,
				q.Correct, q.Explanation, q.SourceRef, q.Difficulty, q.CreatedAt.UTC())
			if err != nil {
				log.Error("failed to insert question: %v", err)
				return err
			}
			if q.ID, err = res.LastInsertId(); err != nil {
				return err
			}
			out.Questions = append(out.Questions, q)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.Set = set
	log.Info("mcq set created: id=%d, questions=%d", set.ID, len(out.Questions))
	return out, nil
}

func (r *setRepository) LinkTranscripts(ctx context.Context, setID int64, transcriptIDs []int64) error {
	log := logger.FromContext(ctx).WithPrefix("set_repo")
	log.Debug("linking set %d to transcripts %v", setID, transcriptIDs)

	if len(transcriptIDs) == 0 {
		return nil
	}

	insert := sqlBuilder.Insert("set_transcripts").Options("OR IGNORE").Columns("set_id", "transcript_id")
	for _, id := range transcriptIDs {
		insert = insert.Values(setID, id)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to link transcripts: %v", err)
		return err
	}
	return nil
}

func (r *setRepository) TranscriptIDs(ctx context.Context, setID int64) ([]int64, error) {
	log := logger.FromContext(ctx).WithPrefix("set_repo")

	rows, err := r.db.QueryContext(ctx, `SELECT transcript_id FROM set_transcripts WHERE set_id = ? ORDER BY rowid`, setID)
	if err != nil {
		log.Error("failed to query set transcripts: %v", err)
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *setRepository) Get(ctx context.Context, id int64) (*models.RevisionSet, error) {
	log := logger.FromContext(ctx).WithPrefix("set_repo")
	log.Debug("getting set: id=%d", id)

	query, args, err := sqlBuilder.Select(setColumns...).From("revision_sets").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	s, err := scanSet(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("set not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get set: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *setRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.RevisionSet, error) {
	log := logger.FromContext(ctx).WithPrefix("set_repo")
	log.Debug("listing sets: student_id=%d", studentID)

	query, args, err := sqlBuilder.Select(setColumns...).
		From("revision_sets").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list sets: %v", err)
		return nil, err
	}
	defer rows.Close()

	sets := []models.RevisionSet{}
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			log.Error("failed to scan set row: %v", err)
			return nil, err
		}
		sets = append(sets, s)
	}
	log.Debug("found %d sets", len(sets))
	return sets, rows.Err()
}

func (r *setRepository) CountByStudent(ctx context.Context, studentID int64) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("set_repo")

	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM revision_sets WHERE student_id = ?`, studentID).Scan(&n); err != nil {
		log.Error("failed to count sets: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *setRepository) CountTranscriptsStudied(ctx context.Context, studentID int64) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("set_repo")

	var n int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(DISTINCT st.transcript_id)
FROM set_transcripts st
JOIN revision_sets s ON s.id = st.set_id
WHERE s.student_id = ?
`, studentID).Scan(&n)
	if err != nil {
		log.Error("failed to count studied transcripts: %v", err)
		return 0, err
	}
	return n, nil
}
