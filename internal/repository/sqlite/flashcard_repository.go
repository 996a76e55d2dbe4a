package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
)

type flashcardRepository struct {
	db *sql.DB
}

// NewFlashcardRepository creates a new FlashcardRepository implementation
func NewFlashcardRepository(db *sql.DB) repository.FlashcardRepository {
	return &flashcardRepository{db: db}
}

func scanFlashcard(row interface{ Scan(...any) error }) (models.Flashcard, error) {
	var c models.Flashcard
	err := row.Scan(&c.ID, &c.SetID, &c.Front, &c.Back, &c.SourceRef, &c.Box, &c.NextReviewAt, &c.EaseFactor, &c.CreatedAt)
	return c, err
}

func (r *flashcardRepository) Get(ctx context.Context, id int64, studentID int64) (*models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("getting flashcard: id=%d, student_id=%d", id, studentID)

	c, err := scanFlashcard(r.db.QueryRowContext(ctx, `
SELECT f.id, f.set_id, f.front, f.back, f.source_ref, f.box, f.next_review_at, f.ease_factor, f.created_at
FROM flashcards f
JOIN revision_sets s ON s.id = f.set_id
WHERE f.id = ? AND s.student_id = ?
`, id, studentID))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("flashcard not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get flashcard: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *flashcardRepository) ListBySet(ctx context.Context, setID int64) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("listing flashcards: set_id=%d", setID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, set_id, front, back, source_ref, box, next_review_at, ease_factor, created_at
FROM flashcards
WHERE set_id = ?
ORDER BY id
`, setID)
	if err != nil {
		log.Error("failed to query flashcards: %v", err)
		return nil, err
	}
	defer rows.Close()

	cards := []models.Flashcard{}
	for rows.Next() {
		c, err := scanFlashcard(rows)
		if err != nil {
			log.Error("failed to scan flashcard row: %v", err)
			return nil, err
		}
		cards = append(cards, c)
	}
	log.Debug("found %d flashcards", len(cards))
	return cards, rows.Err()
}

func (r *flashcardRepository) Due(ctx context.Context, studentID int64, now time.Time, limit int) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("fetching due flashcards: student_id=%d, limit=%d", studentID, limit)

	query, args, err := sqlBuilder.
		Select("f.id", "f.set_id", "f.front", "f.back", "f.source_ref", "f.box", "f.next_review_at", "f.ease_factor", "f.created_at").
		From("flashcards f").
		Join("revision_sets s ON s.id = f.set_id").
		Where("s.student_id = ?", studentID).
		Where("f.next_review_at <= ?", now.UTC()).
		OrderBy("f.next_review_at", "f.id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query due flashcards: %v", err)
		return nil, err
	}
	defer rows.Close()

	cards := []models.Flashcard{}
	for rows.Next() {
		c, err := scanFlashcard(rows)
		if err != nil {
			log.Error("failed to scan flashcard row: %v", err)
			return nil, err
		}
		cards = append(cards, c)
	}
	log.Debug("found %d due flashcards", len(cards))
	return cards, rows.Err()
}

func (r *flashcardRepository) UpdateSchedule(ctx context.Context, id int64, fromBox, box int, nextReviewAt time.Time) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("updating flashcard schedule: id=%d, box=%d->%d, next_review=%s", id, fromBox, box, nextReviewAt.Format(time.RFC3339))

	res, err := r.db.ExecContext(ctx, `UPDATE flashcards SET box = ?, next_review_at = ? WHERE id = ? AND box = ?`, box, nextReviewAt.UTC(), id, fromBox)
	if err != nil {
		log.Error("failed to update flashcard: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		log.Debug("flashcard %d is no longer in box %d", id, fromBox)
	}
	return n > 0, nil
}

func (r *flashcardRepository) InsertReview(ctx context.Context, review models.FlashcardReview) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("inserting review: flashcard_id=%d, rating=%d, time=%.2fs", review.FlashcardID, review.Rating, review.TimeSeconds)

	reviewedAt := review.ReviewedAt
	if reviewedAt.IsZero() {
		reviewedAt = nowUTC()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO flashcard_reviews (flashcard_id, rating, time_seconds, reviewed_at)
VALUES (?, ?, ?, ?)
`, review.FlashcardID, review.Rating, review.TimeSeconds, reviewedAt.UTC())
	if err != nil {
		log.Error("failed to insert review: %v", err)
	}
	return err
}
