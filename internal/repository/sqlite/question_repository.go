package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
)

type questionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new QuestionRepository implementation
func NewQuestionRepository(db *sql.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

var questionColumns = []string{
	"q.id", "q.set_id", "q.question", "q.option_a", "q.option_b", "q.option_c", "q.option_d",
	"q.correct", "q.explanation", "q.source_ref", "q.difficulty", "q.created_at",
}

func scanQuestion(row interface{ Scan(...any) error }) (models.MCQQuestion, error) {
	var q models.MCQQuestion
	err := row.Scan(&q.ID, &q.SetID, &q.Question, &q.Options.A, &q.Options.B, &q.Options.C, &q.Options.D,
		&q.Correct, &q.Explanation, &q.SourceRef, &q.Difficulty, &q.CreatedAt)
	return q, err
}

func (r *questionRepository) ListBySet(ctx context.Context, setID int64) ([]models.MCQQuestion, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("listing questions: set_id=%d", setID)

	query, args, err := sqlBuilder.Select(questionColumns...).
		From("mcq_questions q").
		Where(squirrel.Eq{"q.set_id": setID}).
		OrderBy("q.id").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query questions: %v", err)
		return nil, err
	}
	defer rows.Close()

	questions := []models.MCQQuestion{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			log.Error("failed to scan question row: %v", err)
			return nil, err
		}
		questions = append(questions, q)
	}
	log.Debug("found %d questions", len(questions))
	return questions, rows.Err()
}

func (r *questionRepository) GetMany(ctx context.Context, studentID int64, ids []int64) (map[int64]models.MCQQuestion, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("getting questions: student_id=%d, ids=%v", studentID, ids)

	out := make(map[int64]models.MCQQuestion, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := sqlBuilder.Select(questionColumns...).
		From("mcq_questions q").
		Join("revision_sets s ON s.id = q.set_id").
		Where(squirrel.Eq{"q.id": ids, "s.student_id": studentID}).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query questions: %v", err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			log.Error("failed to scan question row: %v", err)
			return nil, err
		}
		out[q.ID] = q
	}
	log.Debug("resolved %d of %d questions", len(out), len(ids))
	return out, rows.Err()
}
