package services

import (
	"context"
	"time"

	"github.com/vytor/lecturedeck/internal/errors"
	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
)

// QuizService handles multiple-choice sets and answer submission
type QuizService interface {
	ListBySet(ctx context.Context, studentID, setID int64) ([]models.MCQQuestion, error)
	Submit(ctx context.Context, studentID int64, answers []models.Answer) (*models.SubmitResult, error)
}

type quizService struct {
	questions repository.QuestionRepository
	attempts  repository.AttemptRepository
	sets      repository.SetRepository
	progress  ProgressService
	now       func() time.Time
}

// NewQuizService creates a new QuizService
func NewQuizService(
	questions repository.QuestionRepository,
	attempts repository.AttemptRepository,
	sets repository.SetRepository,
	progress ProgressService,
) QuizService {
	return &quizService{
		questions: questions,
		attempts:  attempts,
		sets:      sets,
		progress:  progress,
		now:       time.Now,
	}
}

func (s *quizService) ListBySet(ctx context.Context, studentID, setID int64) ([]models.MCQQuestion, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing questions: set_id=%d", setID)

	set, err := ownedSet(ctx, s.sets, studentID, setID)
	if err != nil {
		return nil, err
	}
	if set.Kind != models.KindMCQ {
		return nil, errors.NewBadRequestError("set is not a multiple-choice set")
	}

	questions, err := s.questions.ListBySet(ctx, setID)
	if err != nil {
		log.Error("failed to list questions: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return questions, nil
}

// Submit grades answers against the student's own questions. Answers to
// unknown questions are skipped. Progress moves only when something was recorded.
func (s *quizService) Submit(ctx context.Context, studentID int64, answers []models.Answer) (*models.SubmitResult, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz").WithField("student_id", studentID)
	log.Debug("submitting %d answers", len(answers))

	if len(answers) == 0 {
		return nil, errors.NewValidationError("answers", "must not be empty")
	}
	ids := make([]int64, 0, len(answers))
	for _, a := range answers {
		if !models.ValidChoice(a.Selected) {
			return nil, errors.NewValidationError("selected", "must be one of A, B, C, D")
		}
		if a.TimeTakenMs < 0 {
			return nil, errors.NewValidationError("time_taken_ms", "must not be negative")
		}
		ids = append(ids, a.QuestionID)
	}

	questions, err := s.questions.GetMany(ctx, studentID, ids)
	if err != nil {
		log.Error("failed to load questions: %v", err)
		return nil, errors.NewInternalError(err)
	}

	now := s.now().UTC()
	result := &models.SubmitResult{Submitted: []models.SubmittedAnswer{}}
	var attempts []models.Attempt
	for _, a := range answers {
		q, ok := questions[a.QuestionID]
		if !ok {
			log.Debug("skipping unknown question %d", a.QuestionID)
			continue
		}
		correct := a.Selected == q.Correct
		attempts = append(attempts, models.Attempt{
			StudentID:   studentID,
			QuestionID:  q.ID,
			Selected:    a.Selected,
			IsCorrect:   correct,
			TimeTakenMs: a.TimeTakenMs,
			AttemptedAt: now,
		})
		result.Submitted = append(result.Submitted, models.SubmittedAnswer{
			QuestionID:  q.ID,
			Selected:    a.Selected,
			IsCorrect:   correct,
			Correct:     q.Correct,
			Explanation: q.Explanation,
			SourceRef:   q.SourceRef,
		})
		if correct {
			result.Score.Correct++
		}
	}
	result.Score.Total = len(attempts)

	if len(attempts) == 0 {
		log.Info("no known questions in submission")
		return result, nil
	}

	if _, err := s.attempts.InsertBatch(ctx, attempts); err != nil {
		log.Error("failed to record attempts: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if _, err := s.progress.ApplyMCQAttempts(ctx, studentID, attempts); err != nil {
		log.Error("failed to update progress after submission: %v", err)
	}

	log.Info("recorded %d attempts, %d correct", result.Score.Total, result.Score.Correct)
	return result, nil
}
