package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vytor/lecturedeck/internal/errors"
	"github.com/vytor/lecturedeck/internal/generator"
	"github.com/vytor/lecturedeck/internal/logger"
	"github.com/vytor/lecturedeck/internal/models"
	"github.com/vytor/lecturedeck/internal/repository"
	"github.com/vytor/lecturedeck/internal/validation"
)

// GenerationConfig bounds a generation request.
type GenerationConfig struct {
	// RetryBudget is the number of follow-up provider calls allowed to fill a shortfall.
	RetryBudget int
	// MaxItems caps the requested item count.
	MaxItems int
}

// GenerationService builds grounded study sets from a student's transcripts.
type GenerationService interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.GeneratedSet, error)
}

type generationService struct {
	transcripts repository.TranscriptRepository
	sets        repository.SetRepository
	gen         generator.Generator
	cfg         GenerationConfig
	now         func() time.Time
}

// NewGenerationService creates a new GenerationService
func NewGenerationService(
	transcripts repository.TranscriptRepository,
	sets repository.SetRepository,
	gen generator.Generator,
	cfg GenerationConfig,
) GenerationService {
	if cfg.RetryBudget < 0 {
		cfg.RetryBudget = 0
	}
	return &generationService{
		transcripts: transcripts,
		sets:        sets,
		gen:         gen,
		cfg:         cfg,
		now:         time.Now,
	}
}

// candidatePool accumulates candidates that passed both validators, in arrival order.
type candidatePool struct {
	kind       models.SetKind
	tokens     validation.TokenSet
	flashcards []generator.FlashcardCandidate
	questions  []generator.QuestionCandidate
	rejected   int
}

func (p *candidatePool) size() int {
	if p.kind == models.KindMCQ {
		return len(p.questions)
	}
	return len(p.flashcards)
}

func (p *candidatePool) accept(batch *generator.Batch) {
	if batch == nil {
		return
	}
	p.rejected += batch.Discarded

	switch p.kind {
	case models.KindFlashcard:
		for _, c := range batch.Flashcards {
			if validation.ValidateFlashcard(c) != nil || !validation.IsGrounded(validation.FlashcardText(c), p.tokens) {
				p.rejected++
				continue
			}
			p.flashcards = append(p.flashcards, c)
		}
	case models.KindMCQ:
		for _, c := range batch.Questions {
			if validation.ValidateQuestion(c) != nil || !validation.IsGrounded(validation.QuestionText(c), p.tokens) {
				p.rejected++
				continue
			}
			p.questions = append(p.questions, c)
		}
	}
}

func (s *generationService) Generate(ctx context.Context, req models.GenerationRequest) (*models.GeneratedSet, error) {
	log := logger.FromContext(ctx).WithPrefix("generation").WithFields(map[string]any{
		"student_id": req.StudentID,
		"kind":       req.Kind,
	})
	log.Info("generating set: transcripts=%v, count=%d, difficulty=%s", req.TranscriptIDs, req.Count, req.Difficulty)

	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyMedium
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	transcripts, err := s.transcripts.ListOwned(ctx, req.StudentID, req.TranscriptIDs)
	if err != nil {
		log.Error("failed to load transcripts: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if len(transcripts) == 0 {
		log.Warn("no owned transcripts among %v", req.TranscriptIDs)
		return nil, errors.NewNotFoundError("transcripts", req.TranscriptIDs)
	}

	text := CombineTranscripts(transcripts)
	pool := &candidatePool{kind: req.Kind, tokens: validation.NewTokenSet(text)}
	genReq := generator.Request{
		TranscriptText: text,
		Count:          req.Count,
		Difficulty:     req.Difficulty,
		Kind:           req.Kind,
	}

	batch, err := s.gen.Generate(ctx, genReq)
	if err != nil {
		if class, _ := generator.ClassOf(err); class != generator.MalformedResponse {
			log.Error("generation failed: %v", err)
			return nil, errors.NewProviderFailureError(err)
		}
		log.Warn("initial response was malformed: %v", err)
	}
	pool.accept(batch)
	log.Debug("initial pass: %d valid, %d rejected", pool.size(), pool.rejected)

	for retry := 1; pool.size() < req.Count && retry <= s.cfg.RetryBudget; retry++ {
		genReq.Count = req.Count - pool.size()
		log.Info("retry %d/%d: requesting %d more items", retry, s.cfg.RetryBudget, genReq.Count)

		batch, err := s.gen.Generate(ctx, genReq)
		if err != nil {
			log.Warn("retry %d yielded nothing: %v", retry, err)
			continue
		}
		pool.accept(batch)
	}

	switch got := pool.size(); {
	case got == 0:
		log.Warn("no grounded candidates after %d rejections", pool.rejected)
		return nil, errors.NewUngroundedContentError(string(req.Kind))
	case got < req.Count:
		log.Warn("insufficient yield: got %d of %d", got, req.Count)
		return nil, errors.NewInsufficientYieldError(string(req.Kind), got, req.Count)
	}

	out, err := s.persist(ctx, req, pool)
	if err != nil {
		log.Error("failed to persist set: %v", err)
		return nil, errors.NewInternalError(err)
	}

	transcriptIDs := make([]int64, 0, len(transcripts))
	for _, t := range transcripts {
		transcriptIDs = append(transcriptIDs, t.ID)
	}
	if err := s.sets.LinkTranscripts(ctx, out.Set.ID, transcriptIDs); err != nil {
		log.Warn("failed to link set %d to transcripts: %v", out.Set.ID, err)
	}
	out.TranscriptIDs = transcriptIDs

	log.Info("set %d created with %d items", out.Set.ID, out.Set.ItemCount)
	return out, nil
}

func (s *generationService) validate(req models.GenerationRequest) error {
	if req.StudentID <= 0 {
		return errors.NewValidationError("student_id", "is required")
	}
	if !req.Kind.Valid() {
		return errors.NewValidationError("kind", "must be flashcard or mcq")
	}
	if !req.Difficulty.Valid() {
		return errors.NewValidationError("difficulty", "must be easy, medium or hard")
	}
	if len(req.TranscriptIDs) == 0 {
		return errors.NewValidationError("transcript_ids", "must not be empty")
	}
	for _, id := range req.TranscriptIDs {
		if id <= 0 {
			return errors.NewValidationError("transcript_ids", "must be positive")
		}
	}
	if req.Count <= 0 {
		return errors.NewValidationError("count", "must be positive")
	}
	if s.cfg.MaxItems > 0 && req.Count > s.cfg.MaxItems {
		return errors.NewValidationError("count", fmt.Sprintf("must be at most %d", s.cfg.MaxItems))
	}
	return nil
}

func (s *generationService) persist(ctx context.Context, req models.GenerationRequest, pool *candidatePool) (*models.GeneratedSet, error) {
	now := s.now().UTC()
	set := models.RevisionSet{
		StudentID:  req.StudentID,
		Title:      strings.TrimSpace(req.Title),
		Kind:       req.Kind,
		Difficulty: req.Difficulty,
		CreatedAt:  now,
	}

	if req.Kind == models.KindMCQ {
		if set.Title == "" {
			set.Title = "MCQs " + now.Format(time.RFC3339)
		}
		questions := make([]models.MCQQuestion, 0, req.Count)
		for _, c := range pool.questions[:req.Count] {
			questions = append(questions, models.MCQQuestion{
				Question:    strings.TrimSpace(c.Question),
				Options:     trimOptions(c.Options),
				Correct:     c.Correct,
				Explanation: strings.TrimSpace(c.Explanation),
				SourceRef:   strings.TrimSpace(c.SourceRef),
				Difficulty:  req.Difficulty,
				CreatedAt:   now,
			})
		}
		return s.sets.CreateMCQSet(ctx, set, questions)
	}

	if set.Title == "" {
		set.Title = "Flashcards " + now.Format(time.RFC3339)
	}
	cards := make([]models.Flashcard, 0, req.Count)
	for _, c := range pool.flashcards[:req.Count] {
		cards = append(cards, models.Flashcard{
			Front:        strings.TrimSpace(c.Front),
			Back:         strings.TrimSpace(c.Back),
			SourceRef:    strings.TrimSpace(c.SourceRef),
			Box:          models.MinBox,
			NextReviewAt: now,
			EaseFactor:   models.DefaultEaseFactor,
			CreatedAt:    now,
		})
	}
	return s.sets.CreateFlashcardSet(ctx, set, cards)
}

// CombineTranscripts labels each transcript by position and joins them with blank lines.
func CombineTranscripts(transcripts []models.Transcript) string {
	parts := make([]string, 0, len(transcripts))
	for i, t := range transcripts {
		parts = append(parts, fmt.Sprintf("Transcript %d: %s", i+1, t.Text))
	}
	return strings.Join(parts, "\n\n")
}

func trimOptions(o models.Options) models.Options {
	return models.Options{
		A: strings.TrimSpace(o.A),
		B: strings.TrimSpace(o.B),
		C: strings.TrimSpace(o.C),
		D: strings.TrimSpace(o.D),
	}
}
