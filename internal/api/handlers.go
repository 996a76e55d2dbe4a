package api

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/vytor/lecturedeck/internal/services"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	DB                 Pinger
	GenerationService  services.GenerationService
	SetService         services.SetService
	FlashcardService   services.FlashcardService
	QuizService        services.QuizService
	ProgressService    services.ProgressService
	TranscriptService  services.TranscriptService
	CORSAllowedOrigins []string

	validate *validator.Validate // set by Routes
}
