package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

const readTimeout = 15 * time.Second

func (s *Server) Routes() http.Handler {
	s.validate = newValidator()

	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(s.corsMiddleware())

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Use(studentMiddleware)

		// Generation waits on the provider and is bounded by its own timeout.
		r.Post("/flashcards/generate", s.handleGenerateFlashcards)
		r.Post("/mcq/generate", s.handleGenerateMCQs)

		r.Group(func(r chi.Router) {
			r.Use(timeoutMiddleware(readTimeout))

			r.Post("/transcripts", s.handleCreateTranscript)

			r.Get("/sets", s.handleListSets)
			r.Get("/sets/{id}", s.handleGetSet)
			r.Get("/sets/{id}/flashcards", s.handleSetFlashcards)
			r.Get("/sets/{id}/questions", s.handleSetQuestions)

			r.Get("/flashcards/due", s.handleDueFlashcards)
			r.Post("/flashcards/{id}/rate", s.handleRateFlashcard)
			r.Post("/mcq/submit", s.handleSubmitMCQs)

			r.Get("/progress", s.handleProgress)
			r.Get("/weak-topics", s.handleWeakTopics)
		})
	})

	return r
}

func (s *Server) corsMiddleware() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   s.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Accept", studentHeader, requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler
}
