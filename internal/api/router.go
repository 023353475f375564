package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/leflux-api/internal/api/middleware"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Vocab  *VocabHandler
	Review *ReviewHandler
	Texts  *TextHandler
	Story  *StoryHandler
	DB     Pinger
}

// NewRouter builds the HTTP routes.
func NewRouter(h Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Trace(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", HealthHandler(h.DB))

	r.Route("/api", func(r chi.Router) {
		r.Route("/vocab", func(r chi.Router) {
			r.Post("/", h.Vocab.Create)
			r.Get("/", h.Vocab.List)
			r.Get("/{id}", h.Vocab.Get)
			r.Put("/{id}", h.Vocab.Update)
			r.Delete("/{id}", h.Vocab.Delete)
			r.Post("/{id}/sentences", h.Vocab.AddSentence)
			r.Get("/{id}/reviews", h.Vocab.History)
			r.Post("/{id}/postpone", h.Vocab.Postpone)
		})

		r.Get("/dictionary", h.Vocab.Lookup)

		r.Route("/review", func(r chi.Router) {
			r.Get("/session", h.Review.Session)
			r.Get("/stats", h.Review.Stats)
			r.Post("/{id}/answer", h.Review.SubmitAnswer)
		})

		r.Route("/texts", func(r chi.Router) {
			r.Post("/", h.Texts.Create)
			r.Get("/", h.Texts.List)
			r.Get("/{id}", h.Texts.Get)
			r.Put("/{id}", h.Texts.Update)
			r.Delete("/{id}", h.Texts.Delete)
			r.Put("/{id}/progress", h.Texts.UpdateProgress)
			r.Get("/{id}/tokens", h.Texts.Tokens)
		})

		r.Post("/stories", h.Story.Generate)
	})

	return r
}
