package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/leflux-api/internal/api/shared"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/service"
)

// TextHandler handles library text HTTP requests
type TextHandler struct {
	library service.LibraryService
	logger  *slog.Logger
}

// NewTextHandler creates a new TextHandler
func NewTextHandler(library service.LibraryService, logger *slog.Logger) *TextHandler {
	if library == nil {
		panic("library service cannot be nil for TextHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TextHandler{
		library: library,
		logger:  logger.With(slog.String("component", "text_handler")),
	}
}

// Create handles POST /api/texts
func (h *TextHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTextRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	item, err := h.library.Create(r.Context(), service.CreateTextInput{
		Title:    req.Title,
		Lang:     req.Lang,
		Content:  req.Content,
		CoverURL: req.CoverURL,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create text")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, item)
}

// List handles GET /api/texts?lang=
func (h *TextHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.library.List(r.Context(), r.URL.Query().Get("lang"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list texts")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// Get handles GET /api/texts/{id}
func (h *TextHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	item, err := h.library.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get text")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Update handles PUT /api/texts/{id}
func (h *TextHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateTextRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	item, err := h.library.Update(r.Context(), id, service.TextUpdate{
		Title:    req.Title,
		Content:  req.Content,
		CoverURL: req.CoverURL,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update text")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Delete handles DELETE /api/texts/{id}
func (h *TextHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.library.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete text")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateProgress handles PUT /api/texts/{id}/progress
func (h *TextHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req ProgressRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	item, err := h.library.UpdateProgress(r.Context(), id, *req.Progress)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update progress")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Tokens handles GET /api/texts/{id}/tokens
func (h *TextHandler) Tokens(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	view, err := h.library.Tokens(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to tokenize text")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, view)
}
