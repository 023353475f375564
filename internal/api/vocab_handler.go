package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/leflux-api/internal/api/shared"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/service"
	"github.com/phrazzld/leflux-api/internal/store"
)

// VocabHandler handles vocabulary HTTP requests
type VocabHandler struct {
	vocab  service.VocabService
	logger *slog.Logger
}

// NewVocabHandler creates a new VocabHandler
func NewVocabHandler(vocab service.VocabService, logger *slog.Logger) *VocabHandler {
	if vocab == nil {
		panic("vocab service cannot be nil for VocabHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabHandler{
		vocab:  vocab,
		logger: logger.With(slog.String("component", "vocab_handler")),
	}
}

// Create handles POST /api/vocab
func (h *VocabHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateVocabRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	entry, err := h.vocab.Add(r.Context(), service.AddVocabInput{
		Term:        req.Term,
		Lang:        req.Lang,
		Definition:  req.Definition,
		Translation: req.Translation,
		Examples:    req.Examples,
		AudioURL:    req.AudioURL,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create vocabulary entry")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, entry)
}

// List handles GET /api/vocab?stage=&lang=&limit=&offset=
func (h *VocabHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entries, err := h.vocab.List(r.Context(), store.VocabFilter{
		Stage:  srs.Stage(q.Get("stage")),
		Lang:   q.Get("lang"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list vocabulary")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entries)
}

// Get handles GET /api/vocab/{id}
func (h *VocabHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	entry, err := h.vocab.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get vocabulary entry")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entry)
}

// Update handles PUT /api/vocab/{id}
func (h *VocabHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateVocabRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	entry, err := h.vocab.Update(r.Context(), id, service.VocabUpdate{
		Definition:  req.Definition,
		Translation: req.Translation,
		Examples:    req.Examples,
		AudioURL:    req.AudioURL,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update vocabulary entry")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entry)
}

// Delete handles DELETE /api/vocab/{id}
func (h *VocabHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.vocab.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete vocabulary entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddSentence handles POST /api/vocab/{id}/sentences
func (h *VocabHandler) AddSentence(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req SentenceRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	entry, err := h.vocab.AddSentence(r.Context(), id, req.Sentence)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add sentence")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entry)
}

// Postpone handles POST /api/vocab/{id}/postpone
func (h *VocabHandler) Postpone(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req PostponeRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	entry, err := h.vocab.Postpone(r.Context(), id, req.Days)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to postpone review")
		return
	}

	log.Debug("review postponed",
		slog.String("entry_id", id.String()),
		slog.Int("days", req.Days))
	shared.RespondWithJSON(w, r, http.StatusOK, entry)
}

// History handles GET /api/vocab/{id}/reviews?limit=
func (h *VocabHandler) History(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit", service.DefaultHistoryLimit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logs, err := h.vocab.History(r.Context(), id, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get review history")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, logs)
}

// Lookup handles GET /api/dictionary?term=&lang=
func (h *VocabHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	entry, err := h.vocab.Lookup(r.Context(), q.Get("term"), q.Get("lang"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to look up term")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entry)
}
