package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/leflux-api/internal/api/shared"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/service/review"
)

// ReviewHandler handles review session HTTP requests
type ReviewHandler struct {
	reviews review.Service
	now     func() time.Time
	logger  *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviews review.Service, logger *slog.Logger) *ReviewHandler {
	if reviews == nil {
		panic("review service cannot be nil for ReviewHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		reviews: reviews,
		now:     time.Now,
		logger:  logger.With(slog.String("component", "review_handler")),
	}
}

// Session handles GET /api/review/session?limit=
func (h *ReviewHandler) Session(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	session, err := h.reviews.StartSession(r.Context(), limit, h.now().UTC())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to start review session")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, session)
}

// SubmitAnswer handles POST /api/review/{id}/answer
func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req AnswerRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	result, err := h.reviews.SubmitAnswer(r.Context(), id, review.Answer{
		Grade:    *req.Grade,
		Sentence: req.Sentence,
	}, h.now().UTC())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to submit answer")
		return
	}

	log.Debug("answer submitted",
		slog.String("entry_id", id.String()),
		slog.String("grade", req.Grade.String()),
		slog.String("stage", string(result.Entry.SRS.Stage)))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Stats handles GET /api/review/stats
func (h *ReviewHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reviews.Stats(r.Context(), h.now().UTC())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get review stats")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
