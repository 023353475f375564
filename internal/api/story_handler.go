package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/leflux-api/internal/api/shared"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/service"
)

// StoryHandler handles story generation HTTP requests
type StoryHandler struct {
	stories service.StoryService
	logger  *slog.Logger
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(stories service.StoryService, logger *slog.Logger) *StoryHandler {
	if stories == nil {
		panic("story service cannot be nil for StoryHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StoryHandler{
		stories: stories,
		logger:  logger.With(slog.String("component", "story_handler")),
	}
}

// Generate handles POST /api/stories
func (h *StoryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req StoryRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	result, err := h.stories.Generate(r.Context(), service.StoryRequest{
		Idea:     req.Idea,
		Language: req.Language,
		MaxChars: req.MaxCharacters,
		Save:     req.Save,
		Title:    req.Title,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate story")
		return
	}

	status := http.StatusOK
	if result.Text != nil {
		status = http.StatusCreated
	}
	shared.RespondWithJSON(w, r, status, result)
}
