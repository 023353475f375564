package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/leflux-api/internal/config"
	"github.com/phrazzld/leflux-api/internal/generation"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
	"github.com/phrazzld/leflux-api/internal/redact"
	"google.golang.org/genai"
)

// storyTemperature keeps stories varied between calls.
const storyTemperature = 0.8

// GeminiGenerator implements generation.StoryGenerator using Google's Gemini API.
type GeminiGenerator struct {
	logger  *slog.Logger
	models  contentGenerator
	model   string
	timeout time.Duration
}

var _ generation.StoryGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator from cfg.
// It returns generation.ErrInvalidConfig if the API key or model is missing.
func NewGeminiGenerator(ctx context.Context, log *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newGenerator(client.Models, cfg.ModelName, cfg.Timeout, log), nil
}

func newGenerator(models contentGenerator, model string, timeout time.Duration, log *slog.Logger) *GeminiGenerator {
	if log == nil {
		log = slog.Default()
	}
	return &GeminiGenerator{
		logger:  log.With(slog.String("component", "gemini_generator")),
		models:  models,
		model:   model,
		timeout: timeout,
	}
}

// Generate implements generation.StoryGenerator.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt generation.StoryPrompt) (string, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	if err := prompt.Validate(); err != nil {
		return "", err
	}

	text, err := renderPrompt(promptData{
		Idea:     prompt.Idea,
		Language: prompt.Language,
		MaxChars: prompt.MaxChars,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to render prompt: %v", generation.ErrGenerationFailed, err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	temperature := float32(storyTemperature)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: maxOutputTokens(prompt.MaxChars),
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: text}},
	}}

	start := time.Now()
	result, err := g.models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		log.Error("gemini request failed",
			slog.String("model", g.model),
			slog.String("error", redact.Error(err)))
		return "", mapError(err)
	}

	if blocked(result) {
		log.Warn("gemini blocked story prompt", slog.String("model", g.model))
		return "", generation.ErrContentBlocked
	}

	story := strings.TrimSpace(result.Text())
	if story == "" {
		return "", generation.ErrEmptyResponse
	}

	log.Info("story generated",
		slog.String("model", g.model),
		slog.String("language", prompt.Language),
		slog.Int("chars", len([]rune(story))),
		slog.Duration("elapsed", time.Since(start)))
	return story, nil
}

// maxOutputTokens approximates three characters per token with a floor of 80.
func maxOutputTokens(maxChars int) int32 {
	tokens := (maxChars + 2) / 3
	if tokens < 80 {
		tokens = 80
	}
	return int32(tokens)
}

func blocked(result *genai.GenerateContentResponse) bool {
	if result == nil {
		return false
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return true
	}
	for _, c := range result.Candidates {
		if c != nil && c.FinishReason == genai.FinishReasonSafety {
			return true
		}
	}
	return false
}

func mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden) {
		return fmt.Errorf("%w: %v", generation.ErrInvalidConfig, err)
	}
	return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
}
