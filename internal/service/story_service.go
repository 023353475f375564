package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/generation"
	"github.com/phrazzld/leflux-api/internal/platform/logger"
)

// Story length bounds in characters.
const (
	DefaultStoryChars = 800
	MaxStoryChars     = 4000
)

// titleRunes is how much of the idea is used as a saved story's title.
const titleRunes = 60

// StoryRequest asks for a learner story.
type StoryRequest struct {
	Idea     string
	Language string // language tag, e.g. "es"
	MaxChars int    // 0 uses the configured default
	Save     bool   // also add the story to the library
	Title    string // optional title for the saved text
}

// StoryResult is a generated story and, when saved, its library entry.
type StoryResult struct {
	Story string           `json:"story"`
	Text  *domain.TextItem `json:"text,omitempty"`
}

// StoryService writes short stories for reading practice.
type StoryService interface {
	// Generate writes a story for req.
	// Returns ErrStoryGenerationDisabled when no generator is configured.
	Generate(ctx context.Context, req StoryRequest) (*StoryResult, error)
}

type storyService struct {
	generator    generation.StoryGenerator
	library      LibraryService
	defaultChars int
	logger       *slog.Logger
}

var _ StoryService = (*storyService)(nil)

// NewStoryService creates a StoryService. generator may be nil, in which
// case every call fails with ErrStoryGenerationDisabled.
func NewStoryService(
	generator generation.StoryGenerator,
	library LibraryService,
	defaultChars int,
	logger *slog.Logger,
) StoryService {
	if library == nil {
		panic("library service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if defaultChars <= 0 {
		defaultChars = DefaultStoryChars
	}
	return &storyService{
		generator:    generator,
		library:      library,
		defaultChars: defaultChars,
		logger:       logger.With(slog.String("component", "story_service")),
	}
}

// Generate implements StoryService.Generate
func (s *storyService) Generate(ctx context.Context, req StoryRequest) (*StoryResult, error) {
	if s.generator == nil {
		return nil, ErrStoryGenerationDisabled
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	req.Idea = strings.TrimSpace(req.Idea)
	if req.Idea == "" {
		return nil, fmt.Errorf("%w: idea cannot be empty", ErrInvalidStoryRequest)
	}
	lang, err := domain.NormalizeLang(req.Language)
	if err != nil {
		return nil, err
	}

	maxChars := req.MaxChars
	switch {
	case maxChars <= 0:
		maxChars = s.defaultChars
	case maxChars < generation.MinStoryChars:
		maxChars = generation.MinStoryChars
	case maxChars > MaxStoryChars:
		maxChars = MaxStoryChars
	}

	story, err := s.generator.Generate(ctx, generation.StoryPrompt{
		Idea:     req.Idea,
		Language: lang,
		MaxChars: maxChars,
	})
	if err != nil {
		if errors.Is(err, generation.ErrInvalidPrompt) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStoryRequest, err)
		}
		return nil, NewServiceError("story", "generate", err)
	}

	result := &StoryResult{Story: story}
	if !req.Save {
		return result, nil
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = truncateRunes(req.Idea, titleRunes)
	}
	text, err := s.library.Create(ctx, CreateTextInput{
		Title:   title,
		Lang:    lang,
		Content: story,
	})
	if err != nil {
		return nil, err
	}
	result.Text = text

	log.Info("story saved to library",
		slog.String("text_id", text.ID.String()),
		slog.String("lang", lang))
	return result, nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}
