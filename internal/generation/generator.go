package generation

import (
	"context"
	"fmt"
	"strings"
)

// MinStoryChars is the smallest story length a prompt may ask for.
const MinStoryChars = 120

// StoryPrompt describes the story to write.
type StoryPrompt struct {
	// Idea is the learner's brief, e.g. "a cat who opens a bakery".
	Idea string

	// Language is the language tag the story is written in.
	Language string

	// MaxChars is the approximate story length in characters.
	MaxChars int
}

// Validate checks the prompt and raises MaxChars to MinStoryChars.
func (p *StoryPrompt) Validate() error {
	p.Idea = strings.TrimSpace(p.Idea)
	p.Language = strings.TrimSpace(p.Language)

	if p.Idea == "" {
		return fmt.Errorf("%w: idea cannot be empty", ErrInvalidPrompt)
	}
	if p.Language == "" {
		return fmt.Errorf("%w: language cannot be empty", ErrInvalidPrompt)
	}
	if p.MaxChars < MinStoryChars {
		p.MaxChars = MinStoryChars
	}
	return nil
}

// StoryGenerator writes short learner stories with an external model.
type StoryGenerator interface {
	// Generate returns the story text for prompt.
	// It returns ErrContentBlocked, ErrEmptyResponse or ErrGenerationFailed
	// (possibly wrapped) when the model cannot produce a story.
	Generate(ctx context.Context, prompt StoryPrompt) (string, error)
}
