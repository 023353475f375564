package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/leflux-api/internal/generation"
)

// MockStoryGenerator implements generation.StoryGenerator for testing
type MockStoryGenerator struct {
	GenerateFn func(ctx context.Context, prompt generation.StoryPrompt) (string, error)

	// Default response values
	Story string
	Err   error

	mu      sync.Mutex
	Prompts []generation.StoryPrompt
}

var _ generation.StoryGenerator = (*MockStoryGenerator)(nil)

// Generate implements generation.StoryGenerator
func (m *MockStoryGenerator) Generate(ctx context.Context, prompt generation.StoryPrompt) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}
	return m.Story, m.Err
}

// CallCount returns how many times Generate was called.
func (m *MockStoryGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
