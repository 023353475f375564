package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/leflux-api/internal/dictionary"
)

// MockDictionaryLookup implements dictionary.Lookup for testing
type MockDictionaryLookup struct {
	LookupFn func(ctx context.Context, term, lang string) (*dictionary.Entry, error)

	// Default response values
	Entry *dictionary.Entry
	Err   error

	mu    sync.Mutex
	Terms []string
}

var _ dictionary.Lookup = (*MockDictionaryLookup)(nil)

// Lookup implements dictionary.Lookup
func (m *MockDictionaryLookup) Lookup(ctx context.Context, term, lang string) (*dictionary.Entry, error) {
	m.mu.Lock()
	m.Terms = append(m.Terms, term)
	m.mu.Unlock()

	if m.LookupFn != nil {
		return m.LookupFn(ctx, term, lang)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entry.Clone(), nil
}

// CallCount returns how many times Lookup was called.
func (m *MockDictionaryLookup) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Terms)
}
