package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/store"
)

// MockReviewLogStore implements store.ReviewLogStore for testing
type MockReviewLogStore struct {
	CreateFn      func(ctx context.Context, log *domain.ReviewLog) error
	ListByEntryFn func(ctx context.Context, entryID uuid.UUID, limit int) ([]*domain.ReviewLog, error)

	mu      sync.Mutex
	Created []*domain.ReviewLog
}

var _ store.ReviewLogStore = (*MockReviewLogStore)(nil)

// Create implements store.ReviewLogStore
func (m *MockReviewLogStore) Create(ctx context.Context, log *domain.ReviewLog) error {
	m.mu.Lock()
	m.Created = append(m.Created, log)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, log)
	}
	return nil
}

// ListByEntry implements store.ReviewLogStore
func (m *MockReviewLogStore) ListByEntry(ctx context.Context, entryID uuid.UUID, limit int) ([]*domain.ReviewLog, error) {
	if m.ListByEntryFn != nil {
		return m.ListByEntryFn(ctx, entryID, limit)
	}
	return []*domain.ReviewLog{}, nil
}

// WithTx implements store.ReviewLogStore and returns the mock itself.
func (m *MockReviewLogStore) WithTx(_ *sql.Tx) store.ReviewLogStore {
	return m
}
