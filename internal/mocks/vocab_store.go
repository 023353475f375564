package mocks

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
	"github.com/phrazzld/leflux-api/internal/store"
)

// MockVocabStore implements store.VocabStore for testing
type MockVocabStore struct {
	CreateFn       func(ctx context.Context, entry *domain.VocabEntry) error
	GetFn          func(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error)
	GetForUpdateFn func(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error)
	UpdateFn       func(ctx context.Context, entry *domain.VocabEntry) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
	ListFn         func(ctx context.Context, filter store.VocabFilter) ([]*domain.VocabEntry, error)
	ListDueFn      func(ctx context.Context, now time.Time, limit int) ([]*domain.VocabEntry, error)
	CountByStageFn func(ctx context.Context) (map[srs.Stage]int, error)
	CountDueFn     func(ctx context.Context, now time.Time) (int, error)

	mu      sync.Mutex
	Created []*domain.VocabEntry
	Updated []*domain.VocabEntry
	TxCount int
}

var _ store.VocabStore = (*MockVocabStore)(nil)

// Create implements store.VocabStore
func (m *MockVocabStore) Create(ctx context.Context, entry *domain.VocabEntry) error {
	m.mu.Lock()
	m.Created = append(m.Created, entry)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, entry)
	}
	return nil
}

// Get implements store.VocabStore
func (m *MockVocabStore) Get(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, store.ErrVocabNotFound
}

// GetForUpdate implements store.VocabStore. It falls back to GetFn.
func (m *MockVocabStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, id)
	}
	return m.Get(ctx, id)
}

// Update implements store.VocabStore
func (m *MockVocabStore) Update(ctx context.Context, entry *domain.VocabEntry) error {
	m.mu.Lock()
	m.Updated = append(m.Updated, entry)
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, entry)
	}
	return nil
}

// Delete implements store.VocabStore
func (m *MockVocabStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// List implements store.VocabStore
func (m *MockVocabStore) List(ctx context.Context, filter store.VocabFilter) ([]*domain.VocabEntry, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return []*domain.VocabEntry{}, nil
}

// ListDue implements store.VocabStore
func (m *MockVocabStore) ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.VocabEntry, error) {
	if m.ListDueFn != nil {
		return m.ListDueFn(ctx, now, limit)
	}
	return []*domain.VocabEntry{}, nil
}

// CountByStage implements store.VocabStore
func (m *MockVocabStore) CountByStage(ctx context.Context) (map[srs.Stage]int, error) {
	if m.CountByStageFn != nil {
		return m.CountByStageFn(ctx)
	}
	return map[srs.Stage]int{}, nil
}

// CountDue implements store.VocabStore
func (m *MockVocabStore) CountDue(ctx context.Context, now time.Time) (int, error) {
	if m.CountDueFn != nil {
		return m.CountDueFn(ctx, now)
	}
	return 0, nil
}

// WithTx implements store.VocabStore and returns the mock itself.
func (m *MockVocabStore) WithTx(_ *sql.Tx) store.VocabStore {
	m.mu.Lock()
	m.TxCount++
	m.mu.Unlock()
	return m
}
