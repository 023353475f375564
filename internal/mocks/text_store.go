package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/store"
)

// MockTextStore implements store.TextStore for testing
type MockTextStore struct {
	CreateFn func(ctx context.Context, text *domain.TextItem) error
	GetFn    func(ctx context.Context, id uuid.UUID) (*domain.TextItem, error)
	UpdateFn func(ctx context.Context, text *domain.TextItem) error
	DeleteFn func(ctx context.Context, id uuid.UUID) error
	ListFn   func(ctx context.Context, lang string) ([]*domain.TextItem, error)

	mu      sync.Mutex
	Created []*domain.TextItem
	Updated []*domain.TextItem
}

var _ store.TextStore = (*MockTextStore)(nil)

// Create implements store.TextStore
func (m *MockTextStore) Create(ctx context.Context, text *domain.TextItem) error {
	m.mu.Lock()
	m.Created = append(m.Created, text)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, text)
	}
	return nil
}

// Get implements store.TextStore
func (m *MockTextStore) Get(ctx context.Context, id uuid.UUID) (*domain.TextItem, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, store.ErrTextNotFound
}

// Update implements store.TextStore
func (m *MockTextStore) Update(ctx context.Context, text *domain.TextItem) error {
	m.mu.Lock()
	m.Updated = append(m.Updated, text)
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, text)
	}
	return nil
}

// Delete implements store.TextStore
func (m *MockTextStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// List implements store.TextStore
func (m *MockTextStore) List(ctx context.Context, lang string) ([]*domain.TextItem, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, lang)
	}
	return []*domain.TextItem{}, nil
}

// WithTx implements store.TextStore and returns the mock itself.
func (m *MockTextStore) WithTx(_ *sql.Tx) store.TextStore {
	return m
}
