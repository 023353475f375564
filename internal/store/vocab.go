package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain"
	"github.com/phrazzld/leflux-api/internal/domain/srs"
)

// VocabFilter narrows List results. Zero values match everything.
type VocabFilter struct {
	Stage  srs.Stage
	Lang   string
	Limit  int
	Offset int
}

// VocabStore defines the interface for vocabulary persistence.
type VocabStore interface {
	// Create saves a new entry.
	// Returns ErrTermExists if an entry with the same term and lang exists.
	Create(ctx context.Context, entry *domain.VocabEntry) error

	// Get retrieves an entry by ID.
	// Returns ErrVocabNotFound if the entry does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error)

	// GetForUpdate retrieves an entry and locks its row until the surrounding
	// transaction ends. It must be called on a store returned by WithTx.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error)

	// Update replaces every mutable field of an existing entry, including its
	// scheduling state.
	// Returns ErrVocabNotFound if the entry does not exist.
	Update(ctx context.Context, entry *domain.VocabEntry) error

	// Delete removes an entry and, by cascade, its review history.
	// Returns ErrVocabNotFound if the entry does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns entries matching filter, newest first.
	List(ctx context.Context, filter VocabFilter) ([]*domain.VocabEntry, error)

	// ListDue returns up to limit entries whose next review is at or before
	// now, earliest first.
	ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.VocabEntry, error)

	// CountByStage returns the number of entries per stage. Stages with no
	// entries are absent from the map.
	CountByStage(ctx context.Context) (map[srs.Stage]int, error)

	// CountDue returns the number of entries due at now.
	CountDue(ctx context.Context, now time.Time) (int, error)

	// WithTx returns a VocabStore bound to tx.
	WithTx(tx *sql.Tx) VocabStore
}
