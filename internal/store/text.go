package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain"
)

// TextStore defines the interface for library text persistence.
type TextStore interface {
	// Create saves a new text.
	Create(ctx context.Context, text *domain.TextItem) error

	// Get retrieves a text by ID.
	// Returns ErrTextNotFound if the text does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.TextItem, error)

	// Update replaces the mutable fields of an existing text.
	// Returns ErrTextNotFound if the text does not exist.
	Update(ctx context.Context, text *domain.TextItem) error

	// Delete removes a text.
	// Returns ErrTextNotFound if the text does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns texts newest first, optionally restricted to lang.
	List(ctx context.Context, lang string) ([]*domain.TextItem, error)

	// WithTx returns a TextStore bound to tx.
	WithTx(tx *sql.Tx) TextStore
}
