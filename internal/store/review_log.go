package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/leflux-api/internal/domain"
)

// ReviewLogStore records answered reviews.
type ReviewLogStore interface {
	// Create appends a log record.
	Create(ctx context.Context, log *domain.ReviewLog) error

	// ListByEntry returns the history of one entry, most recent first.
	ListByEntry(ctx context.Context, entryID uuid.UUID, limit int) ([]*domain.ReviewLog, error)

	// WithTx returns a ReviewLogStore bound to tx.
	WithTx(tx *sql.Tx) ReviewLogStore
}
