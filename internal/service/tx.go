package service

import (
	"context"
	"database/sql"

	"github.com/phrazzld/leflux-api/internal/store"
)

// TxRunner runs fn inside a transaction. Stores bound with WithTx(tx) take
// part in it.
type TxRunner func(ctx context.Context, fn store.TxFn) error

// NewSQLTxRunner returns a TxRunner backed by store.RunInTransaction on db.
func NewSQLTxRunner(db *sql.DB) TxRunner {
	return func(ctx context.Context, fn store.TxFn) error {
		return store.RunInTransaction(ctx, db, fn)
	}
}
