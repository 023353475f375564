package mocks

import (
	"context"

	"github.com/phrazzld/leflux-api/internal/store"
)

// TxRunner runs fn with a nil transaction. Store mocks ignore the tx passed
// to WithTx, so services behave as if the work were committed.
func TxRunner(ctx context.Context, fn store.TxFn) error {
	return fn(ctx, nil)
}
