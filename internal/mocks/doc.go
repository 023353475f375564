// Package mocks provides function-field mock implementations of the store
// and generator interfaces for service tests.
//
// Each mock calls its XxxFn field when set and otherwise returns zero values.
// Calls are recorded so tests can assert on them:
//
//	vocab := &mocks.MockVocabStore{
//	    GetFn: func(ctx context.Context, id uuid.UUID) (*domain.VocabEntry, error) {
//	        return nil, store.ErrVocabNotFound
//	    },
//	}
//
// WithTx on every store mock returns the mock itself so transactional code
// paths can be exercised without a database.
package mocks
