// Package store defines the persistence ports for vocabulary entries,
// library texts and review history, plus the shared error and transaction
// helpers used by every implementation.
package store
