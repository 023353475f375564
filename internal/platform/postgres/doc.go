// Package postgres provides PostgreSQL implementations of the store
// interfaces, the connection setup used by the server, and the embedded
// goose migrations for the schema.
package postgres
