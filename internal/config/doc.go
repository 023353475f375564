// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file and LEFLUX_* environment variables.
// It provides type-safe access to the settings needed by the server, the
// database, story generation and the review scheduler.
package config
