// Package main implements the leflux command: the HTTP API server for
// vocabulary review, the reading library and story generation, plus the
// schema migration tool.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
