// Package dictionary defines the boundary between the application and the
// public dictionaries used to suggest definitions and examples for new
// vocabulary. Services depend on the Lookup interface; the HTTP adapter in
// platform/webdict implements it and Cache memoizes any implementation.
package dictionary
