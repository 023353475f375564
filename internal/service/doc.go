// Package service provides the application services behind the HTTP API:
// vocabulary management, the reading library and story generation. Review
// sessions live in the review subpackage.
//
// Services depend on the store interfaces and run read-modify-write
// operations through a TxRunner so they can be tested without a database.
package service
