// Package domain contains the core entities of the language-learning
// backend: vocabulary entries, library texts and review history. Entities
// validate themselves and are independent of storage and transport.
//
// Scheduling state lives in the srs subpackage; VocabEntry embeds it.
package domain
