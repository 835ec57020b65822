// Package catalog provides use cases for managing the article catalog.
// It implements validation, publication-date defaulting, and the translation
// of store outcomes into the externally visible result states.
package catalog

import "errors"

// Sentinel errors for catalog use case operations.
var (
	// ErrArticleNotFound indicates that a well-formed identifier has no
	// matching article in the store. This is a legitimate, non-exceptional
	// outcome of lookups, updates and deletes.
	ErrArticleNotFound = errors.New("article not found")
)
