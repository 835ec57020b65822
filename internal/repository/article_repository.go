// Package repository defines persistence abstractions for the catalog.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"newsflow/internal/domain/entity"
)

// ReplaceResult reports the outcome of a full-document replace.
// Matched and Modified are reported separately so callers can distinguish
// "no document with this id" (Matched == 0) from "document exists but the
// new value equals the old one" (Matched == 1, Modified == 0).
type ReplaceResult struct {
	Matched  int64
	Modified int64
}

// ArticleRepository is the only abstraction that talks to the underlying
// document store. Implementations must enforce that every write carries a
// valid category, since that value is the store's partition key.
type ArticleRepository interface {
	// Insert persists a new article and returns the store-generated identifier.
	Insert(ctx context.Context, article *entity.Article) (primitive.ObjectID, error)
	// List retrieves every stored article in store-native order.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByCategory retrieves the articles of a single partition value.
	// Returns an empty slice, not an error, when no records match.
	ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Article, error)
	// Get performs a point lookup by identifier.
	// Returns (nil, nil) if the article is not found; absence is not an error.
	Get(ctx context.Context, id primitive.ObjectID) (*entity.Article, error)
	// Replace overwrites the article stored under id with a full document.
	Replace(ctx context.Context, id primitive.ObjectID, article *entity.Article) (ReplaceResult, error)
	// Delete removes the article stored under id.
	// The returned count is 1 when a document was removed and 0 otherwise.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	// Count returns the number of articles in one category, or in the whole
	// catalog when category is empty. Used by the business metrics updater.
	Count(ctx context.Context, category entity.Category) (int64, error)
}
