package entity

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The identifier scheme delegates uniqueness to the document store's native
// ObjectID generation. This file owns the validation and string-form mapping:
// external callers only ever see the 24-character hex encoding, and every
// externally supplied identifier is parsed here before any lookup.

// NewArticleID generates a fresh store-native identifier.
func NewArticleID() primitive.ObjectID {
	return primitive.NewObjectID()
}

// ParseArticleID maps the external hex form back to a store-native identifier.
// Returns ErrInvalidArticleID if the candidate is not syntactically a member
// of the identifier space. ParseArticleID(id.Hex()) round-trips losslessly
// for every valid id.
func ParseArticleID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidArticleID, s)
	}
	return id, nil
}

// IsValidArticleID reports whether the candidate string is syntactically a
// valid identifier.
func IsValidArticleID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}
