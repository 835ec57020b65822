// Package pathutil provides URL path helpers for handlers and metrics.
package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidPath is returned when the expected path segment is missing.
var ErrInvalidPath = errors.New("invalid path")

// Segment extracts the single trailing path segment after prefix.
// Identifier validation is not performed here: catalog identifiers are
// opaque strings whose syntax is owned by the identifier scheme.
//
// Example:
//
//	id, err := Segment("/articles/665f1c2ab7e1d80012345678", "/articles/")
//	// Returns: "665f1c2ab7e1d80012345678", nil
func Segment(path, prefix string) (string, error) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path || rest == "" || strings.Contains(rest, "/") {
		return "", ErrInvalidPath
	}
	return rest, nil
}
