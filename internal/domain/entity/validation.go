package entity

import (
	"strings"
	"time"
)

// maxTitleLength bounds the title to keep index entries small.
const maxTitleLength = 512

// Validate checks the required-field and partition-key rules for an article.
// It is called by the catalog service before any write reaches the store.
// Returns a ValidationError naming the first offending field.
func (a *Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if len(a.Title) > maxTitleLength {
		return &ValidationError{Field: "title", Message: "is too long"}
	}
	if strings.TrimSpace(a.Author) == "" {
		return &ValidationError{Field: "author", Message: "is required"}
	}
	if a.Category == "" {
		return &ValidationError{Field: "category", Message: "is required"}
	}
	if !a.Category.IsValid() {
		return &ValidationError{Field: "category", Message: "must be one of Sports, Politics, Technology, Health, Culture"}
	}
	if strings.TrimSpace(a.Body) == "" {
		return &ValidationError{Field: "body", Message: "is required"}
	}
	if a.PublicationDate != "" {
		if err := ValidateDate(a.PublicationDate); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDate checks that a publication date is in the YYYY-MM-DD layout.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return &ValidationError{Field: "publication_date", Message: "must be a calendar date in YYYY-MM-DD format"}
	}
	return nil
}
