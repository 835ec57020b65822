// Package article provides HTTP handlers for the catalog endpoints.
// It includes handlers for listing, category filtering, creating, updating,
// and deleting articles, plus payload field-name resolution for clients of
// the legacy API.
package article

import (
	"encoding/json"
	"fmt"

	"newsflow/internal/domain/entity"
	"newsflow/internal/usecase/catalog"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID              string `json:"id" example:"65f1a2b3c4d5e6f7a8b9c0d1"`
	Title           string `json:"title" example:"Championship final goes to penalties"`
	Author          string `json:"author" example:"Ana Souza"`
	Category        string `json:"category" example:"Sports"`
	Body            string `json:"body" example:"The match ended level after extra time..."`
	PublicationDate string `json:"publication_date" example:"2026-08-31"`
}

// toDTO converts a stored article into its wire form. The identifier is
// exposed as its hex string.
func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:              a.ID.Hex(),
		Title:           a.Title,
		Author:          a.Author,
		Category:        a.Category.String(),
		Body:            a.Body,
		PublicationDate: a.PublicationDate,
	}
}

func toDTOs(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	return out
}

// payload is the inbound create/update body. Clients migrated from the
// legacy API still send localized field names, so each field accepts a set
// of synonyms. Resolution is by presence: the first key found in the
// document wins, even when its value is empty.
type payload struct {
	Title           string
	Author          string
	Category        string
	Body            string
	PublicationDate string
}

func (p *payload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		dst  *string
		keys []string
	}{
		{&p.Title, []string{"title", "titulo"}},
		{&p.Author, []string{"author", "autor"}},
		{&p.Category, []string{"category", "categoria"}},
		{&p.Body, []string{"body", "corpo"}},
		{&p.PublicationDate, []string{"publication_date", "publicationDate", "data_publicacao"}},
	}
	for _, f := range fields {
		for _, key := range f.keys {
			v, ok := raw[key]
			if !ok {
				continue
			}
			if err := json.Unmarshal(v, f.dst); err != nil {
				return fmt.Errorf("invalid value for %q: %w", key, err)
			}
			break
		}
	}
	return nil
}

// input converts the resolved payload into the use-case input.
func (p *payload) input() catalog.Input {
	return catalog.Input{
		Title:           p.Title,
		Author:          p.Author,
		Category:        p.Category,
		Body:            p.Body,
		PublicationDate: p.PublicationDate,
	}
}
