package catalog

import (
	"context"
	"fmt"
	"time"

	"newsflow/internal/domain/entity"
	"newsflow/internal/repository"
)

// DefaultStoreTimeout bounds each store call when the service is constructed
// without an explicit timeout. Timeouts surface to the caller as ordinary
// store failures and are never retried at this layer.
const DefaultStoreTimeout = 5 * time.Second

// Input carries the caller-supplied fields of a create or update request.
// Category and PublicationDate arrive as raw strings and are validated here;
// an empty PublicationDate triggers the defaulting rules.
type Input struct {
	Title           string
	Author          string
	Category        string
	Body            string
	PublicationDate string
}

// UpdateOutcome distinguishes the two success states of an update.
type UpdateOutcome int

const (
	// Updated means the stored document was modified.
	Updated UpdateOutcome = iota
	// NoChangeNeeded means a matching document existed but the payload was
	// identical to the stored value.
	NoChangeNeeded
)

// Service provides the catalog use cases. It is stateless per request: all
// durable state lives in the repository, and concurrent calls never share
// in-process mutable state.
type Service struct {
	Repo repository.ArticleRepository
	// Timeout bounds each store call. Zero means DefaultStoreTimeout.
	Timeout time.Duration
}

func (s *Service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// article builds the stored record from caller input. Returns a
// ValidationError when a required field is missing or malformed.
func (s *Service) article(in Input) (*entity.Article, error) {
	art := &entity.Article{
		Title:           in.Title,
		Author:          in.Author,
		Category:        entity.Category(in.Category),
		Body:            in.Body,
		PublicationDate: in.PublicationDate,
	}
	if err := art.Validate(); err != nil {
		return nil, err
	}
	return art, nil
}

// Create validates the input, defaults the publication date to today when
// absent, and persists a new article. On success the returned record carries
// the store-generated identifier.
func (s *Service) Create(ctx context.Context, in Input) (*entity.Article, error) {
	art, err := s.article(in)
	if err != nil {
		return nil, err
	}
	if art.PublicationDate == "" {
		art.PublicationDate = entity.Today()
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	id, err := s.Repo.Insert(ctx, art)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	art.ID = id
	return art, nil
}

// List retrieves every article in the catalog, in store-native order.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ListByCategory retrieves the articles of one partition value.
// An unknown category is rejected with a ValidationError; a known category
// with no articles yields an empty slice.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]*entity.Article, error) {
	cat, err := entity.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	articles, err := s.Repo.ListByCategory(ctx, cat)
	if err != nil {
		return nil, fmt.Errorf("list articles by category: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its external identifier string.
// Returns entity.ErrInvalidArticleID for a malformed identifier (the store
// is never contacted) and ErrArticleNotFound when no document matches.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	oid, err := entity.ParseArticleID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	art, err := s.Repo.Get(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// Update replaces the article stored under id with the supplied payload.
// Identifier syntax is checked before any store access. The payload is
// validated with the same rules as Create. When the payload omits the
// publication date, the stored date is preserved rather than re-defaulted:
// the update path already loads the existing record to distinguish NotFound
// from NoChangeNeeded, so the stored value is authoritative.
func (s *Service) Update(ctx context.Context, id string, in Input) (UpdateOutcome, error) {
	oid, err := entity.ParseArticleID(id)
	if err != nil {
		return 0, err
	}

	art, err := s.article(in)
	if err != nil {
		return 0, err
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	existing, err := s.Repo.Get(ctx, oid)
	if err != nil {
		return 0, fmt.Errorf("get article: %w", err)
	}
	if existing == nil {
		return 0, ErrArticleNotFound
	}

	if art.PublicationDate == "" {
		art.PublicationDate = existing.PublicationDate
	}
	if art.PublicationDate == "" {
		// Stored records always carry a date after creation; this only
		// fires on documents written by older tooling.
		art.PublicationDate = entity.Today()
	}

	res, err := s.Repo.Replace(ctx, oid, art)
	if err != nil {
		return 0, fmt.Errorf("replace article: %w", err)
	}
	switch {
	case res.Modified == 1:
		return Updated, nil
	case res.Matched == 1:
		return NoChangeNeeded, nil
	default:
		// The document vanished between the existence check and the
		// replace. Report it the same as any other missing id.
		return 0, ErrArticleNotFound
	}
}

// Delete removes the article stored under id. The first delete of an
// existing id succeeds; any further delete reports ErrArticleNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := entity.ParseArticleID(id)
	if err != nil {
		return err
	}

	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	deleted, err := s.Repo.Delete(ctx, oid)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if deleted == 0 {
		return ErrArticleNotFound
	}
	return nil
}
