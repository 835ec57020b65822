package breaker

import (
	"context"

	"newsflow/internal/domain/entity"
	"newsflow/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository wraps an ArticleRepository with circuit breaker protection.
// When the store becomes unavailable the breaker trips and calls fail fast
// with gobreaker.ErrOpenState instead of stacking up on driver timeouts.
type Repository struct {
	cb   *CircuitBreaker
	next repository.ArticleRepository
}

var _ repository.ArticleRepository = (*Repository)(nil)

// NewRepository wraps next with the default store breaker configuration.
func NewRepository(next repository.ArticleRepository) *Repository {
	return &Repository{cb: New(StoreConfig()), next: next}
}

// NewRepositoryWithConfig wraps next with a custom breaker configuration.
func NewRepositoryWithConfig(next repository.ArticleRepository, cfg Config) *Repository {
	return &Repository{cb: New(cfg), next: next}
}

func (r *Repository) Insert(ctx context.Context, a *entity.Article) (primitive.ObjectID, error) {
	result, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.Insert(ctx, a)
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.(primitive.ObjectID), nil
}

func (r *Repository) List(ctx context.Context) ([]*entity.Article, error) {
	result, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*entity.Article), nil
}

func (r *Repository) ListByCategory(ctx context.Context, cat entity.Category) ([]*entity.Article, error) {
	result, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.ListByCategory(ctx, cat)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*entity.Article), nil
}

func (r *Repository) Get(ctx context.Context, id primitive.ObjectID) (*entity.Article, error) {
	result, err := r.cb.Execute(func() (interface{}, error) {
		// Absent documents come back as a nil article with no error, which
		// must not count as a breaker failure.
		a, err := r.next.Get(ctx, id)
		return a, err
	})
	if err != nil {
		return nil, err
	}
	return result.(*entity.Article), nil
}

func (r *Repository) Replace(ctx context.Context, id primitive.ObjectID, a *entity.Article) (repository.ReplaceResult, error) {
	result, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.Replace(ctx, id, a)
	})
	if err != nil {
		return repository.ReplaceResult{}, err
	}
	return result.(repository.ReplaceResult), nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.Delete(ctx, id)
	})
	if err != nil {
		return 0, err
	}
	return result.(int64), nil
}

func (r *Repository) Count(ctx context.Context, cat entity.Category) (int64, error) {
	result, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.Count(ctx, cat)
	})
	if err != nil {
		return 0, err
	}
	return result.(int64), nil
}

// State returns the current state of the underlying circuit breaker.
func (r *Repository) State() string {
	return r.cb.State().String()
}
