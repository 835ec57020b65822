package article_test

import (
	"context"

	"newsflow/internal/domain/entity"
	"newsflow/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubRepo is an in-memory repository shared by the handler tests.
// Setting err forces every operation to fail with that error.
type stubRepo struct {
	articles map[primitive.ObjectID]*entity.Article
	err      error
}

func newStubRepo() *stubRepo {
	return &stubRepo{articles: make(map[primitive.ObjectID]*entity.Article)}
}

// add seeds the stub with a stored article and returns its identifier.
func (s *stubRepo) add(a *entity.Article) primitive.ObjectID {
	stored := *a
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	s.articles[stored.ID] = &stored
	return stored.ID
}

func (s *stubRepo) Insert(_ context.Context, a *entity.Article) (primitive.ObjectID, error) {
	if s.err != nil {
		return primitive.NilObjectID, s.err
	}
	stored := *a
	stored.ID = primitive.NewObjectID()
	s.articles[stored.ID] = &stored
	return stored.ID, nil
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.Article, 0, len(s.articles))
	for _, a := range s.articles {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (s *stubRepo) ListByCategory(_ context.Context, cat entity.Category) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.Article, 0)
	for _, a := range s.articles {
		if a.Category == cat {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, id primitive.ObjectID) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (s *stubRepo) Replace(_ context.Context, id primitive.ObjectID, a *entity.Article) (repository.ReplaceResult, error) {
	if s.err != nil {
		return repository.ReplaceResult{}, s.err
	}
	existing, ok := s.articles[id]
	if !ok {
		return repository.ReplaceResult{}, nil
	}
	replacement := *a
	replacement.ID = id
	if *existing == replacement {
		return repository.ReplaceResult{Matched: 1}, nil
	}
	s.articles[id] = &replacement
	return repository.ReplaceResult{Matched: 1, Modified: 1}, nil
}

func (s *stubRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if _, ok := s.articles[id]; !ok {
		return 0, nil
	}
	delete(s.articles, id)
	return 1, nil
}

func (s *stubRepo) Count(_ context.Context, cat entity.Category) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for _, a := range s.articles {
		if a.Category == cat {
			n++
		}
	}
	return n, nil
}
