// Package mongodb implements the catalog repository on top of a MongoDB
// collection. The collection lives in a sharded cluster partitioned on the
// article category, so every write is checked to carry a routable category
// value before it reaches the driver.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"newsflow/internal/domain/entity"
	"newsflow/internal/observability/metrics"
	"newsflow/internal/repository"
)

// CollectionName is the catalog collection in the document store.
const CollectionName = "articles"

type ArticleRepo struct {
	coll *mongo.Collection
}

func NewArticleRepo(db *mongo.Database) *ArticleRepo {
	return &ArticleRepo{coll: db.Collection(CollectionName)}
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// observe feeds the store command metrics. An absent document is a normal
// lookup result, so callers pass nil for it; only driver failures count as
// command errors.
func observe(command string, start time.Time, err error) {
	metrics.RecordStoreCommand(command, time.Since(start))
	if err != nil {
		metrics.RecordStoreCommandError(command)
	}
}

// EnsureIndexes creates the category index backing the partition key.
// Server-side category filtering and the shard routing contract both depend
// on this index existing.
func (repo *ArticleRepo) EnsureIndexes(ctx context.Context) error {
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("EnsureIndexes: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Insert(ctx context.Context, article *entity.Article) (primitive.ObjectID, error) {
	if article.Category == "" {
		return primitive.NilObjectID, fmt.Errorf("Insert: article has no category; document would not be routable")
	}

	start := time.Now()
	res, err := repo.coll.InsertOne(ctx, article)
	observe("insert_one", start, err)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("Insert: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("Insert: unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	return repo.find(ctx, bson.M{}, "List")
}

func (repo *ArticleRepo) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Article, error) {
	return repo.find(ctx, bson.M{"category": category}, "ListByCategory")
}

// find drains a cursor into a slice. Order is store-native: no sort stage is
// applied, matching the catalog's "stable for a given snapshot" contract.
func (repo *ArticleRepo) find(ctx context.Context, filter bson.M, op string) ([]*entity.Article, error) {
	start := time.Now()
	cursor, err := repo.coll.Find(ctx, filter)
	observe("find", start, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	articles := make([]*entity.Article, 0, 100)
	for cursor.Next(ctx) {
		var article entity.Article
		if err := cursor.Decode(&article); err != nil {
			return nil, fmt.Errorf("%s: Decode: %w", op, err)
		}
		articles = append(articles, &article)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id primitive.ObjectID) (*entity.Article, error) {
	var article entity.Article
	start := time.Now()
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&article)
	if err == mongo.ErrNoDocuments {
		observe("find_one", start, nil)
		return nil, nil
	}
	observe("find_one", start, err)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) Replace(ctx context.Context, id primitive.ObjectID, article *entity.Article) (repository.ReplaceResult, error) {
	if article.Category == "" {
		return repository.ReplaceResult{}, fmt.Errorf("Replace: article has no category; document would not be routable")
	}

	// The replacement document must keep the immutable identifier.
	article.ID = id

	start := time.Now()
	res, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": id}, article)
	observe("replace_one", start, err)
	if err != nil {
		return repository.ReplaceResult{}, fmt.Errorf("Replace: %w", err)
	}
	return repository.ReplaceResult{
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
	}, nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	start := time.Now()
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	observe("delete_one", start, err)
	if err != nil {
		return 0, fmt.Errorf("Delete: %w", err)
	}
	return res.DeletedCount, nil
}

func (repo *ArticleRepo) Count(ctx context.Context, category entity.Category) (int64, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	start := time.Now()
	count, err := repo.coll.CountDocuments(ctx, filter, options.Count())
	observe("count_documents", start, err)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
