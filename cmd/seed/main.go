// Command seed fills the catalog with generated test articles so shard
// distribution across categories can be observed on a fresh cluster.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"newsflow/internal/domain/entity"
	"newsflow/internal/infra/adapter/persistence/mongodb"
	"newsflow/internal/infra/db"
	"newsflow/internal/observability/logging"
	"newsflow/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "path to a seed YAML config (optional)")
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg := config.DefaultSeedConfig()
	if *configPath != "" {
		loaded, err := config.LoadSeedConfig(*configPath)
		if err != nil {
			logger.Error("failed to load seed config", slog.Any("error", err))
			os.Exit(1)
		}
		cfg = loaded
	}

	categories, err := resolveCategories(cfg.Categories)
	if err != nil {
		logger.Error("invalid seed config", slog.Any("error", err))
		os.Exit(1)
	}

	client := db.Open()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("failed to disconnect from document store", slog.Any("error", err))
		}
	}()

	database := db.Database(client)
	repo := mongodb.NewArticleRepo(database)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if cfg.DropFirst {
		if err := database.Collection(mongodb.CollectionName).Drop(ctx); err != nil {
			logger.Error("failed to drop collection", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("dropped existing collection", slog.String("collection", mongodb.CollectionName))
	}

	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Error("failed to ensure indexes", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("seeding catalog",
		slog.Int("count", cfg.Count),
		slog.Int("categories", len(categories)),
		slog.String("author", cfg.Author))

	inserted := 0
	for i := 0; i < cfg.Count; i++ {
		// Round-robin over the categories so every shard receives documents.
		art := &entity.Article{
			Title:           fmt.Sprintf("Generated test article %d", i),
			Author:          cfg.Author,
			Category:        categories[i%len(categories)],
			Body:            fmt.Sprintf("Detailed body of test article %d, generated for load and shard-distribution checks.", i),
			PublicationDate: entity.Today(),
		}
		if _, err := repo.Insert(ctx, art); err != nil {
			logger.Error("insert failed",
				slog.Int("index", i),
				slog.Any("error", err))
			os.Exit(1)
		}
		inserted++
	}

	logger.Info("seed complete", slog.Int("inserted", inserted))
}

// resolveCategories validates the configured category names, falling back to
// the full fixed set when none are configured.
func resolveCategories(names []string) ([]entity.Category, error) {
	if len(names) == 0 {
		return entity.Categories(), nil
	}
	out := make([]entity.Category, 0, len(names))
	for _, name := range names {
		cat, err := entity.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, nil
}
