package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"newsflow/internal/domain/entity"
	"newsflow/internal/infra/adapter/persistence/mongodb"
	"newsflow/internal/infra/db"
	"newsflow/internal/observability/logging"
	"newsflow/internal/observability/metrics"
	"newsflow/internal/observability/tracing"
	"newsflow/internal/repository"
	"newsflow/internal/resilience/breaker"
	"newsflow/internal/usecase/catalog"
	"newsflow/pkg/config"

	hhttp "newsflow/internal/handler/http"
	harticle "newsflow/internal/handler/http/article"
	"newsflow/internal/handler/http/requestid"

	_ "newsflow/docs" // swagger docs
)

// @title           NewsFlow Catalog API
// @version         1.0
// @description     REST API for a category-sharded news article catalog.
// @description     Provides CRUD and category-filtered retrieval over a document store.

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := initLogger()
	version := getVersion()

	shutdownTracing, err := tracing.Init("newsflow", version)
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
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
	repo := initRepository(logger, database)

	handler := setupServer(logger, client, database.Name(), repo, version)
	runServer(logger, handler, repo, version, shutdownTracing)
}

// initLogger initializes the structured logger and installs it as the default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	return config.GetEnvString("VERSION", "dev")
}

// initRepository builds the article repository: the mongo adapter with its
// indexes ensured, wrapped in a circuit breaker.
func initRepository(logger *slog.Logger, database *mongo.Database) repository.ArticleRepository {
	articleRepo := mongodb.NewArticleRepo(database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := articleRepo.EnsureIndexes(ctx); err != nil {
		logger.Error("failed to ensure indexes", slog.Any("error", err))
		os.Exit(1)
	}

	return breaker.NewRepository(articleRepo)
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, client *mongo.Client, dbName string, repo repository.ArticleRepository, version string) http.Handler {
	svc := &catalog.Service{
		Repo:    repo,
		Timeout: config.GetEnvDuration("STORE_TIMEOUT", catalog.DefaultStoreTimeout),
	}

	mux := http.NewServeMux()
	harticle.Register(mux, svc, logger)

	mux.Handle("/health", &hhttp.HealthHandler{Client: client, Database: dbName, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{Client: client})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Request ID → Tracing → Recovery → Logging →
// IP Rate Limit → Body Limit → Timeout → Metrics.
// Tracing runs before logging so access logs carry the trace ID.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	rps := config.GetEnvInt("RATE_LIMIT_RPS", 50)
	burst := config.GetEnvInt("RATE_LIMIT_BURST", 100)
	limiter := hhttp.NewRateLimiter(rate.Limit(rps), burst)

	requestTimeout := config.GetEnvDuration("REQUEST_TIMEOUT", 15*time.Second)

	// Apply in reverse order (innermost to outermost)
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(requestTimeout)(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = limiter.Limit(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// refreshInventoryGauges periodically reads per-category counts from the
// store and updates the inventory gauges. Runs until ctx is cancelled.
func refreshInventoryGauges(ctx context.Context, logger *slog.Logger, repo repository.ArticleRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, cat := range entity.Categories() {
				countCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
				n, err := repo.Count(countCtx, cat)
				cancel()
				if err != nil {
					logger.Warn("failed to refresh inventory gauge",
						slog.String("category", cat.String()),
						slog.Any("error", err))
					continue
				}
				metrics.UpdateArticleCount(cat.String(), n)
			}
		}
	}
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, repo repository.ArticleRepository, version string, shutdownTracing func(context.Context) error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := config.GetEnvString("LISTEN_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		refreshInventoryGauges(gctx, logger, repo, config.GetEnvDuration("METRICS_REFRESH_INTERVAL", 30*time.Second))
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", slog.Any("error", err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("tracing shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
