// Package db opens and configures the MongoDB client used by the catalog.
package db

import (
	"context"
	"log"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"newsflow/pkg/config"
)

// ConnectionConfig holds client-side connection pool configuration.
type ConnectionConfig struct {
	MaxPoolSize    uint64
	MinPoolSize    uint64
	MaxConnIdle    time.Duration
	ConnectTimeout time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxPoolSize:    100,              // Driver-side cap on concurrent connections
		MinPoolSize:    0,                // No warm connections required
		MaxConnIdle:    30 * time.Minute, // Idle connections are recycled after this
		ConnectTimeout: 10 * time.Second,
	}
}

// ConnectionConfigFromEnv reads connection pool configuration from
// environment variables, falling back to defaults.
func ConnectionConfigFromEnv() ConnectionConfig {
	cfg := DefaultConnectionConfig()
	if v := config.GetEnvInt("MONGODB_MAX_POOL_SIZE", 0); v > 0 {
		cfg.MaxPoolSize = uint64(v)
	}
	if v := config.GetEnvInt("MONGODB_MIN_POOL_SIZE", 0); v > 0 {
		cfg.MinPoolSize = uint64(v)
	}
	cfg.MaxConnIdle = config.GetEnvDuration("MONGODB_MAX_CONN_IDLE", cfg.MaxConnIdle)
	cfg.ConnectTimeout = config.GetEnvDuration("MONGODB_CONNECT_TIMEOUT", cfg.ConnectTimeout)
	return cfg
}

// Open creates and ping-verifies a MongoDB client.
// It reads MONGODB_URL from the environment and applies pool settings.
func Open() *mongo.Client {
	uri := config.GetEnvString("MONGODB_URL", "")
	if uri == "" {
		log.Fatal("MONGODB_URL not set")
	}

	cfg := ConnectionConfigFromEnv()
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdle).
		SetConnectTimeout(cfg.ConnectTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("failed to connect to document store: %v", err)
	}

	slog.Info("document store connection pool configured",
		slog.Uint64("max_pool_size", cfg.MaxPoolSize),
		slog.Uint64("min_pool_size", cfg.MinPoolSize),
		slog.Duration("max_conn_idle", cfg.MaxConnIdle),
		slog.Duration("connect_timeout", cfg.ConnectTimeout))

	// Verify connectivity before serving traffic.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Fatalf("failed to ping document store: %v", err)
	}

	slog.Info("document store connection established successfully")
	return client
}

// Database returns the catalog database handle.
// The database name defaults to newsflow_db and can be overridden with
// MONGODB_DATABASE.
func Database(client *mongo.Client) *mongo.Database {
	return client.Database(config.GetEnvString("MONGODB_DATABASE", "newsflow_db"))
}
