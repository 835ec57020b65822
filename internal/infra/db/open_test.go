package db

import (
	"testing"
	"time"
)

func TestDefaultConnectionConfig(t *testing.T) {
	cfg := DefaultConnectionConfig()
	if cfg.MaxPoolSize == 0 {
		t.Error("MaxPoolSize should not default to zero")
	}
	if cfg.ConnectTimeout <= 0 {
		t.Error("ConnectTimeout should be positive")
	}
}

func TestConnectionConfigFromEnv(t *testing.T) {
	t.Setenv("MONGODB_MAX_POOL_SIZE", "50")
	t.Setenv("MONGODB_MIN_POOL_SIZE", "5")
	t.Setenv("MONGODB_MAX_CONN_IDLE", "10m")
	t.Setenv("MONGODB_CONNECT_TIMEOUT", "3s")

	cfg := ConnectionConfigFromEnv()
	if cfg.MaxPoolSize != 50 {
		t.Errorf("MaxPoolSize = %d, want 50", cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize != 5 {
		t.Errorf("MinPoolSize = %d, want 5", cfg.MinPoolSize)
	}
	if cfg.MaxConnIdle != 10*time.Minute {
		t.Errorf("MaxConnIdle = %v, want 10m", cfg.MaxConnIdle)
	}
	if cfg.ConnectTimeout != 3*time.Second {
		t.Errorf("ConnectTimeout = %v, want 3s", cfg.ConnectTimeout)
	}
}

func TestConnectionConfigFromEnvInvalidFallsBack(t *testing.T) {
	t.Setenv("MONGODB_MAX_POOL_SIZE", "not-a-number")
	t.Setenv("MONGODB_MAX_CONN_IDLE", "soon")

	def := DefaultConnectionConfig()
	cfg := ConnectionConfigFromEnv()
	if cfg.MaxPoolSize != def.MaxPoolSize {
		t.Errorf("MaxPoolSize = %d, want default %d", cfg.MaxPoolSize, def.MaxPoolSize)
	}
	if cfg.MaxConnIdle != def.MaxConnIdle {
		t.Errorf("MaxConnIdle = %v, want default %v", cfg.MaxConnIdle, def.MaxConnIdle)
	}
}
