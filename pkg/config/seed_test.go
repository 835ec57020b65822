package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeedConfig(t *testing.T) {
	path := writeTempConfig(t, `
count: 10
categories:
  - Technology
  - Health
author: fixtures
drop_first: true
`)

	cfg, err := LoadSeedConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Count)
	assert.Equal(t, []string{"Technology", "Health"}, cfg.Categories)
	assert.Equal(t, "fixtures", cfg.Author)
	assert.True(t, cfg.DropFirst)
}

func TestLoadSeedConfigDefaults(t *testing.T) {
	path := writeTempConfig(t, `count: 3`)

	cfg, err := LoadSeedConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Count)
	assert.Empty(t, cfg.Categories)
	assert.Equal(t, "seed-bot", cfg.Author)
	assert.False(t, cfg.DropFirst)
}

func TestLoadSeedConfigRejectsNonPositiveCount(t *testing.T) {
	path := writeTempConfig(t, `count: 0`)

	_, err := LoadSeedConfig(path)
	assert.Error(t, err)
}

func TestLoadSeedConfigMissingFile(t *testing.T) {
	_, err := LoadSeedConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSeedConfigMalformedYAML(t *testing.T) {
	path := writeTempConfig(t, "count: [not a number")

	_, err := LoadSeedConfig(path)
	assert.Error(t, err)
}
