package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "words.txt", cfg.WordsFile)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, "hangman_scores.json", cfg.ScoresFile)
	assert.Equal(t, "hangman_save.json", cfg.SaveFile)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Zero(t, cfg.Seed)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HANGMAN_STORAGE", BackendRedis)
	t.Setenv("HANGMAN_SEED", "42")
	t.Setenv("REDIS_ADDR", "cache:6380")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HANGMAN_WORDS_FILE=custom.txt\n"), 0o644))
	t.Setenv("HANGMAN_WORDS_FILE", "")
	os.Unsetenv("HANGMAN_WORDS_FILE")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.txt", cfg.WordsFile)
}

func TestLoadUnknownBackend(t *testing.T) {
	t.Setenv("HANGMAN_STORAGE", "floppy")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "unknown storage backend")
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("HANGMAN_SEED", "not-an-int")

	var cfg Config
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"))
}
