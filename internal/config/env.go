package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends for the leaderboard and save slot
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config holds the runtime settings for the hangman binary
type Config struct {
	WordsFile string `env:"HANGMAN_WORDS_FILE" envDefault:"words.txt"`

	// StorageBackend is one of file, redis or sqlite
	StorageBackend string `env:"HANGMAN_STORAGE" envDefault:"file"`

	ScoresFile string `env:"HANGMAN_SCORES_FILE" envDefault:"hangman_scores.json"`
	SaveFile   string `env:"HANGMAN_SAVE_FILE" envDefault:"hangman_save.json"`

	// SQLitePath holds the leaderboard when StorageBackend is sqlite.
	// The save slot stays in SaveFile.
	SQLitePath string `env:"HANGMAN_SQLITE_PATH" envDefault:"hangman.db"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Seed fixes the word and hint picks; zero seeds from the clock
	Seed int64 `env:"HANGMAN_SEED"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads an optional .env file and then parses the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the backend selection
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendFile, BackendRedis, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}
