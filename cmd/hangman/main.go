package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/KirkDiggler/hangman/internal/catalog"
	"github.com/KirkDiggler/hangman/internal/common/clock"
	"github.com/KirkDiggler/hangman/internal/common/uuid"
	"github.com/KirkDiggler/hangman/internal/config"
	"github.com/KirkDiggler/hangman/internal/handlers/console"
	"github.com/KirkDiggler/hangman/internal/random"
	"github.com/KirkDiggler/hangman/internal/repositories/ledger"
	"github.com/KirkDiggler/hangman/internal/repositories/save"
	gameService "github.com/KirkDiggler/hangman/internal/services/game"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	flag.StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "words file (category:word or word per line)")
	flag.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "storage backend: file, redis or sqlite")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	ledgerRepo, saveRepo, closeStorage := openStorage(cfg)
	defer closeStorage()

	roller := random.New(&random.Config{
		Seed: cfg.Seed,
	})

	words, err := catalog.Load(&catalog.Config{
		WordsFile: cfg.WordsFile,
		Roller:    roller,
	})
	if err != nil {
		log.Fatalf("Failed to load word catalog: %v", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		Catalog:       words,
		LedgerRepo:    ledgerRepo,
		SaveRepo:      saveRepo,
		Roller:        roller,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	term, err := console.New(&console.Config{
		In:          os.Stdin,
		Out:         os.Stdout,
		GameService: gameSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create console: %v", err)
	}

	if err := term.Run(ctx); err != nil {
		log.Fatalf("Console stopped: %v", err)
	}
}

// openStorage builds the leaderboard and save repositories for the configured backend
func openStorage(cfg *config.Config) (ledger.Repository, save.Repository, func()) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})

		// Test Redis connection
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		ledgerRepo, err := ledger.NewRedis(&ledger.RedisConfig{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create ledger repository: %v", err)
		}

		saveRepo, err := save.NewRedis(&save.RedisConfig{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create save repository: %v", err)
		}

		return ledgerRepo, saveRepo, func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis client: %v", err)
			}
		}

	case config.BackendSQLite:
		store, err := ledger.OpenSQLite(&ledger.SQLiteConfig{
			Path: cfg.SQLitePath,
		})
		if err != nil {
			log.Fatalf("Failed to open sqlite ledger: %v", err)
		}

		return store, newFileSave(cfg), func() {
			if err := store.Close(); err != nil {
				log.Printf("Error closing sqlite ledger: %v", err)
			}
		}

	default:
		ledgerRepo, err := ledger.NewFile(&ledger.FileConfig{
			Path: cfg.ScoresFile,
		})
		if err != nil {
			log.Fatalf("Failed to create ledger repository: %v", err)
		}

		return ledgerRepo, newFileSave(cfg), func() {}
	}
}

func newFileSave(cfg *config.Config) save.Repository {
	saveRepo, err := save.NewFile(&save.FileConfig{
		Path: cfg.SaveFile,
	})
	if err != nil {
		log.Fatalf("Failed to create save repository: %v", err)
	}
	return saveRepo
}
