package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/hangman/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key for the serialized leaderboard
	leaderboardKey = "hangman:leaderboard"

	// Optimistic transaction retries when another writer touched the key
	maxRecordRetries = 3
)

// RedisConfig holds configuration for the Redis ledger repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// getter is satisfied by both *redis.Client and *redis.Tx
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Record appends the entry inside a WATCH transaction so the stored
// leaderboard is replaced in a single SET
func (r *redisRepository) Record(ctx context.Context, input *RecordInput) error {
	if err := validateEntry(input); err != nil {
		return err
	}

	txf := func(tx *redis.Tx) error {
		entries, err := r.load(ctx, tx)
		if err != nil {
			return err
		}
		entriesJSON, err := json.Marshal(rank(append(entries, input.Entry)))
		if err != nil {
			return fmt.Errorf("failed to marshal leaderboard: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, leaderboardKey, entriesJSON, 0)
			return nil
		})
		return err
	}

	var err error
	for i := 0; i < maxRecordRetries; i++ {
		err = r.client.Watch(ctx, txf, leaderboardKey)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to record score: %w", err)
	}

	return nil
}

// TopN returns the stored leaderboard; unreadable data reads as empty
func (r *redisRepository) TopN(ctx context.Context, input *TopNInput) (*TopNOutput, error) {
	entries, err := r.load(ctx, r.client)
	if err != nil {
		log.Printf("ledger: treating unreadable leaderboard as empty: %v", err)
		entries = []*models.LeaderboardEntry{}
	}

	n := 0
	if input != nil {
		n = input.Limit
	}

	return &TopNOutput{
		Entries: limit(rank(entries), n),
	}, nil
}

// load returns the stored entries. A missing or corrupt value is empty; only
// transport errors are returned.
func (r *redisRepository) load(ctx context.Context, c getter) ([]*models.LeaderboardEntry, error) {
	entriesJSON, err := c.Get(ctx, leaderboardKey).Result()
	if err != nil {
		if err == redis.Nil {
			return []*models.LeaderboardEntry{}, nil
		}
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	var entries []*models.LeaderboardEntry
	if err := json.Unmarshal([]byte(entriesJSON), &entries); err != nil {
		log.Printf("ledger: ignoring corrupt leaderboard: %v", err)
		return []*models.LeaderboardEntry{}, nil
	}

	valid := entries[:0]
	for _, e := range entries {
		if e != nil {
			valid = append(valid, e)
		}
	}
	return valid, nil
}
