package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// Key for the single saved round
const saveKey = "hangman:save"

// RedisConfig holds configuration for the Redis save store
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed save store
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

// Save overwrites the saved round
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}

	if err := r.client.Set(ctx, saveKey, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// Load returns the saved round
func (r *redisRepository) Load(ctx context.Context) (*LoadOutput, error) {
	recordJSON, err := r.client.Get(ctx, saveKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("save: reading %s: %v", saveKey, err)
		}
		return nil, ErrSaveNotFound
	}

	return decode(saveKey, []byte(recordJSON))
}

// Clear deletes the saved round
func (r *redisRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, saveKey).Err(); err != nil {
		return fmt.Errorf("failed to clear save: %w", err)
	}

	return nil
}
