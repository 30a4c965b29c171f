package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/trenirovka/rosterbot/internal/models"
)

// rosterKey is the Redis key holding the roster snapshot.
const rosterKey = "roster:state"

// RedisConfig holds configuration for the Redis roster repository.
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roster repository.
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
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

// Load retrieves the roster snapshot from Redis. An absent key is seeded
// with a fresh empty roster; a corrupt value falls back to empty defaults.
func (r *redisRepository) Load(ctx context.Context) (*models.Roster, error) {
	data, err := r.client.Get(ctx, rosterKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			log.Printf("Roster key %s not found, creating a new one", rosterKey)
			empty := models.NewRoster()
			if saveErr := r.Save(ctx, empty); saveErr != nil {
				log.Printf("Failed to seed roster key %s: %v", rosterKey, saveErr)
			}
			return empty, nil
		}
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	var s snapshot
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		log.Printf("Roster key %s is corrupt: %v, falling back to empty state", rosterKey, err)
		return models.NewRoster(), nil
	}

	return s.toRoster(), nil
}

// Save persists the roster snapshot to Redis.
func (r *redisRepository) Save(ctx context.Context, roster *models.Roster) error {
	if roster == nil {
		return errors.New("roster cannot be nil")
	}

	data, err := json.Marshal(toSnapshot(roster))
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}

	if err := r.client.Set(ctx, rosterKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}

	return nil
}
