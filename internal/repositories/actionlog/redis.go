package actionlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/trenirovka/rosterbot/internal/models"
)

// actionLogKey is the Redis list holding the action log.
const actionLogKey = "roster:action_log"

// RedisConfig holds configuration for the Redis action log repository.
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using a Redis list,
// one JSON record per element.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed action log repository.
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

// Append pushes one entry onto the tail of the log list.
func (r *redisRepository) Append(ctx context.Context, entry models.ActionEntry) error {
	data, err := json.Marshal(toRecord(entry))
	if err != nil {
		return fmt.Errorf("failed to marshal action log entry: %w", err)
	}

	if err := r.client.RPush(ctx, actionLogKey, data).Err(); err != nil {
		return fmt.Errorf("failed to append action log entry: %w", err)
	}

	return nil
}

// List returns all logged entries in append order. Elements that fail to
// decode are skipped so one bad record cannot hide the rest of the log.
func (r *redisRepository) List(ctx context.Context) ([]models.ActionEntry, error) {
	values, err := r.client.LRange(ctx, actionLogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read action log: %w", err)
	}

	entries := make([]models.ActionEntry, 0, len(values))
	for _, v := range values {
		var rec record
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			log.Printf("Skipping corrupt action log entry: %v", err)
			continue
		}
		entries = append(entries, rec.toEntry())
	}

	return entries, nil
}
