// Package config loads the bot's process configuration from the
// environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends.
const (
	StorageFile  = "file"
	StorageRedis = "redis"
)

// Config is the bot's process configuration.
type Config struct {
	// BotToken is the Telegram bot credential; the process cannot start
	// without it
	BotToken string `env:"BOT_TOKEN,required,notEmpty"`

	// Storage selects the persistence backend
	Storage string `env:"STORAGE" envDefault:"file"`

	// DataFile is the roster file path (file backend)
	DataFile string `env:"DATA_FILE" envDefault:"bot_data.json"`

	// LogFile is the action log file path (file backend)
	LogFile string `env:"LOG_FILE" envDefault:"action_log.json"`

	// RedisAddr and RedisPassword configure the Redis backend
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// AdminIDs are user IDs that are always treated as privileged
	AdminIDs []int64 `env:"ADMIN_IDS"`

	// HTTPAddr is the health endpoint listen address
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// UpdateTimeout is the Telegram long-poll timeout in seconds
	UpdateTimeout int `env:"UPDATE_TIMEOUT" envDefault:"60"`
}

// Load reads the configuration. A .env file is applied when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	switch cfg.Storage {
	case StorageFile, StorageRedis:
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage)
	}

	return cfg, nil
}
