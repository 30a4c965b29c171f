package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/redis/go-redis/v9"

	"github.com/trenirovka/rosterbot/internal/common/clock"
	"github.com/trenirovka/rosterbot/internal/config"
	"github.com/trenirovka/rosterbot/internal/handlers/telegram"
	"github.com/trenirovka/rosterbot/internal/health"
	actionlogRepo "github.com/trenirovka/rosterbot/internal/repositories/actionlog"
	rosterRepo "github.com/trenirovka/rosterbot/internal/repositories/roster"
	"github.com/trenirovka/rosterbot/internal/services/publisher"
	rosterService "github.com/trenirovka/rosterbot/internal/services/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Initialize repositories on the configured backend
	var stateRepo rosterRepo.Repository
	var logRepo actionlogRepo.Repository

	switch cfg.Storage {
	case config.StorageRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		stateRepo, err = rosterRepo.NewRedis(&rosterRepo.RedisConfig{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create roster repository: %v", err)
		}

		logRepo, err = actionlogRepo.NewRedis(&actionlogRepo.RedisConfig{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create action log repository: %v", err)
		}
	default:
		stateRepo, err = rosterRepo.NewFile(&rosterRepo.FileConfig{
			Path: cfg.DataFile,
		})
		if err != nil {
			log.Fatalf("Failed to create roster repository: %v", err)
		}

		logRepo, err = actionlogRepo.NewFile(&actionlogRepo.FileConfig{
			Path: cfg.LogFile,
		})
		if err != nil {
			log.Fatalf("Failed to create action log repository: %v", err)
		}
	}

	// Initialize the Telegram client
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to create Telegram client: %v", err)
	}

	// Initialize the publisher service
	publisherSvc, err := publisher.New(&publisher.Config{
		Editor: telegram.NewEditor(api),
	})
	if err != nil {
		log.Fatalf("Failed to create publisher service: %v", err)
	}

	// Initialize the roster service
	rosterSvc, err := rosterService.New(ctx, &rosterService.Config{
		RosterRepo:    stateRepo,
		ActionLogRepo: logRepo,
		Publisher:     publisherSvc,
		Clock:         &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatalf("Failed to create roster service: %v", err)
	}

	// Initialize the Telegram bot
	bot, err := telegram.New(&telegram.Config{
		API:           api,
		RosterService: rosterSvc,
		AdminIDs:      cfg.AdminIDs,
		UpdateTimeout: cfg.UpdateTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create Telegram bot: %v", err)
	}

	// Start the health endpoint
	healthSrv := health.NewServer(cfg.HTTPAddr)
	healthSrv.Start()

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Telegram bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	bot.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := healthSrv.Stop(shutdownCtx); err != nil {
		log.Printf("Error stopping health server: %v", err)
	}

	log.Println("Bot has been shut down")
}
