package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Renal37/order-dashboard/internal/app"
	"github.com/Renal37/order-dashboard/internal/database"
	"github.com/Renal37/order-dashboard/internal/events"
	"github.com/Renal37/order-dashboard/internal/logger"
	"github.com/Renal37/order-dashboard/internal/services"
	"github.com/Renal37/order-dashboard/internal/utils"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	jobQueueCapacity = 100
	jobQueueWorkers  = 2
	shutdownTimeout  = 10 * time.Second
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using environment")
	}

	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}
	defer logger.Sync()

	ctx, stop := utils.HandleTerminationProcess(context.Background())
	defer stop()

	db, err := database.New(ctx, config.dsn)
	if err != nil {
		log.Fatalf("Database wasn't initialized due to %s", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Migrations weren't run due to %s", err)
	}

	var (
		publishers events.Fanout
		feed       *events.RedisFeed
	)

	if config.redisAddr != "" {
		client := events.NewRedisClient(config.redisAddr)
		defer client.Close()

		feed = events.NewRedisFeed(client, config.feedKey)
		publishers = append(publishers, feed)
	} else {
		logger.Log.Warn("REDIS_ADDR is not set, /notifications will always be empty")
	}

	if len(config.kafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(config.kafkaBrokers, config.kafkaTopic)
		defer kafkaPublisher.Close()

		publishers = append(publishers, kafkaPublisher)
	}

	jobQueueService := services.NewJobQueueService(context.Background(), jobQueueCapacity, jobQueueWorkers)

	// A nil *RedisFeed must not reach the registry as a non-nil interface.
	registry := services.NewOrderRegistry(db, jobQueueService, publishers, nil)
	if feed != nil {
		registry = services.NewOrderRegistry(db, jobQueueService, publishers, feed)
	}

	server := app.New(app.Config{Endpoint: config.endpoint}, registry).Server()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Log.Info("running order API", zap.String("address", config.endpoint))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatal("server stopped with error", zap.Error(err))
	}

	jobQueueService.Shutdown()

	logger.Log.Info("order API stopped")
}
