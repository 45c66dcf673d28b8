package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Renal37/order-dashboard/internal/catalog"
	router "github.com/Renal37/order-dashboard/internal/http"
	"github.com/Renal37/order-dashboard/internal/logger"
	"github.com/Renal37/order-dashboard/internal/services"
	"github.com/Renal37/order-dashboard/internal/utils"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

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

	api := services.NewAPIClient(config.orderAPIURL, config.requestTimeout)
	notifications := services.NewNotificationStore()
	store := services.NewStore()
	products := catalog.Default()

	board := services.NewOrderViewModel(api, products, store, notifications)
	monitor := services.NewHealthMonitor(api, store, config.healthInterval)
	poller := services.NewNotificationPoller(api, notifications, config.notificationInterval)

	server := router.New(
		router.Config{Endpoint: config.endpoint},
		board,
		notifications,
		products,
	).Server()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Info("running dashboard", zap.String("address", config.endpoint), zap.String("order_api", config.orderAPIURL))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		monitor.Start(gCtx)
		poller.Start(gCtx)

		if err := board.Refresh(gCtx); err != nil {
			logger.Log.Warn("initial order fetch failed", zap.Error(err))
		}

		<-gCtx.Done()

		monitor.Stop()
		poller.Stop()
		board.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Fatal("dashboard stopped with error", zap.Error(err))
	}

	logger.Log.Info("dashboard stopped")
}
