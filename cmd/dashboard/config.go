package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/Renal37/order-dashboard/internal/services"
)

type Config struct {
	endpoint             string
	orderAPIURL          string
	requestTimeout       time.Duration
	healthInterval       time.Duration
	notificationInterval time.Duration
	logLevel             string
	env                  string
}

func durationFromEnv(name string, fallback time.Duration) time.Duration {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("WARNING: %s=%q is not a valid duration, using %s\n", name, value, fallback)
		return fallback
	}

	return d
}

func NewConfig() Config {
	var (
		endpoint    string
		orderAPIURL string
		logLevel    string
		env         string
	)

	flag.StringVar(&endpoint, "a", "localhost:8090", "address and port to run server")
	flag.StringVar(&orderAPIURL, "r", "http://localhost:8080", "base URL of the order API")
	flag.Parse()

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		endpoint = address
	}

	if apiURL := os.Getenv("ORDER_API_URL"); apiURL != "" {
		orderAPIURL = apiURL
	}

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		logLevel = l
	} else {
		logLevel = "error"
	}

	if e := os.Getenv("ENV"); e != "" {
		env = e
	} else {
		env = "production"
	}

	return Config{
		endpoint:             endpoint,
		orderAPIURL:          orderAPIURL,
		requestTimeout:       durationFromEnv("REQUEST_TIMEOUT", services.DefaultRequestTimeout),
		healthInterval:       durationFromEnv("HEALTH_INTERVAL", services.DefaultHealthInterval),
		notificationInterval: durationFromEnv("NOTIFICATION_INTERVAL", services.DefaultNotificationInterval),
		logLevel:             logLevel,
		env:                  env,
	}
}
