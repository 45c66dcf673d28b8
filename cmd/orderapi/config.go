package main

import (
	"flag"
	"os"
	"strings"

	"github.com/Renal37/order-dashboard/internal/events"
)

type Config struct {
	endpoint     string
	dsn          string
	redisAddr    string
	feedKey      string
	kafkaBrokers []string
	kafkaTopic   string
	logLevel     string
	env          string
}

func splitList(value string) []string {
	var items []string

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

func NewConfig() Config {
	var (
		endpoint string
		dsn      string
		logLevel string
		env      string
	)

	flag.StringVar(&endpoint, "a", "localhost:8080", "address and port to run server")
	flag.StringVar(&dsn, "d", "", "data source name for database connection")
	flag.Parse()

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		endpoint = address
	}

	if d := os.Getenv("DATABASE_URI"); d != "" {
		dsn = d
	}

	feedKey := os.Getenv("NOTIFICATION_FEED_KEY")
	if feedKey == "" {
		feedKey = events.DefaultFeedKey
	}

	kafkaTopic := os.Getenv("KAFKA_TOPIC")
	if kafkaTopic == "" {
		kafkaTopic = events.DefaultTopic
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
		endpoint:     endpoint,
		dsn:          dsn,
		redisAddr:    os.Getenv("REDIS_ADDR"),
		feedKey:      feedKey,
		kafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		kafkaTopic:   kafkaTopic,
		logLevel:     logLevel,
		env:          env,
	}
}
