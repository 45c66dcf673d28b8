package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultFeedKey = "orders:notifications"

// RedisFeed keeps pending events in a Redis list until the dashboard drains it.
type RedisFeed struct {
	client redis.Cmdable
	key    string
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

func NewRedisFeed(client redis.Cmdable, key string) *RedisFeed {
	if key == "" {
		key = DefaultFeedKey
	}

	return &RedisFeed{client: client, key: key}
}

func (f *RedisFeed) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.ID, err)
	}

	if err := f.client.LPush(ctx, f.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to push event %s to %s: %w", event.ID, f.key, err)
	}

	return nil
}

// Drain atomically takes every pending event, oldest first.
func (f *RedisFeed) Drain(ctx context.Context) ([]Event, error) {
	var lrange *redis.StringSliceCmd

	_, err := f.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, f.key, 0, -1)
		pipe.Del(ctx, f.key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to drain %s: %w", f.key, err)
	}

	return decodeFeed(lrange.Val())
}

// decodeFeed turns LPUSH order (newest first) back into publish order.
func decodeFeed(payloads []string) ([]Event, error) {
	events := make([]Event, 0, len(payloads))

	for i := len(payloads) - 1; i >= 0; i-- {
		var event Event
		if err := json.Unmarshal([]byte(payloads[i]), &event); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}
