package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Ravinder82/CineRating/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "cinerating:"

// Cache is a small JSON read-through cache over redis. Callers hold a
// nil *Cache when caching is disabled.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// New connects to redis. Returns (nil, nil) when no address is
// configured.
func New(config utils.RedisConfig, log *zap.Logger) (*Cache, error) {
	if config.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: config.Addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	ttl := time.Duration(config.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("component", "cache")),
	}, nil
}

// Get loads a cached value into dest. Returns false on miss.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("cache unmarshal %s: %w", key, err)
	}

	return true, nil
}

// Set stores a value under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}

	if err := c.client.Set(ctx, keyPrefix+key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}

// Flush drops every cached value of this application. Called after any
// write so cached aggregates never outlive a mutation.
func (c *Cache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

func (c *Cache) Close() {
	if err := c.client.Close(); err != nil {
		c.log.Warn("Failed to close redis client", zap.Error(err))
	}
}
