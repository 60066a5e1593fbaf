package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"support-desk/pkg/config"
	"support-desk/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned by Get when the key does not exist or has expired.
var ErrKeyNotFound = errors.New("key not found")

// Client wraps the redis client with JSON marshaling helpers
type Client struct {
	client *redis.Client
}

// NewClient creates a new Redis client
func NewClient(cfg *config.Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result := rdb.Ping(ctx)
	if result.Err() != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", result.Err())
	}

	logger.Info("Connected to Redis successfully")

	return &Client{
		client: rdb,
	}, nil
}

// NewClientFromRedis wraps an existing go-redis client, used by tests running
// against miniredis.
func NewClientFromRedis(rdb *redis.Client) *Client {
	return &Client{client: rdb}
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}

// Set sets a key-value pair with expiration, marshaling the value as JSON
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	result := c.client.Set(ctx, key, data, expiration)
	if result.Err() != nil {
		return fmt.Errorf("failed to set key: %w", result.Err())
	}

	return nil
}

// Get gets a value by key, unmarshaling it into dest
func (c *Client) Get(ctx context.Context, key string, dest interface{}) error {
	result := c.client.Get(ctx, key)
	if result.Err() != nil {
		if result.Err() == redis.Nil {
			return ErrKeyNotFound
		}
		return fmt.Errorf("failed to get key: %w", result.Err())
	}

	data, err := result.Bytes()
	if err != nil {
		return fmt.Errorf("failed to get bytes: %w", err)
	}

	err = json.Unmarshal(data, dest)
	if err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return nil
}

// Delete deletes a key
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	result := c.client.Del(ctx, keys...)
	if result.Err() != nil {
		return fmt.Errorf("failed to delete keys: %w", result.Err())
	}

	return nil
}

// ZAdd adds members to a sorted set
func (c *Client) ZAdd(ctx context.Context, key string, members ...redis.Z) error {
	result := c.client.ZAdd(ctx, key, members...)
	if result.Err() != nil {
		return fmt.Errorf("failed to add to sorted set: %w", result.Err())
	}
	return nil
}

// ZCard returns the number of members in a sorted set
func (c *Client) ZCard(ctx context.Context, key string) (int64, error) {
	result := c.client.ZCard(ctx, key)
	if result.Err() != nil {
		return 0, fmt.Errorf("failed to count sorted set: %w", result.Err())
	}
	return result.Val(), nil
}

// ZRemRangeByScore removes members from a sorted set within a score range
func (c *Client) ZRemRangeByScore(ctx context.Context, key, min, max string) error {
	result := c.client.ZRemRangeByScore(ctx, key, min, max)
	if result.Err() != nil {
		return fmt.Errorf("failed to trim sorted set: %w", result.Err())
	}
	return nil
}

// Expire sets expiration for a key
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) error {
	result := c.client.Expire(ctx, key, expiration)
	if result.Err() != nil {
		return fmt.Errorf("failed to set expiration: %w", result.Err())
	}
	return nil
}
