package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"little_lemon/internal/models"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func menuItemKey(id uint) string {
	return fmt.Sprintf("menu_item:%d", id)
}

// Menu item cache
func (c *Client) SetMenuItem(item *models.MenuItem, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal menu item: %w", err)
	}

	return c.rdb.Set(ctx, menuItemKey(item.ID), jsonData, ttl).Err()
}

func (c *Client) GetMenuItem(id uint) (*models.MenuItem, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, menuItemKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	var item models.MenuItem
	if err := json.Unmarshal([]byte(val), &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal menu item: %w", err)
	}

	return &item, nil
}

func (c *Client) DeleteMenuItem(id uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, menuItemKey(id)).Err()
}

// Revoked tokens are kept until the token would have expired anyway.
func (c *Client) RevokeToken(tokenID string, ttl time.Duration) error {
	ctx := context.Background()
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, "revoked_token:"+tokenID, 1, ttl).Err()
}

func (c *Client) IsTokenRevoked(tokenID string) (bool, error) {
	ctx := context.Background()
	n, err := c.rdb.Exists(ctx, "revoked_token:"+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return n > 0, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
