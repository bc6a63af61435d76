package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ProtocolCache implements ports.ProtocolCache using Redis. Entries
// mirror durable protocol rows, so a miss is always safe.
type ProtocolCache struct {
	client *goredis.Client
	prefix string
}

// NewProtocolCache creates a new Redis-backed protocol cache.
func NewProtocolCache(client *goredis.Client) *ProtocolCache {
	return &ProtocolCache{
		client: client,
		prefix: "cache:",
	}
}

// Get retrieves a cached protocol entry. Returns nil, nil on a miss.
func (c *ProtocolCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis protocol get: %w", err)
	}
	return val, nil
}

// Set stores a protocol entry with TTL.
func (c *ProtocolCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis protocol set: %w", err)
	}
	return nil
}
