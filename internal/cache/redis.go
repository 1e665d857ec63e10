package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

// Connect builds a client and checks the server answers within timeout.
func Connect(ctx context.Context, addr, pass string, db int, timeout time.Duration) (*redis.Client, error) {
	c := NewRedisClient(addr, pass, db)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := Ping(ctx, c); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return c, nil
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}
