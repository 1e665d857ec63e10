package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "mentorme:history:"

// RedisBackend keeps each user's records in one Redis list.
type RedisBackend struct {
	client redis.UniversalClient
	// ttl, when positive, is refreshed on every write.
	ttl time.Duration
}

func NewRedisBackend(client redis.UniversalClient, ttl time.Duration) *RedisBackend {
	return &RedisBackend{client: client, ttl: ttl}
}

func redisKey(userID string) string {
	return redisKeyPrefix + userID
}

func (r *RedisBackend) Append(ctx context.Context, userID string, rec Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	key := redisKey(userID)
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, key, b)
		if r.ttl > 0 {
			p.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	return err
}

func (r *RedisBackend) Load(ctx context.Context, userID string) ([]Record, error) {
	items, err := r.client.LRange(ctx, redisKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(items))
	for i, item := range items {
		var rec Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("decode record %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *RedisBackend) Clear(ctx context.Context, userID string) error {
	return r.client.Del(ctx, redisKey(userID)).Err()
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}
