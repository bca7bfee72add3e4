package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStatsCache holds per-dish rating aggregates and daily pick counters.
type RedisStatsCache struct {
	Client *redis.Client
}

func NewRedisStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{Client: client}
}

func (c *RedisStatsCache) dishKey(name string) string {
	return "dish:" + name
}

func (c *RedisStatsCache) UpdateDishStats(ctx context.Context, name string, avg float64, count int) error {
	key := c.dishKey(name)
	if err := c.Client.HSet(ctx, key, map[string]interface{}{
		"avg_rating":   avg,
		"rating_count": count,
		"last_updated": time.Now().Unix(),
	}).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, 24*time.Hour).Err()
}

func (c *RedisStatsCache) DishStats(ctx context.Context, name string) (map[string]string, error) {
	return c.Client.HGetAll(ctx, c.dishKey(name)).Result()
}

func (c *RedisStatsCache) RecordDailyPick(ctx context.Context, day, name string) error {
	key := "picks:daily:" + day
	if err := c.Client.ZIncrBy(ctx, key, 1, name).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, 7*24*time.Hour).Err()
}
