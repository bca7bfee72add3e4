package tests

import (
	"context"
	"testing"

	"daily-dish/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestStatsCache(t *testing.T) (*storage.RedisStatsCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return storage.NewRedisStatsCache(client), mr
}

func TestRedisStatsCache_UpdateAndRead(t *testing.T) {
	cache, mr := newTestStatsCache(t)
	ctx := context.Background()

	assert.NoError(t, cache.UpdateDishStats(ctx, "Soup", 4.5, 2))

	stats, err := cache.DishStats(ctx, "Soup")
	assert.NoError(t, err)
	assert.Equal(t, "4.5", stats["avg_rating"])
	assert.Equal(t, "2", stats["rating_count"])
	assert.NotEmpty(t, stats["last_updated"])

	// Keys expire so stale aggregates age out on their own.
	ttl := mr.TTL("dish:Soup")
	assert.Greater(t, ttl.Hours(), 23.0)
}

func TestRedisStatsCache_MissingDish(t *testing.T) {
	cache, _ := newTestStatsCache(t)

	stats, err := cache.DishStats(context.Background(), "Pasta")
	assert.NoError(t, err)
	assert.Empty(t, stats)
}

func TestRedisStatsCache_RecordDailyPick(t *testing.T) {
	cache, mr := newTestStatsCache(t)
	ctx := context.Background()

	assert.NoError(t, cache.RecordDailyPick(ctx, "2024-03-01", "Soup"))
	assert.NoError(t, cache.RecordDailyPick(ctx, "2024-03-01", "Soup"))
	assert.NoError(t, cache.RecordDailyPick(ctx, "2024-03-01", "Pasta"))

	score, err := mr.ZScore("picks:daily:2024-03-01", "Soup")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, score)
}
