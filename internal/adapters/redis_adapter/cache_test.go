// internal/adapters/redis/cache_test.go
package redis_a_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/pantryhq/pantry-be/internal/adapters/redis_adapter"
	"github.com/pantryhq/pantry-be/internal/core/domain"
	"github.com/pantryhq/pantry-be/internal/core/ports"
	"github.com/pantryhq/pantry-be/test/helpers"
)

func setupCache(t *testing.T) (ports.CacheRepository, *helpers.TestRedis) {
	t.Helper()

	tr := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(tr.Client, time.Hour, helpers.TestLogger())
	return cache, tr
}

func TestCache_SetAndGet(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	item := helpers.CreateTestFoodItem()
	require.NoError(t, cache.Set(ctx, "food:test", item))

	var got domain.FoodItem
	require.NoError(t, cache.Get(ctx, "food:test", &got))
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, item.Name, got.Name)
	assert.Equal(t, item.Brand, got.Brand)
}

func TestCache_GetMiss(t *testing.T) {
	cache, _ := setupCache(t)

	var got domain.FoodItem
	err := cache.Get(context.Background(), "does-not-exist", &got)

	require.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestCache_SetWithTTL(t *testing.T) {
	cache, tr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetWithTTL(ctx, "short-lived", "value", time.Minute))

	// miniredis exposes time control instead of waiting for expiry.
	tr.Server.FastForward(2 * time.Minute)

	var got string
	err := cache.Get(ctx, "short-lived", &got)
	require.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestCache_Delete(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", 1))
	require.NoError(t, cache.Set(ctx, "b", 2))
	require.NoError(t, cache.Delete(ctx, "a", "b"))

	var got int
	require.ErrorIs(t, cache.Get(ctx, "a", &got), ports.ErrCacheMiss)
	require.ErrorIs(t, cache.Get(ctx, "b", &got), ports.ErrCacheMiss)

	// Deleting nothing is a no-op, not an error.
	require.NoError(t, cache.Delete(ctx))
}

func TestCache_GetOrSet(t *testing.T) {
	t.Run("miss_fetches_and_stores", func(t *testing.T) {
		cache, _ := setupCache(t)
		ctx := context.Background()

		fetches := 0
		fetch := func() (interface{}, error) {
			fetches++
			return []domain.CandidateProduct{*helpers.CreateTestCandidateProduct()}, nil
		}

		var first []domain.CandidateProduct
		require.NoError(t, cache.GetOrSet(ctx, "search:nutella", &first, fetch, time.Hour))
		require.Len(t, first, 1)

		var second []domain.CandidateProduct
		require.NoError(t, cache.GetOrSet(ctx, "search:nutella", &second, fetch, time.Hour))

		assert.Equal(t, 1, fetches, "second call must be served from cache")
		assert.Equal(t, first, second)
	})

	t.Run("fetch_error_is_propagated", func(t *testing.T) {
		cache, _ := setupCache(t)

		var dest string
		err := cache.GetOrSet(context.Background(), "k", &dest, func() (interface{}, error) {
			return nil, errors.New("upstream down")
		}, time.Hour)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "upstream down")
	})
}

func TestCache_Ping(t *testing.T) {
	cache, tr := setupCache(t)

	require.NoError(t, cache.Ping(context.Background()))

	tr.Server.Close()
	require.Error(t, cache.Ping(context.Background()))
}
