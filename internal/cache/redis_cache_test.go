package cache_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/cache"
	"github.com/aaravmahajanofficial/cymbal-sports-api/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{
		DefaultTTL: 10 * time.Minute,
	}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	categories := []string{"Camping", "Footwear", "Golf"}
	jsonData, err := json.Marshal(categories)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		var result []string
		mock.ExpectGet(cache.CategoriesKey).SetVal(string(jsonData))

		// Act
		found, err := redisCache.Get(ctx, cache.CategoriesKey, &result)

		// Assert
		require.NoError(t, err, "Get should not return an error on success")
		assert.True(t, found)
		assert.Equal(t, categories, result)
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	t.Run("Success - Key Not Found (Cache Miss)", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		var result []string
		mock.ExpectGet(cache.CategoriesKey).SetErr(redis.Nil)

		// Act
		found, err := redisCache.Get(ctx, cache.CategoriesKey, &result)

		// Assert
		require.NoError(t, err, "Get should not return an error on cache miss")
		assert.False(t, found)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		var result []string
		expectedErr := errors.New("redis connection error")
		mock.ExpectGet(cache.CategoriesKey).SetErr(expectedErr)

		// Act
		found, err := redisCache.Get(ctx, cache.CategoriesKey, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr, "Error should wrap the original Redis error")
		assert.Contains(t, err.Error(), fmt.Sprintf("failed to get key %s from redis", cache.CategoriesKey))
	})

	t.Run("Failure - Unmarshal Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		var result []string
		mock.ExpectGet(cache.CategoriesKey).SetVal(`{"not":"a list"}`)

		// Act
		found, err := redisCache.Get(ctx, cache.CategoriesKey, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		var jsonErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &jsonErr)
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	categories := []string{"Golf"}
	jsonData, err := json.Marshal(categories)
	require.NoError(t, err)

	t.Run("Success - With Specific TTL", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectSet(cache.CategoriesKey, jsonData, time.Minute).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, cache.CategoriesKey, categories, time.Minute)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Falls back to default TTL", func(t *testing.T) {
		// Arrange
		redisCache, mock, cfg := setup(t)
		mock.ExpectSet(cache.CategoriesKey, jsonData, cfg.DefaultTTL).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, cache.CategoriesKey, categories, 0)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Marshal Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		// Act
		err := redisCache.Set(ctx, cache.CategoriesKey, make(chan int), time.Minute)

		// Assert
		require.Error(t, err)
		var jsonErr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet(), "no redis calls expected")
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis SET failed")
		mock.ExpectSet(cache.CategoriesKey, jsonData, time.Minute).SetErr(expectedErr)

		// Act
		err := redisCache.Set(ctx, cache.CategoriesKey, categories, time.Minute)

		// Assert
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestInvalidate(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectDel(cache.CategoriesKey, "catalog:other").SetVal(2)

		// Act
		err := redisCache.Invalidate(ctx, cache.CategoriesKey, "catalog:other")

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No keys is a no-op", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		// Act
		err := redisCache.Invalidate(ctx)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis DEL failed")
		mock.ExpectDel(cache.CategoriesKey).SetErr(expectedErr)

		// Act
		err := redisCache.Invalidate(ctx, cache.CategoriesKey)

		// Assert
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "catalog:categories", cache.CategoriesKey)
	assert.Equal(t, "catalog:abc", cache.Key(cache.CatalogKeyPrefix, "abc"))
	assert.Equal(t, ":", cache.Key("", ""))
}
