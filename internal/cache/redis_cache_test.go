package cache_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Kirolos010/E-Commerce-API/internal/cache"
	"github.com/Kirolos010/E-Commerce-API/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_Get(t *testing.T) {
	t.Run("Hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client, time.Minute)

		stored := &models.Category{ID: 7, Title: "Shoes"}
		data, err := json.Marshal(stored)
		require.NoError(t, err)

		mock.ExpectGet("category:7").SetVal(string(data))

		var got models.Category

		hit, err := c.Get(t.Context(), "category:7", &got)

		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, "Shoes", got.Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client, time.Minute)

		mock.ExpectGet("category:99").RedisNil()

		var got models.Category

		hit, err := c.Get(t.Context(), "category:99", &got)

		require.NoError(t, err, "a miss is not an error")
		assert.False(t, hit)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CorruptEntry", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client, time.Minute)

		mock.ExpectGet("category:7").SetVal("not-json")

		var got models.Category

		hit, err := c.Get(t.Context(), "category:7", &got)

		require.Error(t, err)
		assert.False(t, hit)
	})
}

func TestRedisCache_Set(t *testing.T) {
	t.Run("ExplicitTTL", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client, time.Minute)

		value := &models.Category{ID: 7, Title: "Shoes"}
		data, err := json.Marshal(value)
		require.NoError(t, err)

		mock.ExpectSet("category:7", data, time.Hour).SetVal("OK")

		require.NoError(t, c.Set(t.Context(), "category:7", value, time.Hour))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ZeroTTLFallsBackToDefault", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client, time.Minute)

		value := &models.Category{ID: 7, Title: "Shoes"}
		data, err := json.Marshal(value)
		require.NoError(t, err)

		mock.ExpectSet("category:7", data, time.Minute).SetVal("OK")

		require.NoError(t, c.Set(t.Context(), "category:7", value, 0))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCache_Delete(t *testing.T) {
	t.Run("DeletesKeys", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client, time.Minute)

		mock.ExpectDel("category:7", "category:8").SetVal(2)

		require.NoError(t, c.Delete(t.Context(), "category:7", "category:8"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoKeysIsNoOp", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client, time.Minute)

		require.NoError(t, c.Delete(t.Context()))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
