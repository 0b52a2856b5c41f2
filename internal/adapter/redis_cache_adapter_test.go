package adapter

import (
	"context"
	"testing"
	"time"

	"studytrack/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		mock.ExpectGet("some-key").SetVal("some-value")

		val, err := cache.Get(ctx, "some-key")
		assert.NoError(t, err)
		assert.Equal(t, "some-value", val)
	})

	t.Run("miss translates to ErrCacheMiss", func(t *testing.T) {
		mock.ExpectGet("missing-key").RedisNil()

		_, err := cache.Get(ctx, "missing-key")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_SetAndDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)
	ctx := context.Background()

	mock.ExpectSet("some-key", "some-value", time.Minute).SetVal("OK")
	assert.NoError(t, cache.Set(ctx, "some-key", "some-value", time.Minute))

	mock.ExpectDel("some-key").SetVal(1)
	assert.NoError(t, cache.Delete(ctx, "some-key"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, cache.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
