package adapter

import (
	"context"
	"testing"
	"time"

	"careerpath/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)
	ctx := context.Background()

	mock.ExpectGet("careerpath:career:catalog:all").SetVal(`[{"id":"c1"}]`)
	val, err := cache.Get(ctx, "careerpath:career:catalog:all")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"c1"}]`, val)

	mock.ExpectGet("missing").RedisNil()
	_, err = cache.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_SetAndDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)
	ctx := context.Background()

	mock.ExpectSet("key", "value", 10*time.Minute).SetVal("OK")
	require.NoError(t, cache.Set(ctx, "key", "value", 10*time.Minute))

	mock.ExpectDel("key").SetVal(1)
	require.NoError(t, cache.Delete(ctx, "key"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectPing().SetVal("PONG")
	require.NoError(t, cache.Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
