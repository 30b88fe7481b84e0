package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	client := &Client{
		Redis: redisClient,
	}

	return client, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "test:key1", "value1", 1*time.Hour)
	require.NoError(t, err)

	val, err := client.Get(ctx, "test:key1")
	require.NoError(t, err)
	assert.Equal(t, "value1", val)
}

func TestClient_GetMissing(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	_, err := client.Get(context.Background(), "test:nope")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "test:key1", "value1", 1*time.Hour)
	_ = client.Set(ctx, "test:key2", "value2", 1*time.Hour)

	err := client.Delete(ctx, "test:key1")
	require.NoError(t, err)

	_, err = client.Get(ctx, "test:key1")
	assert.Error(t, err)

	val, err := client.Get(ctx, "test:key2")
	require.NoError(t, err)
	assert.Equal(t, "value2", val)
}

func TestClient_ExistsAndTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "test:key1", "value1", 1*time.Hour)
	require.NoError(t, err)

	exists, err := client.Exists(ctx, "test:key1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.Exists(ctx, "test:missing")
	require.NoError(t, err)
	assert.False(t, exists)

	ttl, err := client.TTL(ctx, "test:key1")
	require.NoError(t, err)
	assert.Equal(t, 1*time.Hour, ttl)
}

func TestStore_MissingKeyIsEmpty(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := NewStore(client)

	// Absent keys come back as an empty string, not an error. The
	// attribution extractor and the submission gate rely on this.
	val, err := store.Get(context.Background(), "attribution:visitor-42")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestStore_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := NewStore(client)
	ctx := context.Background()

	err := store.Set(ctx, "attribution:visitor-42", `{"params":{"utm_source":"linkedin"}}`, 90*24*time.Hour)
	require.NoError(t, err)

	val, err := store.Get(ctx, "attribution:visitor-42")
	require.NoError(t, err)
	assert.Equal(t, `{"params":{"utm_source":"linkedin"}}`, val)
}

func TestStore_TTLExpiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := NewStore(client)
	ctx := context.Background()

	err := store.Set(ctx, "submission-gate:dana@acme.com", "1756600000", 5*time.Minute)
	require.NoError(t, err)

	mr.FastForward(6 * time.Minute)

	val, err := store.Get(ctx, "submission-gate:dana@acme.com")
	require.NoError(t, err)
	assert.Empty(t, val)
}
