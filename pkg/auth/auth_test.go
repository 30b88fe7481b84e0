package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivwell/api/pkg/cache"
)

const testSecret = "vivwell-test-jwt-secret"

func setupBlacklist(t *testing.T) *TokenBlacklist {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &cache.Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { client.Close() })

	return NewTokenBlacklist(client)
}

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("admin@vivwell.co", "admin", testSecret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin@vivwell.co", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("admin@vivwell.co", "admin", testSecret, 24)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "some-other-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestValidateJWTWithBlacklist(t *testing.T) {
	blacklist := setupBlacklist(t)
	ctx := context.Background()

	token, err := GenerateJWT("admin@vivwell.co", "admin", testSecret, 24)
	require.NoError(t, err)

	claims, err := ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.NoError(t, err)
	assert.Equal(t, "admin@vivwell.co", claims.Email)

	require.NoError(t, blacklist.Add(ctx, token, 24*time.Hour))

	_, err = ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoked")
}

func TestValidateJWTWithBlacklist_NilBlacklist(t *testing.T) {
	token, err := GenerateJWT("admin@vivwell.co", "admin", testSecret, 24)
	require.NoError(t, err)

	claims, err := ValidateJWTWithBlacklist(context.Background(), token, testSecret, nil)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenBlacklist(t *testing.T) {
	blacklist := setupBlacklist(t)
	ctx := context.Background()

	blacklisted, err := blacklist.IsBlacklisted(ctx, "some-token")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, blacklist.Add(ctx, "some-token", time.Hour))

	blacklisted, err = blacklist.IsBlacklisted(ctx, "some-token")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// Different token stays clean
	blacklisted, err = blacklist.IsBlacklisted(ctx, "other-token")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword("not-a-hash", "anything"))
}
