package repository

import (
	"context"
	"testing"
	"time"

	"github.com/benx421/simple-banking/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepository_Store_And_Get(t *testing.T) {
	repo := NewIdempotencyRepository(time.Hour)

	tests := []struct {
		name        string
		key         string
		requestPath string
		body        string
		status      int
	}{
		{
			name:        "store and retrieve issued card",
			key:         "test-key-1",
			requestPath: "/api/v1/cards",
			status:      201,
			body:        `{"card_number":"4000008449433403","pin":"1234"}`,
		},
		{
			name:        "store and retrieve income",
			key:         "test-key-2",
			requestPath: "/api/v1/cards/4000008449433403/income",
			status:      200,
			body:        `{"card_number":"4000008449433403","balance":500}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idemKey := &models.IdempotencyKey{
				Key:            tt.key,
				RequestPath:    tt.requestPath,
				ResponseStatus: tt.status,
				ResponseBody:   tt.body,
			}

			err := repo.Store(context.Background(), idemKey)
			require.NoError(t, err, "failed to store idempotency key")

			retrieved, err := repo.Get(context.Background(), tt.key, tt.requestPath)
			require.NoError(t, err, "failed to get idempotency key")
			require.NotNil(t, retrieved, "expected idempotency key")

			assert.Equal(t, tt.key, retrieved.Key, "key mismatch")
			assert.Equal(t, tt.requestPath, retrieved.RequestPath, "request path mismatch")
			assert.Equal(t, tt.status, retrieved.ResponseStatus, "status mismatch")
			assert.Equal(t, tt.body, retrieved.ResponseBody, "body mismatch")
			assert.False(t, retrieved.CreatedAt.IsZero(), "created at should be stamped")
		})
	}
}

func TestIdempotencyRepository_Get_NotFound(t *testing.T) {
	repo := NewIdempotencyRepository(time.Hour)

	result, err := repo.Get(context.Background(), "non-existent-key", "/api/v1/cards")
	require.NoError(t, err, "unexpected error")
	assert.Nil(t, result, "expected nil for non-existent key")
}

func TestIdempotencyRepository_Store_FirstWins(t *testing.T) {
	repo := NewIdempotencyRepository(time.Hour)

	key := "duplicate-key"
	path := "/api/v1/cards"

	first := &models.IdempotencyKey{
		Key:            key,
		RequestPath:    path,
		ResponseStatus: 201,
		ResponseBody:   `{"first":"response"}`,
	}
	require.NoError(t, repo.Store(context.Background(), first))

	second := &models.IdempotencyKey{
		Key:            key,
		RequestPath:    path,
		ResponseStatus: 400,
		ResponseBody:   `{"second":"response"}`,
	}
	require.NoError(t, repo.Store(context.Background(), second))

	retrieved, err := repo.Get(context.Background(), key, path)
	require.NoError(t, err)

	assert.Equal(t, first.ResponseStatus, retrieved.ResponseStatus, "first response should win (status)")
	assert.Equal(t, first.ResponseBody, retrieved.ResponseBody, "first response should win (body)")
}

func TestIdempotencyRepository_SameKey_DifferentPath(t *testing.T) {
	repo := NewIdempotencyRepository(time.Hour)
	key := "same-key"

	first := &models.IdempotencyKey{
		Key:            key,
		RequestPath:    "/api/v1/cards/4000008449433403/income",
		ResponseStatus: 200,
		ResponseBody:   `{"income":"response"}`,
	}
	require.NoError(t, repo.Store(context.Background(), first))

	second := &models.IdempotencyKey{
		Key:            key,
		RequestPath:    "/api/v1/cards/4000008449433403/transfers",
		ResponseStatus: 200,
		ResponseBody:   `{"transfer":"response"}`,
	}
	require.NoError(t, repo.Store(context.Background(), second))

	retrieved1, err := repo.Get(context.Background(), key, first.RequestPath)
	require.NoError(t, err)
	assert.Equal(t, first.ResponseBody, retrieved1.ResponseBody, "first path body mismatch")

	retrieved2, err := repo.Get(context.Background(), key, second.RequestPath)
	require.NoError(t, err)
	assert.Equal(t, second.ResponseBody, retrieved2.ResponseBody, "second path body mismatch")
}

func TestIdempotencyRepository_ExpiredEntriesStopReplaying(t *testing.T) {
	repo := NewIdempotencyRepository(time.Hour).(*idempotencyRepository)
	now := time.Now()
	repo.now = func() time.Time { return now }

	stale := &models.IdempotencyKey{
		Key:            "stale-key",
		RequestPath:    "/api/v1/cards",
		ResponseStatus: 201,
		ResponseBody:   "stale",
		CreatedAt:      now.Add(-2 * time.Hour),
	}
	require.NoError(t, repo.Store(context.Background(), stale))

	result, err := repo.Get(context.Background(), "stale-key", "/api/v1/cards")
	require.NoError(t, err)
	assert.Nil(t, result, "entry older than ttl should not replay")

	fresh := &models.IdempotencyKey{
		Key:            "stale-key",
		RequestPath:    "/api/v1/cards",
		ResponseStatus: 201,
		ResponseBody:   "fresh",
	}
	require.NoError(t, repo.Store(context.Background(), fresh))

	result, err = repo.Get(context.Background(), "stale-key", "/api/v1/cards")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "fresh", result.ResponseBody, "expired entry should be replaced")
}

func TestIdempotencyRepository_DeleteOlderThan(t *testing.T) {
	repo := NewIdempotencyRepository(0)

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	oldKey := &models.IdempotencyKey{
		Key:            "old-key",
		RequestPath:    "/api/v1/cards",
		ResponseStatus: 201,
		ResponseBody:   "old",
		CreatedAt:      yesterday.Add(-1 * time.Hour),
	}
	require.NoError(t, repo.Store(context.Background(), oldKey))

	recentKey := &models.IdempotencyKey{
		Key:            "recent-key",
		RequestPath:    "/api/v1/cards",
		ResponseStatus: 201,
		ResponseBody:   "recent",
		CreatedAt:      now.Add(-1 * time.Hour),
	}
	require.NoError(t, repo.Store(context.Background(), recentKey))

	deletedCount, err := repo.DeleteOlderThan(context.Background(), yesterday)
	require.NoError(t, err, "failed to delete old keys")
	assert.Equal(t, int64(1), deletedCount, "deleted count mismatch")

	oldResult, err := repo.Get(context.Background(), "old-key", "/api/v1/cards")
	require.NoError(t, err)
	assert.Nil(t, oldResult, "old key should have been deleted")

	recentResult, err := repo.Get(context.Background(), "recent-key", "/api/v1/cards")
	require.NoError(t, err)
	assert.NotNil(t, recentResult, "recent key should still exist")
}

func TestIdempotencyRepository_DeleteOlderThan_NoneDeleted(t *testing.T) {
	repo := NewIdempotencyRepository(0)

	deletedCount, err := repo.DeleteOlderThan(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), deletedCount)
}
