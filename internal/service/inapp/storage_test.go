//go:build e2e

package inapp

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStorage(t *testing.T) {
	t.Parallel()
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer rdb.Close()
	ctx := t.Context()
	require.NoError(t, rdb.Del(ctx, StorageKey).Err())

	storage := NewRedisStorage(rdb)
	_, err := storage.Load(ctx)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	store := NewStore(storage)
	require.True(t, store.Send(ctx, newNotification(1, "u1")).Success)
	restored := NewStore(storage)
	assert.Len(t, restored.Notifications(), 1)
	require.NoError(t, rdb.Del(ctx, StorageKey).Err())
}
