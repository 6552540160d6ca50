package locker

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	redisrepo "medplan-service/internal/app/services/shared/redis"
)

func newTestLockService(t *testing.T) *lockService {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	repo := redisrepo.NewRedisRepository(client)
	return &lockService{redisRepo: repo, Log: zap.NewNop()}
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire and release", func(t *testing.T) {
		svc := newTestLockService(t)

		acquired, token, err := svc.TryLock(ctx, "schedule-lock:S1", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, token)

		require.NoError(t, svc.Unlock(ctx, "schedule-lock:S1", token))

		// released lock can be re-acquired
		acquired, _, err = svc.TryLock(ctx, "schedule-lock:S1", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("second holder is rejected while held", func(t *testing.T) {
		svc := newTestLockService(t)

		acquired, _, err := svc.TryLock(ctx, "schedule-lock:S1", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		acquired, token, err := svc.TryLock(ctx, "schedule-lock:S1", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, token)
	})

	t.Run("unlock with wrong token keeps the lock", func(t *testing.T) {
		svc := newTestLockService(t)

		acquired, _, err := svc.TryLock(ctx, "schedule-lock:S1", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		err = svc.Unlock(ctx, "schedule-lock:S1", "not-the-owner")
		assert.Error(t, err)

		acquired, _, err = svc.TryLock(ctx, "schedule-lock:S1", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
	})

	t.Run("unlock of absent key is a no-op", func(t *testing.T) {
		svc := newTestLockService(t)
		assert.NoError(t, svc.Unlock(ctx, "schedule-lock:missing", "whatever"))
	})

	t.Run("refresh requires ownership", func(t *testing.T) {
		svc := newTestLockService(t)

		acquired, token, err := svc.TryLock(ctx, "schedule-lock:S1", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		assert.NoError(t, svc.Refresh(ctx, "schedule-lock:S1", token, 2*time.Minute))
		assert.Error(t, svc.Refresh(ctx, "schedule-lock:S1", "someone-else", 2*time.Minute))
	})
}
