package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/config"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/showtime"
	redisinfra "github.com/sanosuguru/go-cinema-seat-reservation/internal/infrastructure/redis"
)

func setupTestCache(t *testing.T) *redisinfra.ShowtimeCache {
	t.Helper()

	client := redisinfra.NewClient(&config.RedisConfig{Host: "localhost", Port: "6379"})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := redisinfra.Ping(ctx, client); err != nil {
		t.Skip("Redis not available")
	}
	t.Cleanup(func() { client.Close() })
	return redisinfra.NewShowtimeCache(client, 30*time.Second)
}

func TestCachedProvider_GetByID(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()
	showtimeID := "cached-test-showtime"
	t.Cleanup(func() { cache.Invalidate(ctx, showtimeID) })

	inner := NewStaticCatalog()
	require.NoError(t, inner.Register(showtime.New(showtimeID, 8, 10)))
	provider := NewCachedProvider(inner, cache)

	t.Run("キャッシュミス時はカタログから取得しキャッシュする", func(t *testing.T) {
		st, err := provider.GetByID(ctx, showtimeID)
		require.NoError(t, err)
		assert.Equal(t, 8, st.Rows)

		cached, err := cache.Get(ctx, showtimeID)
		require.NoError(t, err)
		assert.Equal(t, 8, cached.Rows)
		assert.Equal(t, 10, cached.SeatsPerRow)
	})

	t.Run("2回目はキャッシュから返す", func(t *testing.T) {
		st, err := provider.GetByID(ctx, showtimeID)
		require.NoError(t, err)
		assert.Equal(t, showtimeID, st.ID)
	})

	t.Run("未登録のIDは NotFound のまま", func(t *testing.T) {
		_, err := provider.GetByID(ctx, "unknown")
		assert.ErrorIs(t, err, showtime.ErrShowtimeNotFound)
	})
}
