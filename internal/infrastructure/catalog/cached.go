package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/showtime"
	redisinfra "github.com/sanosuguru/go-cinema-seat-reservation/internal/infrastructure/redis"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/pkg/logger"
)

// CachedProvider はジオメトリ参照をRedisでキャッシュするデコレーター
// キャッシュ障害は参照結果に影響させず、ログに残して素通しする
type CachedProvider struct {
	inner showtime.GeometryProvider
	cache *redisinfra.ShowtimeCache
}

// NewCachedProvider は新しいCachedProviderを作成する
func NewCachedProvider(inner showtime.GeometryProvider, cache *redisinfra.ShowtimeCache) *CachedProvider {
	return &CachedProvider{inner: inner, cache: cache}
}

// GetByID はキャッシュ経由で上映回ジオメトリを取得する
func (p *CachedProvider) GetByID(ctx context.Context, id string) (*showtime.Showtime, error) {
	if st, err := p.cache.Get(ctx, id); err == nil {
		return st, nil
	}

	st, err := p.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.cache.Set(ctx, st); err != nil {
		logger.Warn("上映回ジオメトリのキャッシュ保存に失敗",
			zap.String("showtime_id", id), zap.Error(err))
	}
	return st, nil
}

var _ showtime.GeometryProvider = (*CachedProvider)(nil)
