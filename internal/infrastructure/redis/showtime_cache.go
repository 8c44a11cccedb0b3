package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/showtime"
)

var (
	ErrCacheMiss = errors.New("キャッシュが見つかりません")
)

// ShowtimeCache は上映回ジオメトリのキャッシュを管理する
// カタログはこのコアの外にあるため、参照結果をキャッシュして往復を減らす
type ShowtimeCache struct {
	client *redis.Client
	ttl    time.Duration
}

type geometryPayload struct {
	Rows        int `json:"rows"`
	SeatsPerRow int `json:"seats_per_row"`
}

// NewShowtimeCache は新しいShowtimeCacheインスタンスを作成する
func NewShowtimeCache(client *redis.Client, ttl time.Duration) *ShowtimeCache {
	return &ShowtimeCache{client: client, ttl: ttl}
}

// Get は上映回ジオメトリをキャッシュから取得する
func (c *ShowtimeCache) Get(ctx context.Context, showtimeID string) (*showtime.Showtime, error) {
	val, err := c.client.Get(ctx, c.key(showtimeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("キャッシュ取得に失敗: %w", err)
	}
	var payload geometryPayload
	if err := json.Unmarshal(val, &payload); err != nil {
		return nil, fmt.Errorf("キャッシュのデコードに失敗: %w", err)
	}
	return showtime.New(showtimeID, payload.Rows, payload.SeatsPerRow), nil
}

// Set は上映回ジオメトリをキャッシュに保存する
func (c *ShowtimeCache) Set(ctx context.Context, st *showtime.Showtime) error {
	data, err := json.Marshal(geometryPayload{Rows: st.Rows, SeatsPerRow: st.SeatsPerRow})
	if err != nil {
		return fmt.Errorf("キャッシュのエンコードに失敗: %w", err)
	}
	if err := c.client.Set(ctx, c.key(st.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("キャッシュ保存に失敗: %w", err)
	}
	return nil
}

// Invalidate は上映回のキャッシュを無効化する
func (c *ShowtimeCache) Invalidate(ctx context.Context, showtimeID string) error {
	if err := c.client.Del(ctx, c.key(showtimeID)).Err(); err != nil {
		return fmt.Errorf("キャッシュ無効化に失敗: %w", err)
	}
	return nil
}

func (c *ShowtimeCache) key(showtimeID string) string {
	return fmt.Sprintf("showtime:geometry:%s", showtimeID)
}
