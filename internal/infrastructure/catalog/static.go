package catalog

import (
	"context"
	"sync"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/showtime"
)

// StaticCatalog はインメモリの上映回カタログ
// 本来のカタログサービスは外部コラボレーターであり、
// これはそのジオメトリ参照部分の読み取り専用スタンドイン
type StaticCatalog struct {
	mu        sync.RWMutex
	showtimes map[string]*showtime.Showtime
}

// NewStaticCatalog は空のカタログを作成する
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{showtimes: make(map[string]*showtime.Showtime)}
}

// Register は上映回ジオメトリを登録する
func (c *StaticCatalog) Register(st *showtime.Showtime) error {
	if err := st.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showtimes[st.ID] = st
	return nil
}

// GetByID はIDから上映回ジオメトリを取得する
func (c *StaticCatalog) GetByID(ctx context.Context, id string) (*showtime.Showtime, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	st, ok := c.showtimes[id]
	if !ok {
		return nil, showtime.ErrShowtimeNotFound
	}
	copied := *st
	return &copied, nil
}

var _ showtime.GeometryProvider = (*StaticCatalog)(nil)
