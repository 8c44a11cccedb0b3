package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/pkg/metrics"
)

// ReservationSweeper は期限切れ予約を削除するインターフェース
type ReservationSweeper interface {
	DeleteExpiredReservations(ctx context.Context, ttl time.Duration) (int, error)
}

// ExpiredReservationSweeper は支払い期限切れの予約を掃除するワーカー
// 1サイクルの失敗はログに残して継続し、ループ自体は停止しない
// 支払い待ちの予約は最長で ttl + interval の間保持されることがある
type ExpiredReservationSweeper struct {
	reservations ReservationSweeper
	interval     time.Duration
	ttl          time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
}

// NewExpiredReservationSweeper は新しいスイーパーを作成する
func NewExpiredReservationSweeper(
	rs ReservationSweeper,
	interval time.Duration,
	ttl time.Duration,
) *ExpiredReservationSweeper {
	return &ExpiredReservationSweeper{
		reservations: rs,
		interval:     interval,
		ttl:          ttl,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Start はスイーパーを開始する
// コンテキストのキャンセルか Stop の呼び出しまでループし続ける
func (s *ExpiredReservationSweeper) Start(ctx context.Context) {
	logger.Info("期限切れ予約スイーパー開始",
		zap.Duration("interval", s.interval),
		zap.Duration("payment_window", s.ttl),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer close(s.doneCh)

	for {
		select {
		case <-ctx.Done():
			logger.Info("期限切れ予約スイーパー停止（コンテキストキャンセル）")
			return
		case <-s.stopCh:
			logger.Info("期限切れ予約スイーパー停止（シグナル受信）")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// Stop はスイーパーを停止し、ループの終了を待つ
func (s *ExpiredReservationSweeper) Stop() {
	close(s.stopCh)
	<-s.doneCh
}

// sweep は1サイクル分の期限切れ予約を削除する
func (s *ExpiredReservationSweeper) sweep(ctx context.Context) {
	log := logger.Get()
	log.Debug("期限切れ予約の掃除開始")

	count, err := s.reservations.DeleteExpiredReservations(ctx, s.ttl)
	if err != nil {
		countSweep("error")
		log.Error("期限切れ予約の掃除失敗", zap.Error(err))
		return
	}
	countSweep("success")

	if count > 0 {
		log.Info("期限切れ予約を削除", zap.Int("count", count))
	} else {
		log.Debug("期限切れ予約なし")
	}
}

func countSweep(status string) {
	if m := metrics.Get(); m != nil {
		m.SweepCyclesTotal.WithLabelValues(status).Inc()
	}
}
