package reservation

import (
	"context"
	"time"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/seat"
)

// Store は予約コレクションの唯一の書き込み境界
// 各操作は互いに線形化可能であり、同一上映回の座席を
// 複数のアクティブな予約が同時に保持することはない
type Store interface {
	// TryReserve は座席の競合確認と予約の挿入を単一の原子的操作として行う
	// いずれかの座席が既に保持されている場合は ErrSeatConflict を返し、
	// 状態を一切変更しない
	TryReserve(ctx context.Context, showtimeID, userID string, seats []seat.Seat) (*Reservation, error)

	// MarkPaid は支払い待ちの予約を支払い済みに遷移させる
	// 存在しない場合は ErrReservationNotFound、
	// 既に支払い済みの場合は ErrReservationAlreadyPaid を返す
	MarkPaid(ctx context.Context, id string) (*Reservation, error)

	// DeleteExpired は createdAt + ttl が now より前の支払い待ち予約を
	// 原子的に削除し、削除件数を返す。支払い済みの予約は削除しない
	DeleteExpired(ctx context.Context, now time.Time, ttl time.Duration) (int, error)

	// FindByShowtime は上映回の予約一覧を取得する（読み取り専用）
	FindByShowtime(ctx context.Context, showtimeID string) ([]*Reservation, error)

	// FindByUser はユーザーの予約一覧を取得する（読み取り専用）
	FindByUser(ctx context.Context, userID string) ([]*Reservation, error)
}
