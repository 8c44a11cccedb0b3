package reservation

import (
	"time"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/seat"
)

// Status は予約の状態を表す
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Reservation は1ユーザーによる1上映回の座席の確保を表す
// 作成後に変更できるのは Status のみで、遷移は pending → paid の一方向
type Reservation struct {
	ID         string
	ShowtimeID string
	UserID     string
	Seats      []seat.Seat
	Status     Status
	CreatedAt  time.Time
}

// New は新しい予約を作成する（IDはストアが採番する）
func New(showtimeID, userID string, seats []seat.Seat, now time.Time) *Reservation {
	copied := make([]seat.Seat, len(seats))
	copy(copied, seats)
	return &Reservation{
		ShowtimeID: showtimeID,
		UserID:     userID,
		Seats:      copied,
		Status:     StatusPending,
		CreatedAt:  now,
	}
}

// Validate は予約の検証を行う
func (r *Reservation) Validate() error {
	if r.ShowtimeID == "" {
		return ErrShowtimeIDRequired
	}
	if r.UserID == "" {
		return ErrUserIDRequired
	}
	if len(r.Seats) == 0 {
		return ErrSeatsRequired
	}
	return nil
}

// IsPending は予約が支払い待ちかを返す
func (r *Reservation) IsPending() bool {
	return r.Status == StatusPending
}

// IsPaid は予約が支払い済みかを返す
func (r *Reservation) IsPaid() bool {
	return r.Status == StatusPaid
}

// MarkPaid は予約を支払い済みに遷移させる
func (r *Reservation) MarkPaid() error {
	if r.Status == StatusPaid {
		return ErrReservationAlreadyPaid
	}
	r.Status = StatusPaid
	return nil
}

// IsExpiredAt は now 時点で支払い期限切れかを返す
// 支払い済みの予約は期限切れにならない
func (r *Reservation) IsExpiredAt(now time.Time, ttl time.Duration) bool {
	return r.Status == StatusPending && r.CreatedAt.Add(ttl).Before(now)
}

// HoldsSeat は予約が指定座席を保持しているかを返す
func (r *Reservation) HoldsSeat(s seat.Seat) bool {
	for _, held := range r.Seats {
		if held.Equal(s) {
			return true
		}
	}
	return false
}

// Clone は予約の複製を返す
// ストアが内部状態を外に漏らさないために使用する
func (r *Reservation) Clone() *Reservation {
	seats := make([]seat.Seat, len(r.Seats))
	copy(seats, r.Seats)
	return &Reservation{
		ID:         r.ID,
		ShowtimeID: r.ShowtimeID,
		UserID:     r.UserID,
		Seats:      seats,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
}
