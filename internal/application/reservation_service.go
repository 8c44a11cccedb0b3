package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/seat"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/showtime"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/pkg/metrics"
)

// ReservationService は予約の検証とオーケストレーションを担う
// 競合判定そのものはストアに委譲し、ここではリトライを行わない
type ReservationService struct {
	store    reservation.Store
	geometry showtime.GeometryProvider
}

func NewReservationService(store reservation.Store, geometry showtime.GeometryProvider) *ReservationService {
	return &ReservationService{store: store, geometry: geometry}
}

type ReserveInput struct {
	ShowtimeID string
	UserID     string
	Seats      []seat.Seat
}

// Reserve は座席リクエストを検証し、ストアに原子的な予約挿入を依頼する
func (s *ReservationService) Reserve(ctx context.Context, input ReserveInput) (*reservation.Reservation, error) {
	st, err := s.geometry.GetByID(ctx, input.ShowtimeID)
	if err != nil {
		if errors.Is(err, showtime.ErrShowtimeNotFound) {
			countReservation("not_found")
			return nil, err
		}
		countReservation("error")
		return nil, fmt.Errorf("上映回の取得に失敗: %w", err)
	}

	if err := seat.ValidateSet(input.Seats); err != nil {
		countReservation("invalid")
		return nil, err
	}
	for _, requested := range input.Seats {
		if !st.Contains(requested) {
			countReservation("invalid")
			return nil, showtime.ErrSeatOutOfBounds
		}
	}

	res, err := s.store.TryReserve(ctx, input.ShowtimeID, input.UserID, input.Seats)
	if err != nil {
		if errors.Is(err, reservation.ErrSeatConflict) {
			countReservation("conflict")
		} else {
			countReservation("error")
		}
		return nil, err
	}
	countReservation("success")
	return res, nil
}

// Pay は予約を支払い済みに遷移させる
func (s *ReservationService) Pay(ctx context.Context, id string) (*reservation.Reservation, error) {
	return s.store.MarkPaid(ctx, id)
}

// GetUserReservations はユーザーの予約一覧を取得する
func (s *ReservationService) GetUserReservations(ctx context.Context, userID string) ([]*reservation.Reservation, error) {
	if userID == "" {
		return nil, reservation.ErrUserIDRequired
	}
	return s.store.FindByUser(ctx, userID)
}

// GetShowtimeReservations は上映回の予約一覧を取得する
func (s *ReservationService) GetShowtimeReservations(ctx context.Context, showtimeID string) ([]*reservation.Reservation, error) {
	return s.store.FindByShowtime(ctx, showtimeID)
}

// DeleteExpiredReservations は期限切れの支払い待ち予約を削除する
// スイーパーから周期的に呼ばれる
func (s *ReservationService) DeleteExpiredReservations(ctx context.Context, ttl time.Duration) (int, error) {
	count, err := s.store.DeleteExpired(ctx, time.Now(), ttl)
	if m := metrics.Get(); m != nil && count > 0 {
		m.ExpiredReservationsSweptTotal.Add(float64(count))
	}
	return count, err
}

func countReservation(status string) {
	if m := metrics.Get(); m != nil {
		m.ReservationsTotal.WithLabelValues(status).Inc()
	}
}
