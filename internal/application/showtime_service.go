package application

import (
	"context"
	"fmt"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/seat"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/showtime"
)

// ShowtimeService は上映回の座席状況を提供する
type ShowtimeService struct {
	geometry showtime.GeometryProvider
	store    reservation.Store
}

func NewShowtimeService(geometry showtime.GeometryProvider, store reservation.Store) *ShowtimeService {
	return &ShowtimeService{geometry: geometry, store: store}
}

// ShowtimeSeating は上映回のジオメトリと予約済み座席の集合
type ShowtimeSeating struct {
	Showtime    *showtime.Showtime
	BookedSeats []seat.Seat
}

// GetSeating は上映回のジオメトリと、現在保持されている座席
// （支払い待ち・支払い済みの両方）をまとめて返す
func (s *ShowtimeService) GetSeating(ctx context.Context, showtimeID string) (*ShowtimeSeating, error) {
	st, err := s.geometry.GetByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	reservations, err := s.store.FindByShowtime(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("予約一覧の取得に失敗: %w", err)
	}

	booked := make([]seat.Seat, 0)
	for _, res := range reservations {
		booked = append(booked, res.Seats...)
	}

	return &ShowtimeSeating{Showtime: st, BookedSeats: booked}, nil
}
