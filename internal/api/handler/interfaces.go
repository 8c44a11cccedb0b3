package handler

import (
	"context"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/application"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/reservation"
)

// ReservationServiceInterface は予約サービスのインターフェース
type ReservationServiceInterface interface {
	Reserve(ctx context.Context, input application.ReserveInput) (*reservation.Reservation, error)
	Pay(ctx context.Context, id string) (*reservation.Reservation, error)
	GetUserReservations(ctx context.Context, userID string) ([]*reservation.Reservation, error)
}

// ShowtimeServiceInterface は上映回サービスのインターフェース
type ShowtimeServiceInterface interface {
	GetSeating(ctx context.Context, showtimeID string) (*application.ShowtimeSeating, error)
}
