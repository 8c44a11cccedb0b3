package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/application"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/seat"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/showtime"
)

type ReservationHandler struct {
	service ReservationServiceInterface
}

func NewReservationHandler(s ReservationServiceInterface) *ReservationHandler {
	return &ReservationHandler{service: s}
}

type SeatRequest struct {
	Row    int `json:"rowNumber" validate:"required,min=1" example:"1"`
	Number int `json:"seatNumber" validate:"required,min=1" example:"5"`
}

type CreateReservationRequest struct {
	Seats []SeatRequest `json:"seats" validate:"required,min=1,dive"`
}

type SeatResponse struct {
	Row    int `json:"rowNumber" example:"1"`
	Number int `json:"seatNumber" example:"5"`
}

type ReservationResponse struct {
	ID         string         `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ShowtimeID string         `json:"showtime_id" example:"showtime-1-1"`
	UserID     string         `json:"user_id" example:"user-123"`
	Seats      []SeatResponse `json:"seats"`
	Status     string         `json:"status" example:"pending"`
	CreatedAt  time.Time      `json:"created_at"`
}

func toReservationResponse(r *reservation.Reservation) ReservationResponse {
	seats := make([]SeatResponse, len(r.Seats))
	for i, s := range r.Seats {
		seats[i] = SeatResponse{Row: s.Row, Number: s.Number}
	}
	return ReservationResponse{
		ID:         r.ID,
		ShowtimeID: r.ShowtimeID,
		UserID:     r.UserID,
		Seats:      seats,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}

// Create godoc
// @Summary 座席を予約
// @Description 上映回の座席を仮押さえします（支払い猶予時間内に支払いが必要）
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-User-ID header string true "ユーザーID"
// @Param id path string true "上映回ID"
// @Param request body CreateReservationRequest true "予約する座席"
// @Success 201 {object} ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string "上映回が存在しない"
// @Failure 409 {object} map[string]string "座席が既に予約済み"
// @Router /showtimes/{id}/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	userID := c.Request().Header.Get("X-User-ID")
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "ユーザーIDが必要です")
	}
	var req CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	seats := make([]seat.Seat, len(req.Seats))
	for i, s := range req.Seats {
		seats[i] = seat.New(s.Row, s.Number)
	}

	r, err := h.service.Reserve(c.Request().Context(), application.ReserveInput{
		ShowtimeID: c.Param("id"),
		UserID:     userID,
		Seats:      seats,
	})
	if err != nil {
		switch {
		case errors.Is(err, showtime.ErrShowtimeNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, reservation.ErrSeatConflict):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case isInvalidSeatRequest(err):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, toReservationResponse(r))
}

// Pay godoc
// @Summary 予約を支払い済みにする
// @Description 支払い待ちの予約を支払い済みに遷移させます
// @Tags reservations
// @Produce json
// @Param id path string true "予約ID"
// @Success 200 {object} ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "既に支払い済み"
// @Router /reservations/{id}/payments [post]
func (h *ReservationHandler) Pay(c echo.Context) error {
	r, err := h.service.Pay(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrReservationNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, reservation.ErrReservationAlreadyPaid):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, toReservationResponse(r))
}

// GetUserReservations godoc
// @Summary ユーザーの予約一覧を取得
// @Description ログインユーザーの予約一覧を取得します
// @Tags reservations
// @Produce json
// @Param X-User-ID header string true "ユーザーID"
// @Success 200 {array} ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /me/reservations [get]
func (h *ReservationHandler) GetUserReservations(c echo.Context) error {
	userID := c.Request().Header.Get("X-User-ID")
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "ユーザーIDが必要です")
	}
	reservations, err := h.service.GetUserReservations(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		resp[i] = toReservationResponse(r)
	}
	return c.JSON(http.StatusOK, resp)
}

// isInvalidSeatRequest は呼び出し側の誤りによる検証エラーかを返す
func isInvalidSeatRequest(err error) bool {
	return errors.Is(err, seat.ErrSeatsRequired) ||
		errors.Is(err, seat.ErrDuplicateSeat) ||
		errors.Is(err, seat.ErrInvalidRow) ||
		errors.Is(err, seat.ErrInvalidNumber) ||
		errors.Is(err, showtime.ErrSeatOutOfBounds)
}
