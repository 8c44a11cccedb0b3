package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/application"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/showtime"
)

type ShowtimeHandler struct {
	service ShowtimeServiceInterface
}

func NewShowtimeHandler(s ShowtimeServiceInterface) *ShowtimeHandler {
	return &ShowtimeHandler{service: s}
}

type ShowtimeSeatingResponse struct {
	ID          string         `json:"id" example:"showtime-1-1"`
	Rows        int            `json:"rows" example:"8"`
	SeatsPerRow int            `json:"seatsPerRow" example:"10"`
	BookedSeats []SeatResponse `json:"bookedSeats"`
}

func toShowtimeSeatingResponse(s *application.ShowtimeSeating) ShowtimeSeatingResponse {
	booked := make([]SeatResponse, len(s.BookedSeats))
	for i, st := range s.BookedSeats {
		booked[i] = SeatResponse{Row: st.Row, Number: st.Number}
	}
	return ShowtimeSeatingResponse{
		ID:          s.Showtime.ID,
		Rows:        s.Showtime.Rows,
		SeatsPerRow: s.Showtime.SeatsPerRow,
		BookedSeats: booked,
	}
}

// Get godoc
// @Summary 上映回の座席状況を取得
// @Description 上映回のジオメトリと予約済み座席の一覧を返します
// @Tags showtimes
// @Produce json
// @Param id path string true "上映回ID"
// @Success 200 {object} ShowtimeSeatingResponse
// @Failure 404 {object} map[string]string
// @Router /showtimes/{id} [get]
func (h *ShowtimeHandler) Get(c echo.Context) error {
	seating, err := h.service.GetSeating(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, showtime.ErrShowtimeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toShowtimeSeatingResponse(seating))
}
