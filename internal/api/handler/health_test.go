package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/seat"
)

func TestHealthHandler_Check(t *testing.T) {
	e := NewTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHealthHandler()

	err := h.Check(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"timestamp"`)
}

func TestToReservationResponse(t *testing.T) {
	now := time.Now()
	r := &reservation.Reservation{
		ID:         "res-123",
		ShowtimeID: "showtime-456",
		UserID:     "user-789",
		Seats:      []seat.Seat{seat.New(1, 1), seat.New(1, 2)},
		Status:     reservation.StatusPending,
		CreatedAt:  now,
	}

	resp := toReservationResponse(r)

	assert.Equal(t, r.ID, resp.ID)
	assert.Equal(t, r.ShowtimeID, resp.ShowtimeID)
	assert.Equal(t, r.UserID, resp.UserID)
	assert.Equal(t, []SeatResponse{{Row: 1, Number: 1}, {Row: 1, Number: 2}}, resp.Seats)
	assert.Equal(t, string(r.Status), resp.Status)
	assert.Equal(t, r.CreatedAt, resp.CreatedAt)
}
