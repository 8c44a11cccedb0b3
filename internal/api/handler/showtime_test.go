package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/application"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/seat"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/showtime"
)

// MockShowtimeService はShowtimeServiceInterfaceのモック
type MockShowtimeService struct {
	mock.Mock
}

func (m *MockShowtimeService) GetSeating(ctx context.Context, showtimeID string) (*application.ShowtimeSeating, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.ShowtimeSeating), args.Error(1)
}

func TestShowtimeHandler_Get(t *testing.T) {
	e := NewTestEcho()

	t.Run("正常に座席状況を取得できる", func(t *testing.T) {
		mockService := new(MockShowtimeService)
		mockService.On("GetSeating", mock.Anything, "showtime-1").Return(&application.ShowtimeSeating{
			Showtime:    showtime.New("showtime-1", 8, 10),
			BookedSeats: []seat.Seat{seat.New(1, 1), seat.New(2, 5)},
		}, nil)

		handler := NewShowtimeHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/showtimes/showtime-1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("showtime-1")

		err := handler.Get(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ShowtimeSeatingResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "showtime-1", resp.ID)
		assert.Equal(t, 8, resp.Rows)
		assert.Equal(t, 10, resp.SeatsPerRow)
		assert.Len(t, resp.BookedSeats, 2)

		mockService.AssertExpectations(t)
	})

	t.Run("予約がない場合 bookedSeats は空配列", func(t *testing.T) {
		mockService := new(MockShowtimeService)
		mockService.On("GetSeating", mock.Anything, "showtime-1").Return(&application.ShowtimeSeating{
			Showtime:    showtime.New("showtime-1", 8, 10),
			BookedSeats: []seat.Seat{},
		}, nil)

		handler := NewShowtimeHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/showtimes/showtime-1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("showtime-1")

		err := handler.Get(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"bookedSeats":[]`)
	})

	t.Run("上映回が見つからない場合404", func(t *testing.T) {
		mockService := new(MockShowtimeService)
		mockService.On("GetSeating", mock.Anything, "nonexistent").
			Return(nil, showtime.ErrShowtimeNotFound)

		handler := NewShowtimeHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/showtimes/nonexistent", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("nonexistent")

		err := handler.Get(c)

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}
