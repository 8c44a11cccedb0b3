package e2e

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/api"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/api/handler"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/api/middleware"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/application"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/config"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/infrastructure/catalog"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/infrastructure/memory"
)

// TestServer はE2Eテスト用のサーバー
// インメモリストアと静的カタログを使うため外部サービスは不要
type TestServer struct {
	Echo               *echo.Echo
	ReservationService *application.ReservationService
	Booking            config.BookingConfig
}

// NewTestServer はテスト用サーバーを作成
func NewTestServer(t *testing.T, booking config.BookingConfig) *TestServer {
	t.Helper()

	cat := catalog.NewStaticCatalog()
	require.NoError(t, catalog.SeedDemo(cat))

	store := memory.NewReservationStore()

	reservationService := application.NewReservationService(store, cat)
	showtimeService := application.NewShowtimeService(cat, store)

	reservationHandler := handler.NewReservationHandler(reservationService)
	showtimeHandler := handler.NewShowtimeHandler(showtimeService)
	settingsHandler := handler.NewSettingsHandler(booking)
	healthHandler := handler.NewHealthHandler()

	e := echo.New()
	e.Validator = api.NewValidator()
	middleware.SetupMiddleware(e)

	v1 := e.Group("/api/v1")
	v1.GET("/health", healthHandler.Check)
	v1.GET("/settings", settingsHandler.Get)
	v1.GET("/showtimes/:id", showtimeHandler.Get)
	v1.POST("/showtimes/:id/reservations", reservationHandler.Create)
	v1.POST("/reservations/:id/payments", reservationHandler.Pay)
	v1.GET("/me/reservations", reservationHandler.GetUserReservations)

	return &TestServer{
		Echo:               e,
		ReservationService: reservationService,
		Booking:            booking,
	}
}

func defaultBooking() config.BookingConfig {
	return config.BookingConfig{
		PaymentWindow: 180 * time.Second,
		SweepInterval: time.Second,
	}
}

// Request はHTTPリクエストを実行
func (s *TestServer) Request(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

// decodeJSON はレスポンスボディをデコードする
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
