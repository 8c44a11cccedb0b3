package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/config"
)

func TestSettingsHandler_Get(t *testing.T) {
	e := NewTestEcho()

	handler := NewSettingsHandler(config.BookingConfig{
		PaymentWindow: 180 * time.Second,
		SweepInterval: time.Second,
	})

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SettingsResponse
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 180, resp.BookingPaymentTimeSeconds)
}
