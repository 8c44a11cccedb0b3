package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/config"
)

// SettingsHandler は公開設定を返すハンドラー
type SettingsHandler struct {
	booking config.BookingConfig
}

func NewSettingsHandler(booking config.BookingConfig) *SettingsHandler {
	return &SettingsHandler{booking: booking}
}

// SettingsResponse はクライアントに公開する設定値
type SettingsResponse struct {
	// BookingPaymentTimeSeconds は予約が支払われるまでの猶予時間（秒）
	BookingPaymentTimeSeconds int `json:"bookingPaymentTimeSeconds" example:"180"`
}

// Get godoc
// @Summary アプリケーション設定を取得
// @Description 支払い猶予時間などクライアントに必要な設定値を返します
// @Tags settings
// @Produce json
// @Success 200 {object} SettingsResponse
// @Router /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, SettingsResponse{
		BookingPaymentTimeSeconds: int(h.booking.PaymentWindow.Seconds()),
	})
}
