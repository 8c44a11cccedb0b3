package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-seat-reservation/internal/api"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/api/handler"
	apimiddleware "github.com/sanosuguru/go-cinema-seat-reservation/internal/api/middleware"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/application"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/config"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/domain/showtime"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/infrastructure/catalog"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/infrastructure/memory"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/infrastructure/postgres"
	redisinfra "github.com/sanosuguru/go-cinema-seat-reservation/internal/infrastructure/redis"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/pkg/metrics"
	"github.com/sanosuguru/go-cinema-seat-reservation/internal/worker"
)

func main() {
	logger.Set(logger.NewLogger(os.Getenv("APP_ENV")))
	defer logger.Sync()

	cfg := config.Load()
	m := metrics.Init()

	// カタログ（外部コラボレーターのスタンドイン）
	cat := catalog.NewStaticCatalog()
	if err := catalog.SeedDemo(cat); err != nil {
		logger.Fatal("カタログの初期化に失敗", zap.Error(err))
	}

	var geometry showtime.GeometryProvider = cat
	if cfg.Redis.Enabled {
		redisClient := redisinfra.NewClient(&cfg.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisinfra.Ping(ctx, redisClient); err != nil {
			cancel()
			logger.Fatal("Redis接続に失敗", zap.Error(err))
		}
		cancel()
		defer redisClient.Close()

		cache := redisinfra.NewShowtimeCache(redisClient, 5*time.Minute)
		geometry = catalog.NewCachedProvider(cat, cache)
		logger.Info("上映回ジオメトリキャッシュ有効")
	}

	// 予約ストア（バックエンドは設定で切り替え）
	var store reservation.Store
	switch cfg.Store.Backend {
	case "postgres":
		db, err := postgres.NewConnection(&cfg.Database)
		if err != nil {
			logger.Fatal("データベース接続に失敗", zap.Error(err))
		}
		defer db.Close()
		if err := postgres.RunMigrations(db.DB, "migrations"); err != nil {
			logger.Fatal("マイグレーションに失敗", zap.Error(err))
		}
		store = postgres.NewReservationStore(db)
		logger.Info("予約ストア: postgres")
	case "memory":
		store = memory.NewReservationStore()
		logger.Info("予約ストア: memory")
	default:
		logger.Fatal("未知のストアバックエンド", zap.String("backend", cfg.Store.Backend))
	}

	reservationService := application.NewReservationService(store, geometry)
	showtimeService := application.NewShowtimeService(geometry, store)

	reservationHandler := handler.NewReservationHandler(reservationService)
	showtimeHandler := handler.NewShowtimeHandler(showtimeService)
	settingsHandler := handler.NewSettingsHandler(cfg.Booking)
	healthHandler := handler.NewHealthHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	apimiddleware.SetupMiddleware(e)
	e.Use(apimiddleware.PrometheusMiddleware(m))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), apimiddleware.MetricsBasicAuth())

	v1 := e.Group("/api/v1")
	v1.GET("/health", healthHandler.Check)
	v1.GET("/settings", settingsHandler.Get)
	v1.GET("/showtimes/:id", showtimeHandler.Get)
	v1.POST("/showtimes/:id/reservations", reservationHandler.Create)
	v1.POST("/reservations/:id/payments", reservationHandler.Pay)
	v1.GET("/me/reservations", reservationHandler.GetUserReservations)

	// 期限切れ予約スイーパー
	sweeperCtx, sweeperCancel := context.WithCancel(context.Background())
	sweeper := worker.NewExpiredReservationSweeper(
		reservationService,
		cfg.Booking.SweepInterval,
		cfg.Booking.PaymentWindow,
	)
	go sweeper.Start(sweeperCtx)

	// サーバー起動
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("シャットダウン開始")

	sweeperCancel()
	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("サーバーシャットダウンエラー", zap.Error(err))
	}

	logger.Info("シャットダウン完了")
}
