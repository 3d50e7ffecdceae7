package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ProjectUploadService/internal/config"
	"ProjectUploadService/internal/handler"
	"ProjectUploadService/internal/logger"
	"ProjectUploadService/internal/router"
	"ProjectUploadService/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const startupPingTimeout = 5 * time.Second

// @title           Project Upload API
// @version         1.0
// @description     upload 테이블 CRUD 서비스
// @BasePath        /
func main() {
	// .env 가 없으면 환경변수만 사용
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	lg := logger.New(cfg.Log, cfg.Env)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := storage.OpenDB(cfg.Database)
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	uploads := storage.NewUploadStorage(db, cfg.Database.Driver, lg)

	// 기동 시 한 번만 연결 확인, 실패해도 서버는 계속 기동
	pingCtx, cancelPing := context.WithTimeout(context.Background(), startupPingTimeout)
	storage.CheckConnection(pingCtx, uploads, lg)
	cancelPing()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.New(cfg.Server, handler.NewUploadHandler(uploads), handler.NewHealthHandler(uploads), lg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		lg.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	lg.Info().Msg("shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		lg.Error().Err(err).Msg("server forced to shutdown")
	}
}
