package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ErlanBelekov/jobboard/config"
	"github.com/ErlanBelekov/jobboard/internal/email"
	"github.com/ErlanBelekov/jobboard/internal/health"
	"github.com/ErlanBelekov/jobboard/internal/infrastructure"
	ctxlog "github.com/ErlanBelekov/jobboard/internal/log"
	"github.com/ErlanBelekov/jobboard/internal/metrics"
	"github.com/ErlanBelekov/jobboard/internal/password"
	"github.com/ErlanBelekov/jobboard/internal/token"
	httptransport "github.com/ErlanBelekov/jobboard/internal/transport/http"
	"github.com/ErlanBelekov/jobboard/internal/transport/http/handler"
	"github.com/ErlanBelekov/jobboard/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTTTL <= 0 {
		logger.Warn("JWT_TTL is not set, issued tokens never expire")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	store, err := infrastructure.Open(ctx, cfg.DatabaseURL, cfg.UsesPostgres())
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer store.Close()
	logger.Info("store ready", "store", store.Name)

	// Auth
	authUsecase := usecase.NewAuthUsecase(
		store.Users,
		password.NewHasher(cfg.BcryptCost),
		token.NewManager([]byte(cfg.JWTSecret), cfg.JWTTTL),
		email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger),
		cfg.AppBaseURL,
		logger,
	)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	// Company profiles
	profileUsecase := usecase.NewProfileUsecase(store.Profiles)
	profileHandler := handler.NewProfileHandler(profileUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(store.Pinger, store.Name, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httptransport.NewRouter(logger, authHandler, profileHandler, authUsecase),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
