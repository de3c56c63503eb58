package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/applytrack-backend/internal/adapter/postgres"
	applicationrepo "github.com/heartmarshall/applytrack-backend/internal/adapter/postgres/application"
	tokenrepo "github.com/heartmarshall/applytrack-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/applytrack-backend/internal/adapter/postgres/user"
	authjwt "github.com/heartmarshall/applytrack-backend/internal/auth"
	"github.com/heartmarshall/applytrack-backend/internal/config"
	analyticssvc "github.com/heartmarshall/applytrack-backend/internal/service/analytics"
	applicationsvc "github.com/heartmarshall/applytrack-backend/internal/service/application"
	authsvc "github.com/heartmarshall/applytrack-backend/internal/service/auth"
	"github.com/heartmarshall/applytrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/applytrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database pool, wires repositories, services, and HTTP
// handlers, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	apps := applicationrepo.New(pool)

	txManager := postgres.NewTxManager(pool)
	jwtManager := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	applicationService := applicationsvc.NewService(logger, apps, cfg.Tracker)
	analyticsService := analyticssvc.NewService(logger, apps, cfg.Tracker)

	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	authHandler := rest.NewAuthHandler(authService, logger)
	applicationHandler := rest.NewApplicationHandler(applicationService, logger)
	analyticsHandler := rest.NewAnalyticsHandler(analyticsService, logger)

	mux := newRouter(healthHandler, authHandler, applicationHandler, analyticsHandler)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")

	return nil
}
