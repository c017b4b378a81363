package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/twirth/lagerbestand/config"
	"github.com/twirth/lagerbestand/internal/activity"
	"github.com/twirth/lagerbestand/internal/article"
	"github.com/twirth/lagerbestand/internal/backup"
	"github.com/twirth/lagerbestand/internal/booking"
	"github.com/twirth/lagerbestand/internal/schema"
	"github.com/twirth/lagerbestand/internal/user"
	userhttp "github.com/twirth/lagerbestand/internal/user/delivery/http"
	"github.com/twirth/lagerbestand/pkg/auth"
	"github.com/twirth/lagerbestand/pkg/database"
	"github.com/twirth/lagerbestand/pkg/logger"
	"github.com/twirth/lagerbestand/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.Server.ServiceName, cfg.Server.Environment == "development")
	logger.SetLevel(cfg.Logger.Level)

	auth.Init(cfg.Auth.JWTSecret)

	ctx := context.Background()

	tp, err := tracing.InitTracer(cfg.Server.ServiceName)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Tracing disabled, failed to initialize tracer")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
				logger.Error(ctx).Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	store, err := database.Open(cfg.Store.Path)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("Failed to open store")
	}
	defer store.Close()

	if err := schema.Migrate(store); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate schema")
	}
	if err := schema.Seed(store); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed store")
	}

	articleHandler, err := article.InitializeHTTPHandler(store)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize article handler")
	}
	bookingHandler, err := booking.InitializeHTTPHandler(store)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize booking handler")
	}
	activityHandler, err := activity.InitializeHTTPHandler(store)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize activity handler")
	}
	userHandler, err := user.InitializeHTTPHandler(store)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}
	backupHandler := backup.NewHandler(store)

	router := mux.NewRouter()

	userHandler.RegisterRoutes(router)
	articleHandler.RegisterRoutes(router, userhttp.AuthMiddleware)
	bookingHandler.RegisterRoutes(router, userhttp.AuthMiddleware)
	activityHandler.RegisterRoutes(router, userhttp.AuthMiddleware)
	backupHandler.RegisterRoutes(router, userhttp.AdminMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		code := http.StatusOK
		if err := store.Ping(); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  status,
			"service": cfg.Server.ServiceName,
		})
	}).Methods(http.MethodGet)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	handler := logger.Middleware(
		otelhttp.NewHandler(corsHandler.Handler(router), "http.server"),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.HTTPPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info(ctx).Str("port", cfg.Server.HTTPPort).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx).Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx).Err(err).Msg("Server shutdown failed")
	}

	if err := store.Persist(); err != nil {
		logger.Error(ctx).Err(err).Msg("Final persist failed")
	}
}
