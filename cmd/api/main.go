package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanielPopoola/payment-records/internal/application/services"
	"github.com/DanielPopoola/payment-records/internal/config"
	"github.com/DanielPopoola/payment-records/internal/infrastructure/persistence"
	"github.com/DanielPopoola/payment-records/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest/router"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting payment records service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()

	if err := persistence.Migrate(ctx, cfg.Database.DSN(), logger); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	db, err := persistence.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	paymentRepo := postgres.NewPaymentRepository(db)
	paymentService := services.NewPaymentService(paymentRepo, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)

	opts := router.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		Readiness:      db.Ready,
	}
	if cfg.Primary.IsDevelopment() {
		doc, err := rest.LoadOpenAPI(ctx)
		if err != nil {
			logger.Error("failed to load API document", "error", err)
			os.Exit(1)
		}
		if opts.OpenAPI, err = rest.OpenAPIHandler(doc); err != nil {
			logger.Error("failed to encode API document", "error", err)
			os.Exit(1)
		}
		logger.Info("API document available", "path", "/openapi.json")
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router.New(paymentHandler, opts, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down server...", "signal", sig.String())
	case err := <-serverErr:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
