// Package server boots the application: config, database, cache, storage,
// event listeners, the middleware stack, and the HTTP listener with
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/verandah/app/listeners"
	"github.com/shashiranjanraj/verandah/app/routes"
	"github.com/shashiranjanraj/verandah/config"
	"github.com/shashiranjanraj/verandah/pkg/cache"
	"github.com/shashiranjanraj/verandah/pkg/database"
	"github.com/shashiranjanraj/verandah/pkg/logger"
	"github.com/shashiranjanraj/verandah/pkg/metrics"
	"github.com/shashiranjanraj/verandah/pkg/middleware"
	"github.com/shashiranjanraj/verandah/pkg/reqid"
	"github.com/shashiranjanraj/verandah/pkg/router"
	"github.com/shashiranjanraj/verandah/pkg/storage"
)

const shutdownTimeout = 15 * time.Second

// Start boots everything and serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The database is the only hard dependency; cache and storage degrade.
	if err := database.Connect(); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	cache.Connect(context.Background())
	storage.Connect()

	listeners.RegisterKitchen()

	r := router.New()
	r.Use(
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		metrics.Middleware(router.Pattern),
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)
	routes.RegisterAPI(r, database.DB)

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	cache.Close()
	logger.Info("server stopped")
	return nil
}
