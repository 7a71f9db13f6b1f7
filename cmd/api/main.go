package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookcatalog/internal/config"
	"bookcatalog/internal/logging"
	"bookcatalog/internal/platform/postgres"
	"bookcatalog/internal/server"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Open(ctx, cfg.DatabaseDSN, 2*time.Second, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler := server.New(cfg, pool, logger)

	// Under the test harness the handler is driven directly.
	if cfg.IsTest() {
		logger.Info("test environment, not opening a listener")
		return nil
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server",
			zap.String("addr", httpServer.Addr),
			zap.String("env", cfg.Env),
			zap.String("book_lookup", cfg.BookLookup),
			zap.Bool("reset_enabled", cfg.EnableReset),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down server")
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
