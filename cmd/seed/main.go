package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookcatalog/internal/book"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/config"
	"bookcatalog/internal/fixture"
	"bookcatalog/internal/logging"
	"bookcatalog/internal/platform/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Load the fixture books into the catalog database",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, reset)
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "truncate every catalog table before loading")
	return cmd
}

func run(ctx context.Context, reset bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	pool, err := postgres.Open(ctx, cfg.DatabaseDSN, 5*time.Second, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if reset {
		if err := fixture.NewPostgresRepo(pool, cfg.DBTimeout).Reset(ctx); err != nil {
			return err
		}
		logger.Info("catalog reset")
	}

	repo := book.NewPostgresRepo(pool, catalog.Names{Dedupe: cfg.DedupeNames}, cfg.DBTimeout)
	loaded, err := fixture.Load(ctx, book.NewService(repo, book.Lookup(cfg.BookLookup)), fixture.Books)
	if err != nil {
		return err
	}

	logger.Info("fixture loaded", zap.Int("books", len(loaded)))
	return nil
}
