package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"bookcatalog/internal/logging"
	"bookcatalog/internal/platform/postgres"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	dsn string
	dir string
}

func main() {
	loadEnvFiles()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the catalog database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dsn, "dsn", databaseDSN(), "database connection string (env DB_DSN)")
	root.PersistentFlags().StringVar(&opts.dir, "dir", migrationsDir(), "migrations directory (env MIGRATIONS_DIR)")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd.Context(), opts, func(db *sql.DB) error {
					if err := goose.Up(db, opts.dir); err != nil {
						return fmt.Errorf("failed to run migrations: %w", err)
					}
					cmd.Println("Migrations applied successfully")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd.Context(), opts, func(db *sql.DB) error {
					if err := goose.Down(db, opts.dir); err != nil {
						return fmt.Errorf("failed to rollback migrations: %w", err)
					}
					cmd.Println("Migrations rolled back successfully")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the status of every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd.Context(), opts, func(db *sql.DB) error {
					return goose.Status(db, opts.dir)
				})
			},
		},
		&cobra.Command{
			Use:   "create NAME",
			Short: "Create a new numbered SQL migration",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				goose.SetSequential(true)
				if err := goose.Create(nil, opts.dir, args[0], "sql"); err != nil {
					return fmt.Errorf("failed to create migration: %w", err)
				}
				cmd.Printf("Migration created: %s\n", args[0])
				return nil
			},
		},
	)
	return root
}

func withDB(ctx context.Context, opts *options, fn func(db *sql.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := logging.New("info", "text")
	if err != nil {
		return err
	}
	defer logger.Sync()

	pool, err := postgres.Open(ctx, opts.dsn, 5*time.Second, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	logger.Info("running migrations", zap.String("dir", opts.dir))
	return fn(db)
}
