package server

import (
	"net/http"

	"bookcatalog/internal/book"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/config"
	"bookcatalog/internal/fixture"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// New wires the Postgres-backed services into the application handler.
func New(cfg *config.Config, pool *pgxpool.Pool, log *zap.Logger) http.Handler {
	names := catalog.Names{Dedupe: cfg.DedupeNames}

	bookRepo := book.NewPostgresRepo(pool, names, cfg.DBTimeout)
	bookService := book.NewService(bookRepo, book.Lookup(cfg.BookLookup))
	catalogService := catalog.NewService(catalog.NewPostgresRepo(pool, cfg.DBTimeout))

	var reset *fixture.HTTPHandler
	if cfg.EnableReset {
		reset = fixture.NewHTTPHandler(fixture.NewPostgresRepo(pool, cfg.DBTimeout), log)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewRouter(Deps{
		Books:          book.NewHTTPHandler(bookService, log),
		Catalog:        catalog.NewHTTPHandler(catalogService, log),
		Fixture:        reset,
		Log:            log,
		Registry:       reg,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		CORSOrigins:    cfg.CORSOrigins,
	})
}
