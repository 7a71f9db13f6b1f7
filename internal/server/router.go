// Package server assembles the route table and middleware chain. The same
// http.Handler serves the network listener and the integration tests.
package server

import (
	"net/http"

	"bookcatalog/internal/apperr"
	"bookcatalog/internal/book"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/fixture"
	"bookcatalog/internal/httpx"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Deps struct {
	Books   *book.HTTPHandler
	Catalog *catalog.HTTPHandler
	// Fixture mounts the reset route when set.
	Fixture *fixture.HTTPHandler

	Log            *zap.Logger
	Registry       *prometheus.Registry
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
	CORSOrigins    []string
}

// NewRouter returns the fully wrapped application handler.
func NewRouter(d Deps) http.Handler {
	metrics := httpx.NewMetrics(d.Registry)
	router := http.NewServeMux()

	router.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		httpx.Text(w, http.StatusOK, "pong")
	})
	router.Handle("GET /metrics", metrics.Handler())

	if d.Fixture != nil {
		router.HandleFunc("POST /api/test/reset-db", d.Fixture.ResetDB)
	}

	router.HandleFunc("GET /api/books", d.Books.List)
	router.HandleFunc("POST /api/books", d.Books.Create)
	router.HandleFunc("GET /api/books/search", d.Books.SearchByTitle)
	router.HandleFunc("GET /api/books/{id}", d.Books.Get)
	router.HandleFunc("POST /api/books/{id}", d.Books.Update)
	router.HandleFunc("POST /api/books/{id}/delete", d.Books.Delete)

	router.HandleFunc("GET /api/authors", d.Catalog.ListAuthors)
	router.HandleFunc("GET /api/authors/{id}/books", d.Books.ListByAuthor)
	router.HandleFunc("GET /api/genres", d.Catalog.ListGenres)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, r, d.Log, apperr.NotFound("route not found"))
	})

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(d.Log),
		httpx.RecoveryMiddleware(d.Log),
		metrics.Middleware,
		httpx.NewRateLimiter(d.RateLimitRPS, d.RateLimitBurst).Middleware,
		httpx.RequestSizeLimitMiddleware(d.MaxBodyBytes),
		httpx.CORSMiddleware(d.CORSOrigins),
		httpx.SecurityHeadersMiddleware,
	)
}
