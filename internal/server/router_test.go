package server

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"bookcatalog/internal/book"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/fixture"
	"bookcatalog/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingResetter struct {
	calls int
}

func (c *countingResetter) Reset(context.Context) error {
	c.calls++
	return nil
}

type routerFixture struct {
	client  *testutil.Client
	books   *book.MockRepository
	catalog *catalog.MockRepository
	reset   *countingResetter
}

func newRouterFixture(t *testing.T, withReset bool) routerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := routerFixture{
		books:   book.NewMockRepository(ctrl),
		catalog: catalog.NewMockRepository(ctrl),
		reset:   &countingResetter{},
	}

	log := zap.NewNop()
	deps := Deps{
		Books:          book.NewHTTPHandler(book.NewService(f.books, book.LookupByID), log),
		Catalog:        catalog.NewHTTPHandler(catalog.NewService(f.catalog), log),
		Log:            log,
		Registry:       prometheus.NewRegistry(),
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		MaxBodyBytes:   1 << 20,
	}
	if withReset {
		deps.Fixture = fixture.NewHTTPHandler(f.reset, log)
	}

	f.client = testutil.NewClient(t, NewRouter(deps))
	return f
}

func TestRouter_Ping(t *testing.T) {
	f := newRouterFixture(t, false)

	res := f.client.Get("/ping")

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "pong", string(res.Body))
	assert.NotEmpty(t, res.Header.Get("X-Request-Id"))
	assert.Equal(t, "nosniff", res.Header.Get("X-Content-Type-Options"))
}

func TestRouter_BookRoutes(t *testing.T) {
	f := newRouterFixture(t, false)

	f.books.EXPECT().List(gomock.Any(), book.Query{Page: 1}).Return([]book.Book{}, 0, nil)
	res := f.client.Get("/api/books")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "0", res.Header.Get("X-Total-Count"))

	f.books.EXPECT().SearchByTitle(gomock.Any(), "world").Return([]book.Book{}, nil)
	res = f.client.Get("/api/books/search?title=world")
	assert.Equal(t, http.StatusOK, res.Code)

	f.books.EXPECT().GetByID(gomock.Any(), int64(12)).Return(book.Book{ID: 12, Title: "Dune", Genres: []string{}}, nil)
	res = f.client.Get("/api/books/12")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "application/json; charset=utf-8", res.Header.Get("Content-Type"))

	f.books.EXPECT().Create(gomock.Any(), gomock.Any()).Return(book.Book{ID: 13, Title: "Dune"}, nil)
	res = f.client.Post("/api/books", map[string]any{"title": "Dune"})
	assert.Equal(t, http.StatusCreated, res.Code)

	f.books.EXPECT().Update(gomock.Any(), int64(12), gomock.Any()).Return(book.Book{ID: 12, Title: "Dune Messiah"}, nil)
	res = f.client.Post("/api/books/12", map[string]any{"title": "Dune Messiah"})
	assert.Equal(t, http.StatusOK, res.Code)

	f.books.EXPECT().Delete(gomock.Any(), int64(12)).Return(nil)
	res = f.client.Post("/api/books/12/delete", nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Empty(t, res.Body)

	f.books.EXPECT().SearchByAuthor(gomock.Any(), int64(3)).Return([]book.Book{}, nil)
	res = f.client.Get("/api/authors/3/books")
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestRouter_CatalogRoutes(t *testing.T) {
	f := newRouterFixture(t, false)

	f.catalog.EXPECT().ListAuthors(gomock.Any(), 2).Return([]catalog.Author{{ID: 11, Name: "Frank Herbert"}}, nil)
	res := f.client.Get("/api/authors?page=2")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, []catalog.Author{{ID: 11, Name: "Frank Herbert"}}, testutil.Decode[[]catalog.Author](t, res))

	f.catalog.EXPECT().ListGenres(gomock.Any(), 1).Return([]catalog.Genre{}, nil)
	res = f.client.Get("/api/genres")
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestRouter_ResetRoute(t *testing.T) {
	t.Run("mounted", func(t *testing.T) {
		f := newRouterFixture(t, true)

		for range 2 {
			res := f.client.Post("/api/test/reset-db", nil)
			assert.Equal(t, http.StatusOK, res.Code)
			assert.Empty(t, res.Body)
		}
		assert.Equal(t, 2, f.reset.calls)
	})

	t.Run("disabled", func(t *testing.T) {
		f := newRouterFixture(t, false)

		res := f.client.Post("/api/test/reset-db", nil)
		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.Equal(t, 0, f.reset.calls)
	})
}

func TestRouter_UniformErrors(t *testing.T) {
	f := newRouterFixture(t, false)

	res := f.client.Get("/api/books/abc")
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.JSONEq(t, `{"error":{"message":"id must be a non-negative integer","kind":"validation"}}`, string(res.Body))

	res = f.client.Get("/api/nothing-here")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.JSONEq(t, `{"error":{"message":"route not found","kind":"not_found"}}`, string(res.Body))

	res = f.client.Post("/api/books", map[string]any{"year": 2004})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.JSONEq(t, `{"error":{"message":"title cannot be blank","kind":"validation"}}`, string(res.Body))
}

func TestRouter_Metrics(t *testing.T) {
	f := newRouterFixture(t, false)
	f.client.Get("/ping")

	res := f.client.Get("/metrics")

	require.Equal(t, http.StatusOK, res.Code)
	assert.True(t, strings.Contains(string(res.Body), `bookcatalog_http_requests_total{method="GET",route="GET /ping",status="200"} 1`))
}
