package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookcatalog/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestEmpty(t *testing.T) {
	w := httptest.NewRecorder()

	Empty(w, http.StatusOK)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Empty(t, w.Body.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
		logged int
	}{
		{
			name:   "validation",
			err:    apperr.Validation("title cannot be blank"),
			status: http.StatusBadRequest,
			body:   `{"error":{"message":"title cannot be blank","kind":"validation"}}`,
		},
		{
			name:   "not found",
			err:    fmt.Errorf("get book 9: %w", apperr.NotFound("book not found")),
			status: http.StatusNotFound,
			body:   `{"error":{"message":"book not found","kind":"not_found"}}`,
		},
		{
			name:   "store",
			err:    errors.New("connection refused"),
			status: http.StatusInternalServerError,
			body:   `{"error":{"message":"internal server error","kind":"store"}}`,
			logged: 1,
		},
		{
			name:   "status error",
			err:    &StatusError{Status: http.StatusTooManyRequests, Kind: "rate_limited", Message: "too many requests"},
			status: http.StatusTooManyRequests,
			body:   `{"error":{"message":"too many requests","kind":"rate_limited"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/books", nil)

			Error(w, r, zap.New(core), tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, ContentTypeJSON, w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, w.Body.String())
			assert.Equal(t, tt.logged, logs.Len())
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Title string `json:"title"`
	}

	r := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(`{"title":"Dune"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "Dune", v.Title)

	r = httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(`{"title":`))
	err := DecodeJSON(r, &v)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	r = httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(``))
	err = DecodeJSON(r, &v)
	assert.EqualError(t, err, "request body is required")
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	var v map[string]any
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(`{"title":"`+strings.Repeat("x", 64)+`"}`))
	r.Body = http.MaxBytesReader(w, r.Body, 16)

	err := DecodeJSON(r, &v)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusRequestEntityTooLarge, se.Status)
}

func TestPathID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/books/12", nil)
	r.SetPathValue("id", "12")
	id, err := PathID(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	r.SetPathValue("id", "twelve")
	_, err = PathID(r, "id")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.EqualError(t, err, "id must be a non-negative integer")
}
