package book

import (
	"net/http"
	"strconv"

	"bookcatalog/internal/httpx"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	service *Service
	log     *zap.Logger
}

func NewHTTPHandler(service *Service, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// List handles GET /api/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	q := ParseQuery(r.URL.Query())

	books, total, err := h.service.List(r.Context(), q)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	httpx.JSON(w, http.StatusOK, books)
}

// Get handles GET /api/books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Create handles POST /api/books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	if err := httpx.Validate(in); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	b, err := h.service.Create(r.Context(), in)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}

// Update handles POST /api/books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	if err := httpx.Validate(in); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	b, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

// Delete handles POST /api/books/{id}/delete
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.Empty(w, http.StatusOK)
}

// SearchByTitle handles GET /api/books/search?title=
func (h *HTTPHandler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ByTitle(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// ListByAuthor handles GET /api/authors/{id}/books
func (h *HTTPHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}

	books, err := h.service.ByAuthor(r.Context(), id)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}
