package catalog

import (
	"net/http"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/pagination"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	svc *Service
	log *zap.Logger
}

func NewHTTPHandler(svc *Service, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, log: log}
}

// ListAuthors handles GET /api/authors?page=N
func (h *HTTPHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePage(r.URL.Query().Get("page"))

	authors, err := h.svc.Authors(r.Context(), page)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, authors)
}

// ListGenres handles GET /api/genres?page=N
func (h *HTTPHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePage(r.URL.Query().Get("page"))

	genres, err := h.svc.Genres(r.Context(), page)
	if err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	httpx.JSON(w, http.StatusOK, genres)
}
