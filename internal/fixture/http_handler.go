package fixture

import (
	"net/http"

	"bookcatalog/internal/httpx"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	repo Resetter
	log  *zap.Logger
}

func NewHTTPHandler(repo Resetter, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{repo: repo, log: log}
}

// ResetDB handles POST /api/test/reset-db
func (h *HTTPHandler) ResetDB(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Reset(r.Context()); err != nil {
		httpx.Error(w, r, h.log, err)
		return
	}
	h.log.Info("catalog reset", zap.String("request_id", httpx.RequestIDFrom(r)))
	httpx.Empty(w, http.StatusOK)
}
