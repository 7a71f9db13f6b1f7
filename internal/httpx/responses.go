package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookcatalog/internal/apperr"

	"go.uber.org/zap"
)

const ContentTypeJSON = "application/json; charset=utf-8"

type ErrorResponse struct {
	Error ErrorResponseBody `json:"error"`
}

type ErrorResponseBody struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// StatusError is a transport-level failure that carries its own status,
// such as rate limiting or an oversized body.
type StatusError struct {
	Status  int
	Kind    string
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// JSON writes v as the response body.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Empty writes a JSON-typed response with no body.
func Empty(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
}

func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Error writes the uniform error body for err. Store failures are logged
// with the request id; their cause is never sent to the client.
func Error(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	if status := writeError(w, err); status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("request_id", RequestIDFrom(r)),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		kind := se.Kind
		if kind == "" {
			kind = string(apperr.KindValidation)
		}
		JSON(w, se.Status, ErrorResponse{Error: ErrorResponseBody{Message: se.Message, Kind: kind}})
		return se.Status
	}

	kind := apperr.KindOf(err)
	status := apperr.Status(kind)
	JSON(w, status, ErrorResponse{Error: ErrorResponseBody{Message: apperr.MessageOf(err), Kind: string(kind)}})
	return status
}
