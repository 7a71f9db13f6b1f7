package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"bookcatalog/internal/apperr"
)

// DecodeJSON reads a single JSON object from the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return &StatusError{Status: http.StatusRequestEntityTooLarge, Message: "request body too large"}
		case errors.Is(err, io.EOF):
			return apperr.Validation("request body is required")
		default:
			return apperr.Validation("invalid JSON body")
		}
	}
	return nil
}

// PathID parses the named path value as a non-negative integer id.
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, apperr.Validation(fmt.Sprintf("%s must be a non-negative integer", name))
	}
	return id, nil
}
