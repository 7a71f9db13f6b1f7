package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	notFound := NotFound("book not found")

	tests := []struct {
		name string
		err  error
		kind Kind
		msg  string
	}{
		{"validation", Validation("title cannot be blank"), KindValidation, "title cannot be blank"},
		{"wrapped not found", fmt.Errorf("get book: %w", notFound), KindNotFound, "book not found"},
		{"store", Store("list books", errors.New("conn reset")), KindStore, "internal server error"},
		{"unclassified", errors.New("boom"), KindStore, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.msg, MessageOf(tt.err))
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(KindValidation))
	assert.Equal(t, http.StatusNotFound, Status(KindNotFound))
	assert.Equal(t, http.StatusInternalServerError, Status(KindStore))
}

func TestStore_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := Store("list books", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "list books: timeout", err.Error())
}
