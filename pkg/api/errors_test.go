package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ohsono/sentiwatch/pkg/store"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation error", store.NewValidationError("text", "is required"), http.StatusBadRequest},
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"already exists", store.ErrAlreadyExists, http.StatusConflict},
		{"invalid input", store.ErrInvalidInput, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}
