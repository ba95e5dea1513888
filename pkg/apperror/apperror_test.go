package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Store("Error fetching data", cause)

	assert.Equal(t, "Error fetching data: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "connection refused", err.Cause())
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestAppError_Constructors(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{Validation("Search query is required"), http.StatusBadRequest},
		{InvalidInput("Invalid request body", errors.New("eof")), http.StatusBadRequest},
		{NotFound("Electric car not found"), http.StatusNotFound},
		{Conflict("Car is already in favorites"), http.StatusConflict},
		{Unauthorized("Invalid token", nil), http.StatusUnauthorized},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Message, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode)
		})
	}
	assert.Empty(t, NotFound("x").Cause())
}

func TestFrom(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("Favorite not found"))

	assert.Equal(t, http.StatusNotFound, From(wrapped).StatusCode)
	assert.Equal(t, "Favorite not found", From(wrapped).Message)

	plain := From(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, plain.StatusCode)
	assert.Equal(t, "boom", plain.Cause())
}
