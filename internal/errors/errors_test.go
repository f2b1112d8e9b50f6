package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", Validation("name is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("get test: %w", ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", ErrUserAlreadyExists, http.StatusConflict, "USER_ALREADY_EXISTS"},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"missing token", ErrTokenMissing, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"invalid token", ErrTokenInvalid, http.StatusForbidden, "INVALID_TOKEN"},
		{"plain error", errors.New("pq: connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_DoesNotLeakInternalMessage(t *testing.T) {
	httpErr := MapErrorToHTTP(fmt.Errorf("query users: %w", errors.New("relation \"users\" does not exist")))
	assert.Equal(t, "internal server error", httpErr.ToErrorResponse().Error)
}
