package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/phrazzld/taskmgr-api/internal/domain"
	"github.com/phrazzld/taskmgr-api/internal/service/auth"
	"github.com/phrazzld/taskmgr-api/internal/service/authz"
	"github.com/phrazzld/taskmgr-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"unauthenticated", auth.ErrUnauthenticated, http.StatusUnauthorized},
		{"ownership denial maps to not found", authz.ErrNotOwner, http.StatusNotFound},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"duplicate username", store.ErrUsernameExists, http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}
