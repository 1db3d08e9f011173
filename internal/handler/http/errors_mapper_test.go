package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/flashcard-bridge/internal/relay"
	"github.com/MKhiriev/flashcard-bridge/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{fmt.Errorf("%w: bad", ErrInvalidAuthorizationHeader), http.StatusUnauthorized},
		{ErrHostTokenExpired, http.StatusUnauthorized},
		{fmt.Errorf("%w: eof", ErrInvalidJSON), http.StatusBadRequest},
		{fmt.Errorf("%w: %w", ErrInvalidSessionRequest, validators.ErrInvalidEmail), http.StatusBadRequest},
		{relay.ErrInvalidProfile, http.StatusBadRequest},
		{relay.ErrSessionNotFound, http.StatusNotFound},
		{relay.ErrSessionClosed, http.StatusGone},
		{errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
