package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/relay"
	"github.com/MKhiriev/flashcard-bridge/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrHostTokenExpired:           http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidSessionRequest:      http.StatusBadRequest,

	relay.ErrInvalidProfile:  http.StatusBadRequest,
	relay.ErrSessionNotFound: http.StatusNotFound,
	relay.ErrSessionClosed:   http.StatusGone,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError logs err and answers with the mapped status. Unmapped errors are
// reported without their message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		msg = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, ErrorResponse{Error: msg}, status); wErr != nil {
		log.Err(wErr).Msg("failed to write error response")
	}
}
