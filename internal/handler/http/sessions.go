package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/utils"
	"github.com/MKhiriev/flashcard-bridge/models"
)

// createSession opens a relay session for the user of the host page.
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	token, _ := utils.GetHostTokenFromContext(r.Context())

	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", ErrInvalidJSON, err))
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidSessionRequest, err))
		return
	}

	session, err := h.sessions.Create(req.User, token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("session_id", session.ID()).Str("user_id", req.User.ID).Msg("session created")

	resp := models.CreateSessionResponse{
		SessionID:   session.ID(),
		ChannelPath: fmt.Sprintf("/api/sessions/%s/channel", session.ID()),
	}
	if _, err = utils.WriteJSON(w, resp, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write session response")
	}
}

// updateToken replaces the session token after the host platform refreshed
// the user's session.
func (h *Handler) updateToken(w http.ResponseWriter, r *http.Request) {
	token, _ := utils.GetHostTokenFromContext(r.Context())
	sessionFrom(r).SetToken(token)

	w.WriteHeader(http.StatusNoContent)
}

// deleteSession closes the session and its channel, if any.
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Close(sessionFrom(r).ID()); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Msg("session deleted")
	w.WriteHeader(http.StatusNoContent)
}
