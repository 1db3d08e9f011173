package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/utils"
	"github.com/MKhiriev/flashcard-bridge/models"
)

// health is the liveness probe. It always answers 200.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	build := h.appInfo.GetBuildInfo(r.Context())
	resp := models.HealthResponse{
		Status:    "ok",
		Version:   build.BuildVersion(),
		Commit:    build.BuildCommit(),
		Sessions:  h.sessions.Len(),
		Timestamp: time.Now().UTC(),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write health response")
	}
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.appInfo.GetAppVersion(r.Context())

	if _, err := utils.WriteText(w, version, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write version")
	}
}
