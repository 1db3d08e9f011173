package models

import "time"

// CreateSessionRequest is the body of POST /api/sessions sent by the host
// page. The host session token travels in the Authorization header.
type CreateSessionRequest struct {
	// User is the signed-in user as reported by the host platform.
	User UserProfile `json:"user"`
}

// CreateSessionResponse tells the host page where the embedded application
// must open its channel.
type CreateSessionResponse struct {
	SessionID   string `json:"sessionId"`
	ChannelPath string `json:"channelPath"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Commit    string    `json:"commit,omitempty"`
	Sessions  int       `json:"sessions"`
	Timestamp time.Time `json:"timestamp"`
}
