package relay

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
	ErrInvalidProfile  = errors.New("user profile has no id")

	ErrNoSessionToken = errors.New("no session token available")
	ErrTokenExpired   = errors.New("session token expired")

	ErrNoRecord = errors.New("user record not found")

	// ErrSaveDropped is returned for a save requested while one save is in
	// flight and another is already queued. Its data is not written.
	ErrSaveDropped = errors.New("save dropped: another save is already queued")
)
