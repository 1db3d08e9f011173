package service

import (
	"context"
	"time"

	"github.com/MKhiriev/flashcard-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordClient loads, creates and updates the single record that stores a
// user's flashcard data. Implementations are bound to one session.
type RecordClient interface {
	// Load finds the record of userID. It returns nil and no error when the
	// user has no record yet; the caller is then expected to Create one.
	Load(ctx context.Context, userID string) (*models.UserRecord, error)

	// LoadByID reads the record identified by recordID.
	LoadByID(ctx context.Context, recordID string) (*models.UserRecord, error)

	// Create makes an empty record for userID filled with the profile
	// attributes and returns its id.
	Create(ctx context.Context, userID string, profile models.UserProfile) (string, error)

	// Update applies patch to the record. Fields left nil in the patch are
	// not sent and stay untouched.
	Update(ctx context.Context, recordID string, patch models.RecordPatch) error
}

// AppInfoService exposes build metadata of the running relay.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// SessionSweeper drops sessions that have been idle for too long.
type SessionSweeper interface {
	// Sweep closes every session idle since before now minus the TTL and
	// returns how many were closed.
	Sweep(now time.Time) int
}

// SessionJanitorJob periodically sweeps idle sessions.
type SessionJanitorJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
