package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. All of them are
// fatal at startup.
var (
	// ErrInvalidKnackConfigs indicates missing record storage identifiers
	// (base URL, application id, API key, object key) or invalid retry and
	// timeout settings.
	ErrInvalidKnackConfigs = errors.New("invalid knack configuration")
	// ErrInvalidFieldMap indicates that a required logical field has no
	// backend field identifier.
	ErrInvalidFieldMap = errors.New("invalid field map")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRelayConfigs indicates non-positive relay timings.
	ErrInvalidRelayConfigs = errors.New("invalid relay configuration")
)
