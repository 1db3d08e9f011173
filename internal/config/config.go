// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the relay.
// It is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Knack holds the connection settings of the host platform's record
	// storage REST API.
	Knack Knack `envPrefix:"KNACK_"`

	// Fields is the mapping from logical record fields to backend field
	// identifiers. It differs between host applications and must always be
	// supplied by the deployment.
	Fields Fields `envPrefix:"FIELD_"`

	// Server holds the inbound HTTP settings.
	Server Server `envPrefix:"SERVER_"`

	// Relay holds the timing settings of sessions and saves.
	Relay Relay `envPrefix:"RELAY_"`

	// LogLevel is the minimum zerolog level name ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Knack holds the record storage API settings.
type Knack struct {
	// BaseURL is the API root (e.g. "https://api.knack.com").
	// Env: KNACK_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AppID is the host application identifier sent with every request.
	// Env: KNACK_APP_ID
	AppID string `env:"APP_ID"`

	// APIKey is the REST API key header value. For user-token authenticated
	// calls the host platform expects the literal "knack".
	// Env: KNACK_API_KEY
	APIKey string `env:"API_KEY"`

	// ObjectKey is the key of the object holding user records (e.g. "object_102").
	// Env: KNACK_OBJECT_KEY
	ObjectKey string `env:"OBJECT_KEY"`

	// RequestTimeout bounds a single HTTP attempt.
	// Env: KNACK_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of retries after the first attempt.
	// Env: KNACK_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// RetryBaseDelay is the first backoff delay; it doubles on every retry.
	// Env: KNACK_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
}

// Fields maps logical record fields to backend field identifiers
// (e.g. Cards -> "field_2979"). Optional fields may be left empty, in which
// case they are neither read nor written.
type Fields struct {
	UserID            string `env:"USER_ID" json:"user_id"`
	UserEmail         string `env:"USER_EMAIL" json:"user_email"`
	UserName          string `env:"USER_NAME" json:"user_name"`
	UserRole          string `env:"USER_ROLE" json:"user_role"`
	AccountConnection string `env:"ACCOUNT_CONNECTION" json:"account_connection"`
	School            string `env:"SCHOOL" json:"school"`
	Tutor             string `env:"TUTOR" json:"tutor"`
	Cards             string `env:"CARDS" json:"cards"`
	ColorMapping      string `env:"COLOR_MAPPING" json:"color_mapping"`
	TopicLists        string `env:"TOPIC_LISTS" json:"topic_lists"`
	TopicMetadata     string `env:"TOPIC_METADATA" json:"topic_metadata"`
	Box1              string `env:"BOX1" json:"box1"`
	Box2              string `env:"BOX2" json:"box2"`
	Box3              string `env:"BOX3" json:"box3"`
	Box4              string `env:"BOX4" json:"box4"`
	Box5              string `env:"BOX5" json:"box5"`
	LastSaved         string `env:"LAST_SAVED" json:"last_saved"`
}

// Boxes returns the backend identifiers of box1..box5 in order.
func (f Fields) Boxes() [5]string {
	return [5]string{f.Box1, f.Box2, f.Box3, f.Box4, f.Box5}
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// AllowedOrigins lists the host page origins allowed to open sessions
	// (CORS). Env: SERVER_ALLOWED_ORIGINS, comma separated.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// AppOrigins lists the embedded application origins allowed to open a
	// channel. Env: SERVER_APP_ORIGINS, comma separated.
	AppOrigins []string `env:"APP_ORIGINS" envSeparator:","`
}

// Relay holds session and save timing settings.
type Relay struct {
	// SaveSettleDelay is the pause before a queued save is replayed.
	// Env: RELAY_SAVE_SETTLE_DELAY
	SaveSettleDelay time.Duration `env:"SAVE_SETTLE_DELAY"`

	// AddToBankSettleDelay is the pause between an add-to-bank result and
	// the data refresh that follows it.
	// Env: RELAY_ADD_TO_BANK_SETTLE_DELAY
	AddToBankSettleDelay time.Duration `env:"ADD_TO_BANK_SETTLE_DELAY"`

	// SessionIdleTTL is how long a session without channel activity is kept.
	// Env: RELAY_SESSION_IDLE_TTL
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL"`

	// JanitorInterval is how often expired sessions are swept.
	// Env: RELAY_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// defaults returns the values used for every setting that no source sets.
// The field map has no defaults on purpose.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Knack: Knack{
			BaseURL:        "https://api.knack.com",
			RequestTimeout: 15 * time.Second,
			RetryCount:     2,
			RetryBaseDelay: 500 * time.Millisecond,
		},
		Server: Server{
			HTTPAddress: ":8080",
		},
		LogLevel: "debug",
		Relay: Relay{
			SaveSettleDelay:      100 * time.Millisecond,
			AddToBankSettleDelay: 2 * time.Second,
			SessionIdleTTL:       2 * time.Hour,
			JanitorInterval:      5 * time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the relay configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
