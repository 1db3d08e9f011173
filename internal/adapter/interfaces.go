// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the host platform's record
// storage REST API.
//
// The primary abstraction is [RecordAdapter], which decouples the record
// service from the HTTP details: authentication headers, filter encoding,
// retries with exponential backoff and mapping of HTTP statuses to the
// sentinel errors defined in errors.go (e.g. [ErrUnauthorized] for 401,
// [ErrForbidden] for 403).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_adapter_mock.go -package=mock

// RecordAdapter defines the raw record operations of the host REST API.
// Fields are addressed by backend field identifiers ("field_2979"); mapping
// logical fields to identifiers is the caller's job.
type RecordAdapter interface {
	// Find returns every record of the configured object whose field fieldID
	// equals value. An empty slice means no match.
	Find(ctx context.Context, fieldID, value string) ([]RawRecord, error)

	// Get returns the record identified by recordID.
	Get(ctx context.Context, recordID string) (RawRecord, error)

	// Create inserts a record built from fields and returns its id.
	Create(ctx context.Context, fields map[string]any) (string, error)

	// Update writes fields to the record identified by recordID. Fields not
	// present in the map are left untouched by the API.
	Update(ctx context.Context, recordID string, fields map[string]any) error
}

// TokenSource returns the user session token that authenticates record API
// calls on behalf of the signed-in user.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to [TokenSource].
type TokenFunc func() string

// Token implements [TokenSource].
func (f TokenFunc) Token() string { return f() }
