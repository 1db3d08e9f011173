// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT expiry inspection, identifier
// generation and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key used to store the relay session identifier in
// the context. Used together with GetSessionIDFromContext for type-safe
// retrieval.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithSessionID(ctx, "0192f5c8-...")
var SessionIDCtxKey = contextKey("sessionID")

// WithSessionID returns a copy of ctx carrying sessionID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetSessionIDFromContext retrieves the session identifier from the context.
//
// Returns the session ID and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	sessionID, ok := utils.GetSessionIDFromContext(ctx)
//	if !ok {
//	    // handle missing session in context
//	}
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}

// HostTokenCtxKey is the key used to store the host session token taken from
// the "Authorization" header of a host page request.
var HostTokenCtxKey = contextKey("hostToken")

// WithHostToken returns a copy of ctx carrying the host session token.
func WithHostToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, HostTokenCtxKey, token)
}

// GetHostTokenFromContext retrieves the host session token from the context.
// ok is false when the value is missing, empty or of an unexpected type.
func GetHostTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(HostTokenCtxKey).(string)
	return token, ok && token != ""
}
