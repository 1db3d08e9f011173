// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned by the host token middleware and request decoding.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrHostTokenExpired is returned when the host session token is a JWT
	// whose exp claim has passed.
	ErrHostTokenExpired = errors.New("host session token expired")

	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidSessionRequest wraps the validation failure of a session
	// creation request.
	ErrInvalidSessionRequest = errors.New("invalid session request")
)
