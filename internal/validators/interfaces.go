// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks input that reaches the relay from the host page
// before it is turned into a session.
//
// A [Validator] accepts the value to check and, optionally, the names of the
// fields to restrict the check to (see the Field* constants). With no field
// names every rule of the type is applied.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
