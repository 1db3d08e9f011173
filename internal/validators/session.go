// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to specify which fields should be validated.
const (
	// FieldUserID targets the host platform identifier of the user.
	FieldUserID = "user_id"

	// FieldEmail targets the email address of the user. An empty address is
	// accepted, the host platform does not always expose it.
	FieldEmail = "email"

	// FieldRoles targets the role profile keys of the user.
	FieldRoles = "roles"

	// FieldConnections targets the school and tutor connection fields. A
	// present connection must carry a recoverable record identifier.
	FieldConnections = "connections"
)
