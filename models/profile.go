// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserProfile carries the signed-in user's attributes as reported by the host
// platform when a session is opened.
//
// Connection attributes (AccountConnection, School, Tutor) are passed through
// in whatever shape the host platform uses; the record id is extracted from
// them when the user record is created.
type UserProfile struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`

	AccountConnection any `json:"accountConnection,omitempty"`
	School            any `json:"school,omitempty"`
	Tutor             any `json:"tutor,omitempty"`
}

// Role returns the first role of the user, or an empty string.
func (p UserProfile) Role() string {
	if len(p.Roles) == 0 {
		return ""
	}
	return p.Roles[0]
}
