// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/flashcard-bridge/internal/codec"
	"github.com/MKhiriev/flashcard-bridge/models"
)

// SessionValidator checks the user profile the host page submits when it
// opens a relay session.
type SessionValidator struct{}

func NewSessionValidator() *SessionValidator {
	return &SessionValidator{}
}

func (v *SessionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateSessionRequest:
		return v.validateProfile(ctx, value.User, fields...)
	case *models.CreateSessionRequest:
		return v.validateProfile(ctx, value.User, fields...)

	case models.UserProfile:
		return v.validateProfile(ctx, value, fields...)
	case *models.UserProfile:
		return v.validateProfile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SessionValidator) validateProfile(ctx context.Context, profile models.UserProfile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldEmail, FieldRoles, FieldConnections}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(profile.ID) == "" {
				return ErrInvalidUserID
			}
		case FieldEmail:
			if profile.Email == "" {
				continue
			}
			if _, err := mail.ParseAddress(profile.Email); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidEmail, err)
			}
		case FieldRoles:
			for i, role := range profile.Roles {
				if strings.TrimSpace(role) == "" {
					return fmt.Errorf("%w at index %d", ErrInvalidRole, i)
				}
			}
		case FieldConnections:
			if err := validateConnection("school", profile.School); err != nil {
				return err
			}
			if err := validateConnection("tutor", profile.Tutor); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateConnection(name string, value any) error {
	if isBlank(value) {
		return nil
	}
	if codec.ExtractRecordID(value) == "" {
		return fmt.Errorf("%w: %s", ErrInvalidConnection, name)
	}
	return nil
}

func isBlank(value any) bool {
	switch t := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	default:
		return false
	}
}
