// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. A missing backend identifier is a configuration error: the relay
// refuses to start rather than guess it.
func (cfg *StructuredConfig) validate() error {
	if cfg.Knack.BaseURL == "" || cfg.Knack.AppID == "" || cfg.Knack.APIKey == "" || cfg.Knack.ObjectKey == "" {
		return ErrInvalidKnackConfigs
	}
	if cfg.Knack.RequestTimeout <= 0 || cfg.Knack.RetryCount < 0 || cfg.Knack.RetryBaseDelay <= 0 {
		return ErrInvalidKnackConfigs
	}

	if missing := cfg.Fields.missing(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidFieldMap, strings.Join(missing, ", "))
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Relay.SaveSettleDelay <= 0 || cfg.Relay.AddToBankSettleDelay <= 0 ||
		cfg.Relay.SessionIdleTTL <= 0 || cfg.Relay.JanitorInterval <= 0 {
		return ErrInvalidRelayConfigs
	}

	return nil
}

// missing lists the required logical fields that have no backend identifier.
func (f Fields) missing() []string {
	required := []struct {
		name, id string
	}{
		{"user_id", f.UserID},
		{"cards", f.Cards},
		{"color_mapping", f.ColorMapping},
		{"topic_lists", f.TopicLists},
		{"topic_metadata", f.TopicMetadata},
		{"box1", f.Box1},
		{"box2", f.Box2},
		{"box3", f.Box3},
		{"box4", f.Box4},
		{"box5", f.Box5},
	}

	var missing []string
	for _, r := range required {
		if r.id == "" {
			missing = append(missing, r.name)
		}
	}
	return missing
}
