// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Knack.AppID = "app-1"
	cfg.Knack.APIKey = "knack"
	cfg.Knack.ObjectKey = "object_102"
	cfg.Fields = completeFields()
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"missing app id", func(c *StructuredConfig) { c.Knack.AppID = "" }, ErrInvalidKnackConfigs},
		{"missing api key", func(c *StructuredConfig) { c.Knack.APIKey = "" }, ErrInvalidKnackConfigs},
		{"missing object key", func(c *StructuredConfig) { c.Knack.ObjectKey = "" }, ErrInvalidKnackConfigs},
		{"zero timeout", func(c *StructuredConfig) { c.Knack.RequestTimeout = 0 }, ErrInvalidKnackConfigs},
		{"negative retries", func(c *StructuredConfig) { c.Knack.RetryCount = -1 }, ErrInvalidKnackConfigs},
		{"missing cards field", func(c *StructuredConfig) { c.Fields.Cards = "" }, ErrInvalidFieldMap},
		{"missing box field", func(c *StructuredConfig) { c.Fields.Box3 = "" }, ErrInvalidFieldMap},
		{"missing address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"zero settle delay", func(c *StructuredConfig) { c.Relay.SaveSettleDelay = 0 }, ErrInvalidRelayConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestValidate_FieldMapListsMissing(t *testing.T) {
	cfg := validConfig()
	cfg.Fields.UserID = ""
	cfg.Fields.TopicLists = ""

	err := cfg.validate()

	require.ErrorIs(t, err, ErrInvalidFieldMap)
	assert.Contains(t, err.Error(), "user_id")
	assert.Contains(t, err.Error(), "topic_lists")
}

func TestValidate_OptionalFieldsMayBeEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Fields.UserEmail = ""
	cfg.Fields.School = ""
	cfg.Fields.LastSaved = ""

	assert.NoError(t, cfg.validate())
}

func TestFields_Boxes(t *testing.T) {
	assert.Equal(t, [5]string{"field_6", "field_7", "field_8", "field_9", "field_10"}, completeFields().Boxes())
}
