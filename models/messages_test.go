package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInbound_SimpleTags(t *testing.T) {
	tests := []struct {
		frame string
		want  Inbound
	}{
		{`{"type":"APP_READY"}`, AppReady{}},
		{`{"type":"RELOAD_APP_DATA"}`, ReloadAppData{Tag: TypeReloadAppData}},
		{`{"type":"REQUEST_DATA_REFRESH"}`, ReloadAppData{Tag: TypeRequestDataRefresh}},
		{`{"type":"AUTH_REFRESH_NEEDED"}`, AuthRefreshNeeded{Tag: TypeAuthRefreshNeeded}},
		{`{"type":"REQUEST_TOKEN_REFRESH"}`, AuthRefreshNeeded{Tag: TypeRequestTokenRefresh}},
		{`{"type":"REQUEST_RECORD_ID"}`, RequestRecordID{}},
		{`{"type":"AUTH_CONFIRMED"}`, AuthConfirmed{}},
		{`{"type":"HEALTH_CHECK","extra":1}`, HealthCheck{}},
		{`{"type":"TRIGGER_SAVE"}`, TriggerSave{}},
		{`{"type":"REQUEST_UPDATED_DATA","recordId":"r1"}`, RequestUpdatedData{RecordID: "r1"}},
	}

	for _, tt := range tests {
		t.Run(tt.frame, func(t *testing.T) {
			got, err := DecodeInbound([]byte(tt.frame))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeInbound_SaveData(t *testing.T) {
	got, err := DecodeInbound([]byte(`{
		"type": "SAVE_DATA",
		"data": {
			"recordId": "r1",
			"cards": [{"id": "c1", "front": "Q"}],
			"spacedRepetition": {"box1": ["c1"], "box2": [{"cardId": "c2", "nextReviewDate": "2026-01-01"}]},
			"preserveFields": true
		}
	}`))
	require.NoError(t, err)

	m, ok := got.(SaveData)
	require.True(t, ok)
	assert.Equal(t, "r1", m.Data.RecordID)
	assert.True(t, m.Data.PreserveFields)
	require.Len(t, m.Data.Cards, 1)
	assert.Equal(t, "Q", m.Data.Cards[0]["front"])
	assert.Nil(t, m.Data.TopicLists)

	require.NotNil(t, m.Data.SpacedRepetition)
	assert.Equal(t, []BoxEntry{{CardID: "c1"}}, m.Data.SpacedRepetition.Box1)
	assert.Equal(t, []BoxEntry{{CardID: "c2", NextReviewDate: "2026-01-01"}}, m.Data.SpacedRepetition.Box2)
}

func TestDecodeInbound_AddToBankShapes(t *testing.T) {
	for _, frame := range []string{
		`{"type":"ADD_TO_BANK","data":{"cards":[{"id":"c1"}]}}`,
		`{"type":"ADD_TO_BANK","data":[{"id":"c1"}]}`,
	} {
		got, err := DecodeInbound([]byte(frame))
		require.NoError(t, err, frame)

		m := got.(AddToBank)
		require.Len(t, m.Data.Cards, 1, frame)
		assert.Equal(t, "c1", m.Data.Cards[0].ID())
	}
}

func TestDecodeInbound_Errors(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		want  error
	}{
		{"not json", `nope`, ErrMalformedMessage},
		{"array frame", `[1,2]`, ErrMalformedMessage},
		{"missing type", `{"data":{}}`, ErrUnknownMessageType},
		{"unknown type", `{"type":"DROP_TABLES"}`, ErrUnknownMessageType},
		{"outbound type", `{"type":"SAVE_RESULT"}`, ErrUnknownMessageType},
		{"save without data", `{"type":"SAVE_DATA"}`, ErrMalformedMessage},
		{"save with wrong data", `{"type":"SAVE_DATA","data":"x"}`, ErrMalformedMessage},
		{"add to bank without cards", `{"type":"ADD_TO_BANK","data":{"cards":[]}}`, ErrMalformedMessage},
		{"topic lists without lists", `{"type":"TOPIC_LISTS_UPDATED","data":{}}`, ErrMalformedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeInbound([]byte(tt.frame))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
