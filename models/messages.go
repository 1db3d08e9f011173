// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MessageType is the tag of a message exchanged with the embedded application.
type MessageType string

// Inbound tags, sent by the embedded application.
const (
	TypeAppReady                 MessageType = "APP_READY"
	TypeSaveData                 MessageType = "SAVE_DATA"
	TypeAddToBank                MessageType = "ADD_TO_BANK"
	TypeTopicListsUpdated        MessageType = "TOPIC_LISTS_UPDATED"
	TypeTriggerSave              MessageType = "TRIGGER_SAVE"
	TypeReloadAppData            MessageType = "RELOAD_APP_DATA"
	TypeRequestDataRefresh       MessageType = "REQUEST_DATA_REFRESH"
	TypeAuthRefreshNeeded        MessageType = "AUTH_REFRESH_NEEDED"
	TypeRequestTokenRefresh      MessageType = "REQUEST_TOKEN_REFRESH"
	TypeRequestUpdatedData       MessageType = "REQUEST_UPDATED_DATA"
	TypeRequestRecordID          MessageType = "REQUEST_RECORD_ID"
	TypePersistenceServicesReady MessageType = "PERSISTENCE_SERVICES_READY"
	TypeAuthConfirmed            MessageType = "AUTH_CONFIRMED"
	TypeHealthCheck              MessageType = "HEALTH_CHECK"
)

// Outbound tags, sent by the relay.
const (
	TypeUserInfo          MessageType = "KNACK_USER_INFO"
	TypeSaveResult        MessageType = "SAVE_RESULT"
	TypeSaveStatus        MessageType = "SAVE_STATUS"
	TypeAddToBankResult   MessageType = "ADD_TO_BANK_RESULT"
	TypeAppData           MessageType = "KNACK_DATA"
	TypeDataRefreshError  MessageType = "DATA_REFRESH_ERROR"
	TypeAuthRefreshResult MessageType = "AUTH_REFRESH_RESULT"
	TypeRecordIDResponse  MessageType = "RECORD_ID_RESPONSE"
	TypeRecordIDError     MessageType = "RECORD_ID_ERROR"
	TypeHealthCheckAck    MessageType = "HEALTH_CHECK_ACK"
)

var (
	// ErrUnknownMessageType is returned by [DecodeInbound] for frames whose
	// tag is missing or not part of the inbound protocol.
	ErrUnknownMessageType = errors.New("unknown message type")
	// ErrMalformedMessage is returned by [DecodeInbound] for frames that are
	// not JSON objects or whose payload does not match the tag.
	ErrMalformedMessage = errors.New("malformed message")
)

// Inbound is a validated message received from the embedded application.
// The set of implementations is closed: see the Type* inbound constants.
type Inbound interface {
	MessageType() MessageType
}

type (
	AppReady        struct{}
	RequestRecordID struct{}
	AuthConfirmed   struct{}
	HealthCheck     struct{}
)

func (AppReady) MessageType() MessageType        { return TypeAppReady }
func (RequestRecordID) MessageType() MessageType { return TypeRequestRecordID }
func (AuthConfirmed) MessageType() MessageType   { return TypeAuthConfirmed }
func (HealthCheck) MessageType() MessageType     { return TypeHealthCheck }

// ReloadAppData asks for the whole record again. Tag is RELOAD_APP_DATA or
// its alias REQUEST_DATA_REFRESH.
type ReloadAppData struct{ Tag MessageType }

func (m ReloadAppData) MessageType() MessageType { return m.Tag }

// AuthRefreshNeeded asks for the current host session token. Tag is
// AUTH_REFRESH_NEEDED or REQUEST_TOKEN_REFRESH.
type AuthRefreshNeeded struct{ Tag MessageType }

func (m AuthRefreshNeeded) MessageType() MessageType { return m.Tag }

// SaveData asks the relay to persist application data.
type SaveData struct {
	Data *SaveRequest `json:"data"`
}

func (SaveData) MessageType() MessageType { return TypeSaveData }

// AddToBank asks the relay to append new cards to the user's card bank.
type AddToBank struct {
	Data *AddToBankRequest `json:"data"`
}

func (AddToBank) MessageType() MessageType { return TypeAddToBank }

// AddToBankRequest lists the cards to add. The embedded application sends
// either an object with a cards array or the bare array.
type AddToBankRequest struct {
	RecordID string `json:"recordId,omitempty"`
	Cards    []Card `json:"cards"`
}

// UnmarshalJSON accepts both {"cards": [...]} and [...].
func (r *AddToBankRequest) UnmarshalJSON(b []byte) error {
	var cards []Card
	if err := json.Unmarshal(b, &cards); err == nil {
		*r = AddToBankRequest{Cards: cards}
		return nil
	}

	type plain AddToBankRequest
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = AddToBankRequest(p)
	return nil
}

// TopicListsUpdated carries the new topic lists of the user.
type TopicListsUpdated struct {
	Data *TopicListsPayload `json:"data"`
}

// TopicListsPayload is the data of a TOPIC_LISTS_UPDATED message.
type TopicListsPayload struct {
	TopicLists []TopicList `json:"topicLists"`
	RecordID   string      `json:"recordId"`
}

func (TopicListsUpdated) MessageType() MessageType { return TypeTopicListsUpdated }

// TriggerSave asks for an immediate save of the given cards, if any.
type TriggerSave struct {
	Cards []Card `json:"cards,omitempty"`
}

func (TriggerSave) MessageType() MessageType { return TypeTriggerSave }

// RequestUpdatedData asks for a fresh copy of the record.
type RequestUpdatedData struct {
	RecordID string `json:"recordId"`
}

func (RequestUpdatedData) MessageType() MessageType { return TypeRequestUpdatedData }

// PersistenceServicesReady announces which persistence services the embedded
// application managed to initialise.
type PersistenceServicesReady struct {
	Services any `json:"services"`
}

func (PersistenceServicesReady) MessageType() MessageType { return TypePersistenceServicesReady }

type envelope struct {
	Type MessageType `json:"type"`
}

// DecodeInbound validates a raw channel frame and returns the typed message.
func DecodeInbound(frame []byte) (Inbound, error) {
	var env envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	switch env.Type {
	case TypeAppReady:
		return AppReady{}, nil
	case TypeReloadAppData, TypeRequestDataRefresh:
		return ReloadAppData{Tag: env.Type}, nil
	case TypeAuthRefreshNeeded, TypeRequestTokenRefresh:
		return AuthRefreshNeeded{Tag: env.Type}, nil
	case TypeRequestRecordID:
		return RequestRecordID{}, nil
	case TypeAuthConfirmed:
		return AuthConfirmed{}, nil
	case TypeHealthCheck:
		return HealthCheck{}, nil
	case TypeSaveData:
		var m SaveData
		if err := decodePayload(frame, &m); err != nil {
			return nil, err
		}
		if m.Data == nil {
			return nil, fmt.Errorf("%w: %s without data", ErrMalformedMessage, env.Type)
		}
		return m, nil
	case TypeAddToBank:
		var m AddToBank
		if err := decodePayload(frame, &m); err != nil {
			return nil, err
		}
		if m.Data == nil || len(m.Data.Cards) == 0 {
			return nil, fmt.Errorf("%w: %s without cards", ErrMalformedMessage, env.Type)
		}
		return m, nil
	case TypeTopicListsUpdated:
		var m TopicListsUpdated
		if err := decodePayload(frame, &m); err != nil {
			return nil, err
		}
		if m.Data == nil || m.Data.TopicLists == nil {
			return nil, fmt.Errorf("%w: %s without topic lists", ErrMalformedMessage, env.Type)
		}
		return m, nil
	case TypeTriggerSave:
		var m TriggerSave
		if err := decodePayload(frame, &m); err != nil {
			return nil, err
		}
		return m, nil
	case TypeRequestUpdatedData:
		var m RequestUpdatedData
		if err := decodePayload(frame, &m); err != nil {
			return nil, err
		}
		return m, nil
	case TypePersistenceServicesReady:
		var m PersistenceServicesReady
		if err := decodePayload(frame, &m); err != nil {
			return nil, err
		}
		return m, nil
	case "":
		return nil, fmt.Errorf("%w: missing type", ErrUnknownMessageType)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, env.Type)
	}
}

func decodePayload(frame []byte, dst any) error {
	if err := json.Unmarshal(frame, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return nil
}
