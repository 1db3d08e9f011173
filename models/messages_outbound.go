// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Header is embedded by every outbound message.
type Header struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
}

// OutboundHeader gives the channel access to the header so that it can stamp
// the message right before sending it.
func (h *Header) OutboundHeader() *Header {
	return h
}

// Outbound is a message sent by the relay to the embedded application.
type Outbound interface {
	OutboundHeader() *Header
}

// AuthInfo is the identity block sent along with user data.
type AuthInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// UserInfoData is the payload of KNACK_USER_INFO.
type UserInfoData struct {
	AuthInfo
	AppID    string      `json:"appId"`
	Role     string      `json:"role,omitempty"`
	SchoolID string      `json:"schoolId,omitempty"`
	TutorID  string      `json:"tutorId,omitempty"`
	RecordID string      `json:"recordId"`
	UserData *UserRecord `json:"userData"`
}

type UserInfo struct {
	Header
	Data UserInfoData `json:"data"`
}

func NewUserInfo(data UserInfoData) *UserInfo {
	return &UserInfo{Header: Header{Type: TypeUserInfo}, Data: data}
}

type SaveResult struct {
	Header
	Success bool   `json:"success"`
	Queued  bool   `json:"queued,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewSaveResult builds a SAVE_RESULT for the outcome of a save. A dropped
// save carries its error and is reported as failed.
func NewSaveResult(outcome SaveOutcome, err error) *SaveResult {
	m := &SaveResult{Header: Header{Type: TypeSaveResult}, Success: err == nil, Queued: outcome.Deferred}
	if err != nil {
		m.Error = err.Error()
	}
	return m
}

type SaveStatusMessage struct {
	Header
	Status   SaveStatus `json:"status"`
	RecordID string     `json:"recordId"`
}

func NewSaveStatus(status SaveStatus, recordID string) *SaveStatusMessage {
	return &SaveStatusMessage{Header: Header{Type: TypeSaveStatus}, Status: status, RecordID: recordID}
}

type AddToBankResult struct {
	Header
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
	ShouldReload bool   `json:"shouldReload"`
}

func NewAddToBankResult(err error) *AddToBankResult {
	m := &AddToBankResult{Header: Header{Type: TypeAddToBankResult}, Success: err == nil, ShouldReload: err == nil}
	if err != nil {
		m.Error = err.Error()
	}
	return m
}

// AppData is the KNACK_DATA message carrying the whole user record.
type AppData struct {
	Header
	RecordID         string           `json:"recordId"`
	Cards            []Card           `json:"cards"`
	ColorMapping     map[string]any   `json:"colorMapping"`
	TopicLists       []TopicList      `json:"topicLists"`
	TopicMetadata    []TopicMetadata  `json:"topicMetadata"`
	SpacedRepetition SpacedRepetition `json:"spacedRepetition"`
	Auth             AuthInfo         `json:"auth"`
}

func NewAppData(rec *UserRecord, auth AuthInfo) *AppData {
	return &AppData{
		Header:           Header{Type: TypeAppData},
		RecordID:         rec.RecordID,
		Cards:            rec.Cards,
		ColorMapping:     rec.ColorMapping,
		TopicLists:       rec.TopicLists,
		TopicMetadata:    rec.TopicMetadata,
		SpacedRepetition: rec.SpacedRepetition,
		Auth:             auth,
	}
}

type DataRefreshError struct {
	Header
	Error string `json:"error"`
}

func NewDataRefreshError(err error) *DataRefreshError {
	return &DataRefreshError{Header: Header{Type: TypeDataRefreshError}, Error: err.Error()}
}

type AuthRefreshResult struct {
	Header
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewAuthRefreshResult(token string, err error) *AuthRefreshResult {
	m := &AuthRefreshResult{Header: Header{Type: TypeAuthRefreshResult}, Success: err == nil}
	if err != nil {
		m.Error = err.Error()
		return m
	}
	m.Token = token
	return m
}

type RecordIDResponse struct {
	Header
	RecordID string `json:"recordId"`
}

func NewRecordIDResponse(recordID string) *RecordIDResponse {
	return &RecordIDResponse{Header: Header{Type: TypeRecordIDResponse}, RecordID: recordID}
}

type RecordIDError struct {
	Header
	Error string `json:"error"`
}

func NewRecordIDError(err error) *RecordIDError {
	return &RecordIDError{Header: Header{Type: TypeRecordIDError}, Error: err.Error()}
}

type HealthCheckAck struct {
	Header
}

func NewHealthCheckAck() *HealthCheckAck {
	return &HealthCheckAck{Header: Header{Type: TypeHealthCheckAck}}
}
