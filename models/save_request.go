// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SaveRequest is the payload of a save coming from the embedded application.
//
// Fields absent from the JSON payload stay nil. With PreserveFields set only
// present fields are written; otherwise the whole record is overwritten and
// absent fields are reset to empty containers.
type SaveRequest struct {
	RecordID         string            `json:"recordId"`
	Cards            []Card            `json:"cards,omitempty"`
	ColorMapping     map[string]any    `json:"colorMapping,omitempty"`
	TopicLists       []TopicList       `json:"topicLists,omitempty"`
	TopicMetadata    []TopicMetadata   `json:"topicMetadata,omitempty"`
	SpacedRepetition *SpacedRepetition `json:"spacedRepetition,omitempty"`
	PreserveFields   bool              `json:"preserveFields"`
}

// Patch converts the request into the record patch that the write must apply.
func (r SaveRequest) Patch() RecordPatch {
	p := RecordPatch{
		Cards:            r.Cards,
		ColorMapping:     r.ColorMapping,
		TopicLists:       r.TopicLists,
		TopicMetadata:    r.TopicMetadata,
		SpacedRepetition: r.SpacedRepetition,
	}
	if r.PreserveFields {
		return p
	}

	if p.Cards == nil {
		p.Cards = []Card{}
	}
	if p.ColorMapping == nil {
		p.ColorMapping = map[string]any{}
	}
	if p.TopicLists == nil {
		p.TopicLists = []TopicList{}
	}
	if p.TopicMetadata == nil {
		p.TopicMetadata = []TopicMetadata{}
	}
	sr := SpacedRepetition{}
	if p.SpacedRepetition != nil {
		sr = *p.SpacedRepetition
	}
	sr.Normalize()
	p.SpacedRepetition = &sr

	return p
}

// SaveOutcome reports what happened to a save request.
type SaveOutcome struct {
	// Deferred is true when another save was in flight and the request was
	// queued; it is written once the running save has settled.
	Deferred bool
	// Dropped is true when another save was in flight and one was already
	// queued. The request is not written.
	Dropped bool
}

// SaveStatus is a save lifecycle notification.
type SaveStatus string

const (
	SaveStarted   SaveStatus = "started"
	SaveCompleted SaveStatus = "completed"
	SaveFailed    SaveStatus = "failed"
)
