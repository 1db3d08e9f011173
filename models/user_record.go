// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// UserRecord is the single backend record that stores all flashcard data of
// one end user. It is read when a session starts, created lazily when absent
// and then mutated only through saves.
type UserRecord struct {
	// RecordID is the opaque backend identifier. Immutable once assigned.
	RecordID string `json:"recordId"`

	// UserID is the host platform identifier of the record owner.
	UserID string `json:"userId,omitempty"`

	// Cards is the ordered card bank.
	Cards []Card `json:"cards"`

	// ColorMapping maps a category (subject) name to its color value.
	ColorMapping map[string]any `json:"colorMapping"`

	// TopicLists is the ordered sequence of topic lists.
	TopicLists []TopicList `json:"topicLists"`

	// TopicMetadata is the ordered sequence of topic metadata entries.
	TopicMetadata []TopicMetadata `json:"topicMetadata"`

	// SpacedRepetition holds the five review boxes.
	SpacedRepetition SpacedRepetition `json:"spacedRepetition"`

	// LastSaved is the backend timestamp of the latest save, as stored.
	LastSaved string `json:"lastSaved,omitempty"`
}

// TopicList is an opaque topic list object owned by the embedded application.
type TopicList map[string]any

// TopicMetadata is an opaque topic metadata entry owned by the embedded
// application.
type TopicMetadata map[string]any

// BoxCount is the number of spaced-repetition boxes.
const BoxCount = 5

// SpacedRepetition groups card references into the five review boxes.
type SpacedRepetition struct {
	Box1 []BoxEntry `json:"box1"`
	Box2 []BoxEntry `json:"box2"`
	Box3 []BoxEntry `json:"box3"`
	Box4 []BoxEntry `json:"box4"`
	Box5 []BoxEntry `json:"box5"`
}

// Box returns a pointer to box n (1-based). It returns nil for n outside
// 1..BoxCount.
func (s *SpacedRepetition) Box(n int) *[]BoxEntry {
	switch n {
	case 1:
		return &s.Box1
	case 2:
		return &s.Box2
	case 3:
		return &s.Box3
	case 4:
		return &s.Box4
	case 5:
		return &s.Box5
	default:
		return nil
	}
}

// Contains reports whether any box already references cardID.
func (s *SpacedRepetition) Contains(cardID string) bool {
	for n := 1; n <= BoxCount; n++ {
		for _, e := range *s.Box(n) {
			if e.CardID == cardID {
				return true
			}
		}
	}
	return false
}

// Normalize replaces nil boxes with empty ones so that the record always
// serialises every box as a JSON array.
func (s *SpacedRepetition) Normalize() {
	for n := 1; n <= BoxCount; n++ {
		if b := s.Box(n); *b == nil {
			*b = []BoxEntry{}
		}
	}
}

// BoxEntry is a reference from a review box to a card.
type BoxEntry struct {
	CardID         string `json:"cardId"`
	LastReviewed   string `json:"lastReviewed,omitempty"`
	NextReviewDate string `json:"nextReviewDate,omitempty"`
}

// UnmarshalJSON accepts both the object form and the older bare card id
// string form.
func (e *BoxEntry) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		*e = BoxEntry{CardID: strings.TrimSpace(id)}
		return nil
	}

	type plain BoxEntry
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*e = BoxEntry(p)
	return nil
}

// RecordPatch is a partial update of a [UserRecord].
// A nil slice, map or pointer means "leave the stored field untouched";
// an empty non-nil value overwrites the stored field with an empty container.
type RecordPatch struct {
	Cards            []Card
	ColorMapping     map[string]any
	TopicLists       []TopicList
	TopicMetadata    []TopicMetadata
	SpacedRepetition *SpacedRepetition
}

// IsEmpty reports whether the patch changes nothing.
func (p RecordPatch) IsEmpty() bool {
	return p.Cards == nil &&
		p.ColorMapping == nil &&
		p.TopicLists == nil &&
		p.TopicMetadata == nil &&
		p.SpacedRepetition == nil
}
