// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Card is a single learning item as produced by the embedded application.
//
// The relay does not own the card schema: it only normalises the legacy
// question type fields and otherwise passes every key through untouched, so a
// Card is kept as a free-form JSON object.
type Card map[string]any

// Card keys the relay reads or rewrites.
const (
	CardKeyID           = "id"
	CardKeyType         = "type"
	CardKeyQuestionType = "questionType"
)

// ID returns the card identifier or an empty string when the card has none.
func (c Card) ID() string {
	id, _ := c[CardKeyID].(string)
	return id
}

// Clone returns a shallow copy of the card. Top-level keys can be changed on
// the copy without affecting the receiver.
func (c Card) Clone() Card {
	if c == nil {
		return nil
	}

	out := make(Card, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
