// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"github.com/MKhiriev/flashcard-bridge/models"
)

// legacyQuestionTypes maps the recognised values of the legacy "type" card
// field to their "questionType" equivalent.
var legacyQuestionTypes = map[string]string{
	"basic":           "basic_and_reversed",
	"short_answer":    "short_answer",
	"multiple_choice": "multiple_choice",
	"essay":           "essay",
	"acronym":         "acronym",
}

// MigrateLegacyCard returns a copy of card with the legacy "type" field
// migrated to "questionType".
//
// The migration only applies when "type" is a string and "questionType" is
// missing or empty. Recognised legacy values are mapped and "type" is
// removed; any other value is copied to "questionType" and "type" is kept.
func MigrateLegacyCard(card models.Card) models.Card {
	out := card.Clone()
	if out == nil {
		return nil
	}

	legacy, ok := out[models.CardKeyType].(string)
	if !ok {
		return out
	}
	if qt, exists := out[models.CardKeyQuestionType]; exists && qt != nil && qt != "" {
		return out
	}

	if mapped, known := legacyQuestionTypes[legacy]; known {
		out[models.CardKeyQuestionType] = mapped
		delete(out, models.CardKeyType)
		return out
	}

	out[models.CardKeyQuestionType] = legacy
	return out
}

// MigrateLegacyCards applies [MigrateLegacyCard] to every card and returns a
// new slice. A nil input yields nil.
func MigrateLegacyCards(cards []models.Card) []models.Card {
	if cards == nil {
		return nil
	}

	out := make([]models.Card, len(cards))
	for i, c := range cards {
		out[i] = MigrateLegacyCard(c)
	}
	return out
}

// CardsFrom converts a decoded JSON array into cards, skipping elements that
// are not objects.
func CardsFrom(items []any) []models.Card {
	cards := make([]models.Card, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			cards = append(cards, models.Card(obj))
		}
	}
	return cards
}
