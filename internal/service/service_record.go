// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/adapter"
	"github.com/MKhiriev/flashcard-bridge/internal/codec"
	"github.com/MKhiriev/flashcard-bridge/internal/config"
	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/models"
)

type recordClient struct {
	adapter adapter.RecordAdapter
	fields  config.Fields
	now     func() time.Time

	logger *logger.Logger
}

// NewRecordClient returns a [RecordClient] that maps logical record fields to
// backend identifiers through fields and talks to the API through adapter.
func NewRecordClient(adapter adapter.RecordAdapter, fields config.Fields, logger *logger.Logger) RecordClient {
	return &recordClient{
		adapter: adapter,
		fields:  fields,
		now:     time.Now,
		logger:  logger,
	}
}

func (c *recordClient) Load(ctx context.Context, userID string) (*models.UserRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrNoUserID
	}

	records, err := c.adapter.Find(ctx, c.fields.UserID, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading record of user %s: %w", userID, err)
	}
	if len(records) == 0 {
		c.logger.Debug().Str("user_id", userID).Msg("no record found")
		return nil, nil
	}
	if len(records) > 1 {
		c.logger.Warn().Str("user_id", userID).Int("matches", len(records)).Msg("several records match user, using the first")
	}

	return c.decode(records[0]), nil
}

func (c *recordClient) LoadByID(ctx context.Context, recordID string) (*models.UserRecord, error) {
	if !codec.IsRecordID(recordID) {
		return nil, ErrNoRecordID
	}

	raw, err := c.adapter.Get(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("error loading record %s: %w", recordID, err)
	}

	return c.decode(raw), nil
}

func (c *recordClient) Create(ctx context.Context, userID string, profile models.UserProfile) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", ErrNoUserID
	}

	f := c.fields
	payload := map[string]any{
		f.UserID:        userID,
		f.Cards:         "[]",
		f.ColorMapping:  "{}",
		f.TopicLists:    "[]",
		f.TopicMetadata: "[]",
	}
	for _, box := range f.Boxes() {
		payload[box] = "[]"
	}

	setText(payload, f.UserEmail, profile.Email)
	setText(payload, f.UserName, profile.Name)
	setText(payload, f.UserRole, profile.Role())
	setText(payload, f.LastSaved, c.timestamp())

	c.setConnection(payload, f.AccountConnection, "account_connection", profile.AccountConnection)
	c.setConnection(payload, f.School, "school", profile.School)
	c.setConnection(payload, f.Tutor, "tutor", profile.Tutor)

	recordID, err := c.adapter.Create(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("error creating record of user %s: %w", userID, err)
	}

	c.logger.Info().Str("user_id", userID).Str("record_id", recordID).Msg("user record created")
	return recordID, nil
}

func (c *recordClient) Update(ctx context.Context, recordID string, patch models.RecordPatch) error {
	if !codec.IsRecordID(recordID) {
		return ErrNoRecordID
	}
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}

	payload, err := c.encodePatch(patch)
	if err != nil {
		return fmt.Errorf("error encoding update of record %s: %w", recordID, err)
	}

	if err = c.adapter.Update(ctx, recordID, payload); err != nil {
		return fmt.Errorf("error updating record %s: %w", recordID, err)
	}
	return nil
}

// setConnection adds a connection field as a single-element id list. The
// field is omitted when the id cannot be extracted from value.
func (c *recordClient) setConnection(payload map[string]any, fieldID, name string, value any) {
	if fieldID == "" || value == nil {
		return
	}

	id := codec.ExtractRecordID(value)
	if id == "" {
		c.logger.Debug().Str("field", name).Msg("connection id not found, field omitted")
		return
	}
	payload[fieldID] = []string{id}
}

func setText(payload map[string]any, fieldID, value string) {
	if fieldID == "" || value == "" {
		return
	}
	payload[fieldID] = value
}

func (c *recordClient) timestamp() string {
	return c.now().UTC().Format(time.RFC3339)
}

func (c *recordClient) encodePatch(p models.RecordPatch) (map[string]any, error) {
	f := c.fields
	payload := make(map[string]any)

	put := func(fieldID string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		payload[fieldID] = string(b)
		return nil
	}

	if p.Cards != nil {
		if err := put(f.Cards, p.Cards); err != nil {
			return nil, err
		}
	}
	if p.ColorMapping != nil {
		if err := put(f.ColorMapping, p.ColorMapping); err != nil {
			return nil, err
		}
	}
	if p.TopicLists != nil {
		if err := put(f.TopicLists, p.TopicLists); err != nil {
			return nil, err
		}
	}
	if p.TopicMetadata != nil {
		if err := put(f.TopicMetadata, p.TopicMetadata); err != nil {
			return nil, err
		}
	}
	if sr := p.SpacedRepetition; sr != nil {
		for n, fieldID := range f.Boxes() {
			box := *sr.Box(n + 1)
			if box == nil {
				box = []models.BoxEntry{}
			}
			if err := put(fieldID, box); err != nil {
				return nil, err
			}
		}
	}

	setText(payload, f.LastSaved, c.timestamp())
	return payload, nil
}

// decode turns a raw record into a [models.UserRecord]. Malformed stored JSON
// never fails the load: the affected field comes back empty.
func (c *recordClient) decode(raw adapter.RawRecord) *models.UserRecord {
	f := c.fields

	rec := &models.UserRecord{
		RecordID:      raw.ID(),
		UserID:        codec.SanitizeText(raw.Field(f.UserID)),
		Cards:         codec.MigrateLegacyCards(codec.CardsFrom(codec.ParseArray(raw.Field(f.Cards)))),
		ColorMapping:  codec.ParseObject(raw.Field(f.ColorMapping)),
		TopicLists:    objectsOf[models.TopicList](codec.ParseArray(raw.Field(f.TopicLists))),
		TopicMetadata: objectsOf[models.TopicMetadata](codec.ParseArray(raw.Field(f.TopicMetadata))),
	}
	if f.LastSaved != "" {
		rec.LastSaved = codec.SanitizeText(raw.Field(f.LastSaved))
	}

	for n, fieldID := range f.Boxes() {
		*rec.SpacedRepetition.Box(n + 1) = boxEntries(codec.ParseArray(raw.Field(fieldID)))
	}

	return rec
}

func objectsOf[T ~map[string]any](items []any) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, T(obj))
		}
	}
	return out
}

// boxEntries accepts both card id strings and entry objects.
func boxEntries(items []any) []models.BoxEntry {
	out := make([]models.BoxEntry, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if id := strings.TrimSpace(v); id != "" {
				out = append(out, models.BoxEntry{CardID: id})
			}
		case map[string]any:
			e := models.BoxEntry{
				CardID:         stringOf(v["cardId"]),
				LastReviewed:   stringOf(v["lastReviewed"]),
				NextReviewDate: stringOf(v["nextReviewDate"]),
			}
			if e.CardID != "" {
				out = append(out, e)
			}
		}
	}
	return out
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}
