// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/flashcard-bridge/internal/config"
	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/utils"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	headerApplicationID = "X-Knack-Application-Id"
	headerRESTAPIKey    = "X-Knack-REST-API-Key"
	headerAuthorization = "Authorization"
)

type knackAdapter struct {
	client *utils.HTTPClient
	object string
	tokens TokenSource
	retry  RetryPolicy

	logger *logger.Logger
}

// NewHTTPClient builds the resty client shared by every session's adapter:
// base URL, per-attempt timeout and the application headers are set once.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPClient(cfg config.Knack) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return utils.NewHTTPClient(baseURL, cfg.RequestTimeout, map[string]string{
		headerApplicationID: cfg.AppID,
		headerRESTAPIKey:    cfg.APIKey,
		"Content-Type":      "application/json",
	}), nil
}

// NewKnackAdapter constructs the REST implementation of [RecordAdapter] for
// one session. The client is shared; tokens supplies the session's current
// user token for every request.
func NewKnackAdapter(client *utils.HTTPClient, cfg config.Knack, tokens TokenSource, log *logger.Logger) RecordAdapter {
	return &knackAdapter{
		client: client,
		object: cfg.ObjectKey,
		tokens: tokens,
		retry:  RetryPolicy{Retries: cfg.RetryCount, BaseDelay: cfg.RetryBaseDelay},
		logger: log,
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type filterRule struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

type filter struct {
	Match string       `json:"match"`
	Rules []filterRule `json:"rules"`
}

// Find implements [RecordAdapter]. It GETs /v1/objects/{object}/records with
// an "is" filter on fieldID.
func (k *knackAdapter) Find(ctx context.Context, fieldID, value string) ([]RawRecord, error) {
	filters, err := json.Marshal(filter{
		Match: "and",
		Rules: []filterRule{{Field: fieldID, Operator: "is", Value: value}},
	})
	if err != nil {
		return nil, fmt.Errorf("encode filters: %w", err)
	}

	var records []RawRecord
	err = k.retry.Do(ctx, k.logger, "find records", func(ctx context.Context) error {
		resp, err := k.request(ctx).
			SetQueryParam("filters", string(filters)).
			Get(k.recordsPath())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}

		list := gjson.GetBytes(resp.Body(), "records")
		if !list.IsArray() {
			return fmt.Errorf("%w: records list missing", ErrInvalidResponse)
		}

		records = records[:0]
		list.ForEach(func(_, rec gjson.Result) bool {
			records = append(records, RawRecord(rec.Raw))
			return true
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Get implements [RecordAdapter]. It GETs /v1/objects/{object}/records/{id}.
func (k *knackAdapter) Get(ctx context.Context, recordID string) (RawRecord, error) {
	var record RawRecord
	err := k.retry.Do(ctx, k.logger, "get record", func(ctx context.Context) error {
		resp, err := k.request(ctx).Get(k.recordPath(recordID))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}

		if !gjson.ValidBytes(resp.Body()) {
			return fmt.Errorf("%w: record body is not json", ErrInvalidResponse)
		}
		record = RawRecord(resp.Body())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Create implements [RecordAdapter]. It POSTs fields to
// /v1/objects/{object}/records and returns the id of the created record.
func (k *knackAdapter) Create(ctx context.Context, fields map[string]any) (string, error) {
	var recordID string
	err := k.retry.Do(ctx, k.logger, "create record", func(ctx context.Context) error {
		resp, err := k.request(ctx).
			SetBody(fields).
			Post(k.recordsPath())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}

		recordID = RawRecord(resp.Body()).ID()
		if recordID == "" {
			return fmt.Errorf("%w: created record has no id", ErrInvalidResponse)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return recordID, nil
}

// Update implements [RecordAdapter]. It PUTs fields to
// /v1/objects/{object}/records/{id}.
func (k *knackAdapter) Update(ctx context.Context, recordID string, fields map[string]any) error {
	return k.retry.Do(ctx, k.logger, "update record", func(ctx context.Context) error {
		resp, err := k.request(ctx).
			SetBody(fields).
			Put(k.recordPath(recordID))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}

		return mapHTTPError(resp)
	})
}

func (k *knackAdapter) request(ctx context.Context) *resty.Request {
	req := k.client.R().SetContext(ctx)
	if token := strings.TrimSpace(k.tokens.Token()); token != "" {
		req.SetHeader(headerAuthorization, token)
	}
	return req
}

func (k *knackAdapter) recordsPath() string {
	return "/v1/objects/" + url.PathEscape(k.object) + "/records"
}

func (k *knackAdapter) recordPath(recordID string) string {
	return k.recordsPath() + "/" + url.PathEscape(recordID)
}
