// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
)

var (
	trailingCommaPattern = regexp.MustCompile(`,\s*([\]}])`)
	percentEscapePattern = regexp.MustCompile(`%[0-9A-Fa-f]{2}`)
)

// ParseTolerant decodes a JSON-bearing value.
//
// Already structured values are returned unchanged. Strings and byte slices
// are trimmed, percent-decoded when they contain escapes and JSON-decoded.
// If decoding fails, trailing commas are stripped and decoding is retried
// once. When that fails too, an empty []any or map[string]any is returned
// according to the leading bracket of the input, otherwise nil.
func ParseTolerant(raw any) any {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return parseText(v, true)
	case []byte:
		return parseText(string(v), true)
	case json.RawMessage:
		return parseText(string(v), true)
	default:
		return raw
	}
}

// ParseArray is ParseTolerant narrowed to a JSON array. Anything that is not
// an array yields an empty slice.
func ParseArray(raw any) []any {
	if arr, ok := ParseTolerant(raw).([]any); ok {
		return arr
	}
	return []any{}
}

// ParseObject is ParseTolerant narrowed to a JSON object. Anything that is not
// an object yields an empty map.
func ParseObject(raw any) map[string]any {
	if obj, ok := ParseTolerant(raw).(map[string]any); ok {
		return obj
	}
	return map[string]any{}
}

func parseText(s string, unwrap bool) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if percentEscapePattern.MatchString(s) {
		if decoded, err := url.PathUnescape(s); err == nil {
			s = strings.TrimSpace(decoded)
		}
	}

	v, ok := decodeJSON(s)
	if !ok {
		v, ok = decodeJSON(trailingCommaPattern.ReplaceAllString(s, "$1"))
	}
	if !ok {
		return emptyContainerFor(s)
	}

	// double-encoded: "[...]" stored as a JSON string
	if inner, isString := v.(string); isString && unwrap && looksLikeContainer(inner) {
		return parseText(inner, false)
	}

	return v
}

func decodeJSON(s string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}

func emptyContainerFor(s string) any {
	switch s[0] {
	case '[':
		return []any{}
	case '{':
		return map[string]any{}
	default:
		return nil
	}
}

func looksLikeContainer(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{")
}
