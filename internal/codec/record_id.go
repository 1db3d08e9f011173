// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"regexp"
	"strings"
)

// RecordIDLength is the length of a backend record identifier.
const RecordIDLength = 24

var (
	recordIDPattern   = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	embeddedIDPattern = regexp.MustCompile(`\b[0-9a-fA-F]{24}\b`)
)

// IsRecordID reports whether s is a well-formed record identifier: exactly
// 24 hexadecimal characters, case-insensitive.
func IsRecordID(s string) bool {
	return recordIDPattern.MatchString(s)
}

// ExtractRecordID recovers a record identifier from the shapes the host
// platform uses for connection fields:
//
//	"5f1b2c3d4e5f6a7b8c9d0e1f"
//	[{"id": "5f1b2c3d4e5f6a7b8c9d0e1f", "identifier": "..."}]
//	{"id": "5f1b2c3d4e5f6a7b8c9d0e1f"}
//	<span class="5f1b2c3d4e5f6a7b8c9d0e1f">Name</span>
//
// It returns an empty string when no valid identifier can be recovered.
func ExtractRecordID(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return extractFromString(t)
	case []any:
		if len(t) == 0 {
			return ""
		}
		return ExtractRecordID(t[0])
	case []map[string]any:
		if len(t) == 0 {
			return ""
		}
		return ExtractRecordID(t[0])
	case map[string]any:
		id, _ := t["id"].(string)
		return extractFromString(id)
	default:
		return ""
	}
}

func extractFromString(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return ""
	case IsRecordID(s):
		return s
	case looksLikeContainer(s):
		parsed := ParseTolerant(s)
		if _, isString := parsed.(string); isString {
			return ""
		}
		return ExtractRecordID(parsed)
	case strings.Contains(s, "<"):
		if text := SanitizeText(s); IsRecordID(text) {
			return text
		}
		return embeddedIDPattern.FindString(s)
	default:
		return ""
	}
}
