// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// SanitizeText renders v as plain text: nil becomes an empty string, HTML
// markup is dropped keeping only the text content, and the result is trimmed.
func SanitizeText(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s = t
	case fmt.Stringer:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}

	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	var (
		b    strings.Builder
		skip int
		z    = html.NewTokenizer(strings.NewReader(s))
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.StartTagToken:
			if name, _ := z.TagName(); isRawTextTag(name) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isRawTextTag(name) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isRawTextTag(name []byte) bool {
	tag := string(name)
	return tag == "script" || tag == "style"
}
