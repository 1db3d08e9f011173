package adapter

import (
	"github.com/tidwall/gjson"
)

// RawRecord is a record object exactly as returned by the record API.
type RawRecord []byte

// ID returns the record identifier.
func (r RawRecord) ID() string {
	return gjson.GetBytes(r, "id").String()
}

// Field returns the decoded value of a backend field. The API returns every
// field twice: formatted (field_1) and raw (field_1_raw). The raw value is
// preferred since formatted values of connection fields are HTML.
// A missing field yields nil.
func (r RawRecord) Field(fieldID string) any {
	if fieldID == "" {
		return nil
	}

	if raw := gjson.GetBytes(r, gjson.Escape(fieldID+"_raw")); raw.Exists() {
		return raw.Value()
	}
	if v := gjson.GetBytes(r, gjson.Escape(fieldID)); v.Exists() {
		return v.Value()
	}
	return nil
}

// String returns a field as a string. Non-string values yield "".
func (r RawRecord) String(fieldID string) string {
	s, _ := r.Field(fieldID).(string)
	return s
}
