package domain

import (
	"encoding/json"
	"strings"
)

// StringList is a list of strings persisted as a single serialized text
// column (JSON array). Legacy or hand-entered rows may hold a plain
// comma-separated string instead, so decoding falls back to a comma split.
type StringList []string

// DecodeStringList parses a serialized list column. Valid JSON arrays are
// returned as-is; anything else is split on commas with whitespace trimmed.
// Empty input yields an empty (non-nil) list.
func DecodeStringList(raw string) StringList {
	if strings.TrimSpace(raw) == "" {
		return StringList{}
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return StringList(list)
	}

	parts := strings.Split(raw, ",")
	list = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return StringList(list)
}

// UnmarshalJSON accepts either a JSON array of strings or a single string
// holding a comma-separated (or JSON-encoded) list, matching what form-based
// clients send.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = StringList(list)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = DecodeStringList(raw)
	return nil
}

// Encode serializes the list for storage. The zero value encodes as "[]".
func (l StringList) Encode() string {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return "[]"
	}
	return string(b)
}
