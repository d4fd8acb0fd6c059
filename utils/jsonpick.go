// backend/utils/jsonpick.go
package utils

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// decodeObject unmarshals a JSON document into a generic map, keeping
// numbers as json.Number so their literal form is preserved.
func decodeObject(raw json.RawMessage) map[string]interface{} {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]interface{}
	if err := dec.Decode(&m); err != nil {
		return nil
	}
	return m
}

// PickString returns the value of the first candidate key that holds a
// non-empty string. A JSON number matches too and is returned in its
// canonical literal form. Returns nil when no candidate matches.
func PickString(raw json.RawMessage, keys ...string) *string {
	m := decodeObject(raw)
	if m == nil {
		return nil
	}
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case string:
			if val != "" {
				return &val
			}
		case json.Number:
			s := val.String()
			return &s
		}
	}
	return nil
}

// PickTime returns the first candidate key parseable as a timestamp. Strings
// are tried as RFC3339 and then as "YYYY-MM-DD HH:MM:SS" interpreted as UTC;
// integers are taken as Unix epoch seconds. Unparseable candidates are
// skipped, not errors.
func PickTime(raw json.RawMessage, keys ...string) *time.Time {
	m := decodeObject(raw)
	if m == nil {
		return nil
	}
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case string:
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				return &t
			}
			if t, err := time.Parse("2006-01-02 15:04:05", val); err == nil {
				return &t
			}
		case json.Number:
			if n, err := val.Int64(); err == nil {
				t := time.Unix(n, 0).UTC()
				return &t
			}
		}
	}
	return nil
}

// Num coerces the given key to a float64: a JSON number, or a string that
// parses as one. Returns nil otherwise.
func Num(raw json.RawMessage, key string) *float64 {
	m := decodeObject(raw)
	if m == nil {
		return nil
	}
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return &f
		}
	case string:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return &f
		}
	}
	return nil
}
