// backend/fetcher/envelope.go
package fetcher

import "encoding/json"

// ResolveEnvelope unwraps the inconsistent collection shapes upstream APIs
// use. The fallback order is significant and must not change: a top-level
// array is used as-is, then an "items" field, then a "results" field, and
// anything else becomes a single-element sequence.
func ResolveEnvelope(raw json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err == nil {
		for _, field := range []string{"items", "results"} {
			arr, ok := wrapper[field]
			if !ok {
				continue
			}
			var items []json.RawMessage
			if err := json.Unmarshal(arr, &items); err == nil {
				return items
			}
		}
	}

	return []json.RawMessage{raw}
}
