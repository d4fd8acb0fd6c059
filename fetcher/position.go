// backend/fetcher/position.go
package fetcher

import "encoding/json"

// PositionSource fetches the current satellite position. The payload is
// expected to expose numeric latitude, longitude and (optionally) velocity
// fields, but no validation happens here: it is cached verbatim.
type PositionSource struct {
	client  *Client
	baseURL string
}

func NewPositionSource(client *Client, baseURL string) *PositionSource {
	return &PositionSource{client: client, baseURL: baseURL}
}

func (s *PositionSource) Fetch() (json.RawMessage, error) {
	return s.client.GetJSON(s.baseURL)
}
