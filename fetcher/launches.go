// backend/fetcher/launches.go
package fetcher

import "encoding/json"

// LaunchSource fetches the next scheduled launch.
type LaunchSource struct {
	client *Client
	url    string
}

func NewLaunchSource(client *Client, url string) *LaunchSource {
	return &LaunchSource{client: client, url: url}
}

func (s *LaunchSource) Fetch() (json.RawMessage, error) {
	return s.client.GetJSON(s.url)
}
