// backend/fetcher/nasa.go
package fetcher

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

const nasaBaseURL = "https://api.nasa.gov"

// NasaClient builds requests against the NASA open APIs (APOD, NEO feed,
// DONKI). One client is shared by the per-endpoint source types below.
type NasaClient struct {
	client  *Client
	baseURL string
	apiKey  string
}

func NewNasaClient(client *Client, apiKey string) *NasaClient {
	return &NasaClient{client: client, baseURL: nasaBaseURL, apiKey: apiKey}
}

func (c *NasaClient) fetchAPOD() (json.RawMessage, error) {
	u, _ := url.Parse(c.baseURL + "/planetary/apod")
	q := u.Query()
	q.Set("thumbs", "true")
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	u.RawQuery = q.Encode()
	return c.client.GetJSON(u.String())
}

func (c *NasaClient) fetchNeoFeed() (json.RawMessage, error) {
	today := time.Now().Format("2006-01-02")
	start := time.Now().AddDate(0, 0, -2).Format("2006-01-02")

	u, _ := url.Parse(c.baseURL + "/neo/rest/v1/feed")
	q := u.Query()
	q.Set("start_date", start)
	q.Set("end_date", today)
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	u.RawQuery = q.Encode()
	return c.client.GetJSON(u.String())
}

func (c *NasaClient) fetchDonki(endpoint string) (json.RawMessage, error) {
	today := time.Now().Format("2006-01-02")
	start := time.Now().AddDate(0, 0, -5).Format("2006-01-02")

	u, _ := url.Parse(fmt.Sprintf("%s/DONKI/%s", c.baseURL, endpoint))
	q := u.Query()
	q.Set("startDate", start)
	q.Set("endDate", today)
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	u.RawQuery = q.Encode()
	return c.client.GetJSON(u.String())
}

// ApodSource fetches the Astronomy Picture of the Day.
type ApodSource struct {
	nasa *NasaClient
}

func NewApodSource(nasa *NasaClient) *ApodSource {
	return &ApodSource{nasa: nasa}
}

func (s *ApodSource) Fetch() (json.RawMessage, error) {
	return s.nasa.fetchAPOD()
}

// NeoSource fetches the near-earth object feed for the trailing window.
type NeoSource struct {
	nasa *NasaClient
}

func NewNeoSource(nasa *NasaClient) *NeoSource {
	return &NeoSource{nasa: nasa}
}

func (s *NeoSource) Fetch() (json.RawMessage, error) {
	return s.nasa.fetchNeoFeed()
}

// FlrSource fetches DONKI solar flare events.
type FlrSource struct {
	nasa *NasaClient
}

func NewFlrSource(nasa *NasaClient) *FlrSource {
	return &FlrSource{nasa: nasa}
}

func (s *FlrSource) Fetch() (json.RawMessage, error) {
	return s.nasa.fetchDonki("FLR")
}

// CmeSource fetches DONKI coronal mass ejection events.
type CmeSource struct {
	nasa *NasaClient
}

func NewCmeSource(nasa *NasaClient) *CmeSource {
	return &CmeSource{nasa: nasa}
}

func (s *CmeSource) Fetch() (json.RawMessage, error) {
	return s.nasa.fetchDonki("CME")
}
