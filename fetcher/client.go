// backend/fetcher/client.go
package fetcher

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "skywatch-backend/1.0"

// Source is the uniform fetch capability: one implementation per upstream
// feed, each returning one raw JSON document.
type Source interface {
	Fetch() (json.RawMessage, error)
}

// Client wraps http.Client with the timeout and error classification shared
// by every source adapter.
type Client struct {
	http *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// GetJSON fetches a URL and returns the body after verifying it is valid
// JSON. Failures come back as *FetchError.
func (c *Client) GetJSON(url string) (json.RawMessage, error) {
	body, err := c.GetBody(url)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &FetchError{Kind: KindDecode, URL: url, Err: fmt.Errorf("body is not valid JSON")}
	}
	return json.RawMessage(body), nil
}

// GetBody fetches a URL and returns the raw body bytes. Connection problems
// classify as transport errors, non-2xx responses as upstream-status errors.
func (c *Client) GetBody(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Kind: KindUpstreamStatus, StatusCode: resp.StatusCode, URL: url}
	}
	return body, nil
}
