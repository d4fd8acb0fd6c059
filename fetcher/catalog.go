// backend/fetcher/catalog.go
package fetcher

import "encoding/json"

// CatalogSource fetches the collection-shaped catalog upstream and resolves
// its envelope into individual items.
type CatalogSource struct {
	client  *Client
	baseURL string
}

func NewCatalogSource(client *Client, baseURL string) *CatalogSource {
	return &CatalogSource{client: client, baseURL: baseURL}
}

// FetchItems returns the item sequence regardless of how the upstream wraps
// it (bare array, items, results, or a single object).
func (s *CatalogSource) FetchItems() ([]json.RawMessage, error) {
	raw, err := s.client.GetJSON(s.baseURL)
	if err != nil {
		return nil, err
	}
	return ResolveEnvelope(raw), nil
}
