// backend/fetcher/sunspots.go
package fetcher

import (
	"encoding/json"
	"log"

	"github.com/jszwec/csvutil"
)

// keep the cached payload bounded; the feed republishes the full month
const sunspotKeepRows = 31

// sunspotRow is one day of the observed sunspot index. Headers in the CSV
// must match the csv tags exactly.
type sunspotRow struct {
	Date         string  `csv:"date" json:"date"`
	SunspotIndex float64 `csv:"sunspot_number" json:"sunspot_number"`
	StdDev       float64 `csv:"stdev" json:"stdev"`
	Observations int     `csv:"observations" json:"observations"`
}

// SunspotSource fetches a headered daily sunspot-number CSV and caches the
// most recent rows as a single JSON payload under the sunspots tag.
type SunspotSource struct {
	client *Client
	url    string
}

func NewSunspotSource(client *Client, url string) *SunspotSource {
	return &SunspotSource{client: client, url: url}
}

func (s *SunspotSource) Fetch() (json.RawMessage, error) {
	body, err := s.client.GetBody(s.url)
	if err != nil {
		return nil, err
	}

	var rows []sunspotRow
	if err := csvutil.Unmarshal(body, &rows); err != nil {
		return nil, &FetchError{Kind: KindDecode, URL: s.url, Err: err}
	}
	log.Printf("Fetcher: parsed %d sunspot rows from CSV", len(rows))

	if len(rows) > sunspotKeepRows {
		rows = rows[len(rows)-sunspotKeepRows:]
	}

	payload := struct {
		Rows   []sunspotRow `json:"rows"`
		Latest *sunspotRow  `json:"latest,omitempty"`
	}{Rows: rows}
	if len(rows) > 0 {
		payload.Latest = &rows[len(rows)-1]
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, &FetchError{Kind: KindDecode, URL: s.url, Err: err}
	}
	return json.RawMessage(data), nil
}
