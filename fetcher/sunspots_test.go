// backend/fetcher/sunspots_test.go
package fetcher_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/astrorient/skywatch/backend/fetcher"
	"github.com/stretchr/testify/require"
)

const sunspotCSV = "date,sunspot_number,stdev,observations\n" +
	"2024-01-01,55.1,3.2,21\n" +
	"2024-01-02,60.4,2.9,19\n"

func TestSunspotSourceFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sunspotCSV))
	}))
	defer server.Close()

	source := fetcher.NewSunspotSource(fetcher.NewClient(5*time.Second), server.URL)
	payload, err := source.Fetch()
	require.NoError(t, err)

	var decoded struct {
		Rows []struct {
			Date         string  `json:"date"`
			SunspotIndex float64 `json:"sunspot_number"`
		} `json:"rows"`
		Latest *struct {
			Date string `json:"date"`
		} `json:"latest"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Len(t, decoded.Rows, 2)
	require.Equal(t, 55.1, decoded.Rows[0].SunspotIndex)
	require.NotNil(t, decoded.Latest)
	require.Equal(t, "2024-01-02", decoded.Latest.Date)
}

func TestSunspotSourceMalformedCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("date,sunspot_number\n\"unclosed"))
	}))
	defer server.Close()

	source := fetcher.NewSunspotSource(fetcher.NewClient(5*time.Second), server.URL)
	_, err := source.Fetch()

	var fe *fetcher.FetchError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, fetcher.KindDecode, fe.Kind)
}
