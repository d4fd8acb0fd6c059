// backend/fetcher/errors.go
package fetcher

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a fetch failed.
type ErrorKind int

const (
	// KindTransport covers connection and timeout failures.
	KindTransport ErrorKind = iota
	// KindUpstreamStatus covers non-2xx responses; StatusCode carries the code.
	KindUpstreamStatus
	// KindDecode covers bodies that are not valid for the expected format.
	KindDecode
)

// FetchError is the classified failure of one upstream fetch. The
// classification survives unchanged through the scheduler and on-demand
// paths so that error reporting can bucket it.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	URL        string
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindUpstreamStatus:
		return fmt.Sprintf("upstream %s returned HTTP %d", e.URL, e.StatusCode)
	case KindDecode:
		return fmt.Sprintf("failed to decode response from %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("failed to reach %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Code maps the classification onto the error code vocabulary used in API
// responses and logs.
func (e *FetchError) Code() string {
	switch e.Kind {
	case KindDecode:
		return "DECODE_ERROR"
	case KindUpstreamStatus:
		switch {
		case e.StatusCode == 403:
			return "UPSTREAM_403"
		case e.StatusCode == 404:
			return "UPSTREAM_404"
		case e.StatusCode == 429:
			return "UPSTREAM_429"
		case e.StatusCode >= 500 && e.StatusCode <= 599:
			return "UPSTREAM_5XX"
		default:
			return "UPSTREAM_ERROR"
		}
	default:
		return "UPSTREAM_UNREACHABLE"
	}
}

// CodeOf extracts the classified code from any error chain, falling back to
// a generic code for unclassified failures.
func CodeOf(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Code()
	}
	return "FETCH_ERROR"
}

// IsFetchError reports whether the error chain contains a classified fetch
// failure.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
