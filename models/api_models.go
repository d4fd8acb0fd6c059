// backend/models/api_models.go
package models

import "time"

// APIResponse is the uniform response envelope for every endpoint.
type APIResponse struct {
	Ok    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse(data interface{}) APIResponse {
	return APIResponse{Ok: true, Data: data}
}

func ErrorResponse(code, message string) APIResponse {
	return APIResponse{Ok: false, Error: &APIError{Code: code, Message: message}}
}

type Health struct {
	Status string    `json:"status"`
	Now    time.Time `json:"now"`
}

// Summary aggregates the latest state of every cache source, the latest
// position sample, and the catalog row count. A source with no cached data
// yet appears as an empty object rather than an error.
type Summary struct {
	Sources      map[string]interface{} `json:"sources"`
	Position     interface{}            `json:"position"`
	CatalogCount int64                  `json:"catalog_count"`
}
