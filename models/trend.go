// backend/models/trend.go
package models

import "time"

// Trend is the movement signal derived from the two most recent position
// samples. With fewer than two samples all fields stay at their zero values.
// DtSec is signed: a negative value means the two newest rows were written
// out of chronological order. VelocityKmh is the upstream-reported velocity
// of the newer sample, never a value derived from DeltaKm/DtSec.
type Trend struct {
	Movement    bool       `json:"movement"`
	DeltaKm     float64    `json:"delta_km"`
	DtSec       float64    `json:"dt_sec"`
	VelocityKmh *float64   `json:"velocity_kmh,omitempty"`
	FromTime    *time.Time `json:"from_time,omitempty"`
	ToTime      *time.Time `json:"to_time,omitempty"`
	FromLat     *float64   `json:"from_lat,omitempty"`
	FromLon     *float64   `json:"from_lon,omitempty"`
	ToLat       *float64   `json:"to_lat,omitempty"`
	ToLon       *float64   `json:"to_lon,omitempty"`
}
