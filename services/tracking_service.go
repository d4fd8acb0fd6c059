// backend/services/tracking_service.go
package services

import (
	"github.com/astrorient/skywatch/backend/fetcher"
	"github.com/astrorient/skywatch/backend/models"
	"github.com/astrorient/skywatch/backend/utils"
)

// SourcePosition is the cache tag the position time series is stored under.
const SourcePosition = "position"

// movementThresholdKm is the minimum displacement between two consecutive
// samples that counts as movement.
const movementThresholdKm = 0.1

// TrackingService owns the position time series: fetching samples, reading
// the latest one, and deriving the movement trend.
type TrackingService struct {
	cache  CacheStore
	source fetcher.Source
}

func NewTrackingService(cache CacheStore, source fetcher.Source) *TrackingService {
	return &TrackingService{cache: cache, source: source}
}

// FetchAndStore fetches the current position and appends it to the cache.
func (s *TrackingService) FetchAndStore() error {
	payload, err := s.source.Fetch()
	if err != nil {
		return err
	}
	return s.cache.Write(SourcePosition, payload)
}

// Latest returns the most recent position sample, or nil if none exists yet.
func (s *TrackingService) Latest() (*models.CacheEntry, error) {
	return s.cache.Latest(SourcePosition)
}

// Trend derives the movement signal from the two most recent samples. With
// fewer than two samples it returns a zero-valued trend. Coordinates missing
// from either payload zero out the distance but leave times and velocity
// populated. DtSec keeps its sign when rows are out of chronological order.
func (s *TrackingService) Trend() (*models.Trend, error) {
	rows, err := s.cache.LastN(SourcePosition, 2)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return &models.Trend{}, nil
	}

	newer, older := rows[0], rows[1]

	lat1 := utils.Num(older.Payload, "latitude")
	lon1 := utils.Num(older.Payload, "longitude")
	lat2 := utils.Num(newer.Payload, "latitude")
	lon2 := utils.Num(newer.Payload, "longitude")

	var deltaKm float64
	var movement bool
	if lat1 != nil && lon1 != nil && lat2 != nil && lon2 != nil {
		deltaKm = utils.HaversineKm(*lat1, *lon1, *lat2, *lon2)
		movement = deltaKm > movementThresholdKm
	}

	fromTime := older.FetchedAt
	toTime := newer.FetchedAt

	return &models.Trend{
		Movement:    movement,
		DeltaKm:     deltaKm,
		DtSec:       toTime.Sub(fromTime).Seconds(),
		VelocityKmh: utils.Num(newer.Payload, "velocity"),
		FromTime:    &fromTime,
		ToTime:      &toTime,
		FromLat:     lat1,
		FromLon:     lon1,
		ToLat:       lat2,
		ToLon:       lon2,
	}, nil
}
