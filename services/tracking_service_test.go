// backend/services/tracking_service_test.go
package services_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/astrorient/skywatch/backend/services"
	"github.com/stretchr/testify/require"
)

func TestTrackingFetchAndStore(t *testing.T) {
	cache := newFakeCacheStore()
	source := &fakeSource{payload: json.RawMessage(`{"latitude":51.5,"longitude":-0.12}`)}
	svc := services.NewTrackingService(cache, source)

	require.NoError(t, svc.FetchAndStore())

	entry, err := svc.Latest()
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.Equal(t, services.SourcePosition, entry.Source)
	require.JSONEq(t, `{"latitude":51.5,"longitude":-0.12}`, string(entry.Payload))
}

func TestTrackingFetchAndStorePropagatesFetchError(t *testing.T) {
	cache := newFakeCacheStore()
	source := &fakeSource{err: errors.New("upstream down")}
	svc := services.NewTrackingService(cache, source)

	err := svc.FetchAndStore()
	require.Error(t, err)
	require.Empty(t, cache.entries)
}

func TestTrendTooFewSamples(t *testing.T) {
	cache := newFakeCacheStore()
	svc := services.NewTrackingService(cache, &fakeSource{})

	trend, err := svc.Trend()
	require.NoError(t, err)
	require.NotNil(t, trend)
	require.False(t, trend.Movement)
	require.Zero(t, trend.DeltaKm)
	require.Zero(t, trend.DtSec)
	require.Nil(t, trend.VelocityKmh)
	require.Nil(t, trend.FromTime)
	require.Nil(t, trend.ToTime)

	// still only one sample after a single write
	require.NoError(t, cache.Write(services.SourcePosition, json.RawMessage(`{"latitude":1,"longitude":2}`)))
	trend, err = svc.Trend()
	require.NoError(t, err)
	require.Zero(t, trend.DeltaKm)
	require.Nil(t, trend.FromTime)
}

func TestTrendTwoSamples(t *testing.T) {
	cache := newFakeCacheStore()
	svc := services.NewTrackingService(cache, &fakeSource{})

	// London then Paris, one minute apart
	require.NoError(t, cache.Write(services.SourcePosition,
		json.RawMessage(`{"latitude":51.5074,"longitude":-0.1278,"velocity":27400.0}`)))
	require.NoError(t, cache.Write(services.SourcePosition,
		json.RawMessage(`{"latitude":48.8566,"longitude":2.3522,"velocity":27500.5}`)))

	trend, err := svc.Trend()
	require.NoError(t, err)
	require.True(t, trend.Movement)
	require.InDelta(t, 344.0, trend.DeltaKm, 10.0)
	require.InDelta(t, 60.0, trend.DtSec, 0.001)
	require.NotNil(t, trend.VelocityKmh)
	require.Equal(t, 27500.5, *trend.VelocityKmh)
	require.NotNil(t, trend.FromTime)
	require.NotNil(t, trend.ToTime)
	require.NotNil(t, trend.FromLat)
	require.Equal(t, 51.5074, *trend.FromLat)
	require.NotNil(t, trend.ToLat)
	require.Equal(t, 48.8566, *trend.ToLat)
}

func TestTrendMissingCoordinates(t *testing.T) {
	cache := newFakeCacheStore()
	svc := services.NewTrackingService(cache, &fakeSource{})

	require.NoError(t, cache.Write(services.SourcePosition,
		json.RawMessage(`{"latitude":51.5074,"longitude":-0.1278}`)))
	require.NoError(t, cache.Write(services.SourcePosition,
		json.RawMessage(`{"velocity":27500.5}`)))

	trend, err := svc.Trend()
	require.NoError(t, err)
	require.False(t, trend.Movement)
	require.Zero(t, trend.DeltaKm)
	require.NotNil(t, trend.FromTime)
	require.NotNil(t, trend.ToTime)
	require.InDelta(t, 60.0, trend.DtSec, 0.001)
	require.NotNil(t, trend.VelocityKmh)
	require.Equal(t, 27500.5, *trend.VelocityKmh)
	require.Nil(t, trend.ToLat)
	require.Nil(t, trend.ToLon)
}

func TestTrendNegativeDtPreserved(t *testing.T) {
	cache := newFakeCacheStore()
	cache.clockStep = -time.Minute
	svc := services.NewTrackingService(cache, &fakeSource{})

	require.NoError(t, cache.Write(services.SourcePosition,
		json.RawMessage(`{"latitude":0,"longitude":0}`)))
	require.NoError(t, cache.Write(services.SourcePosition,
		json.RawMessage(`{"latitude":0,"longitude":1}`)))

	trend, err := svc.Trend()
	require.NoError(t, err)
	require.InDelta(t, -60.0, trend.DtSec, 0.001)
	require.True(t, trend.Movement)
}
