package siri_vm

import (
	"strings"
	"testing"
	"time"

	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/railboard/railboard/pkg/stationref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stationsCSV = `stopname,urlname,lat,lon,stop1,stop2
San Francisco,san-francisco,37.7765,-122.3947,70012,70011
22nd Street,22nd-street,37.7575,-122.3924,70022,70021
Millbrae,millbrae,37.5997,-122.3868,70062,70061
Hillsdale,hillsdale,37.5378,-122.2972,70112,70111
`

func testStations(t *testing.T) *stationref.StationTable {
	t.Helper()

	table, err := stationref.Load(strings.NewReader(stationsCSV))
	require.NoError(t, err)

	return table
}

func TestNormalize(t *testing.T) {
	snapshot, err := ParseJSON([]byte(snapshotJSON))
	require.NoError(t, err)

	calls := Normalize(snapshot, testStations(t), time.UTC)

	t.Run("vehicle without onward calls is skipped entirely", func(t *testing.T) {
		for _, call := range calls {
			assert.NotEqual(t, "424", call.TrainID)
		}
	})

	t.Run("monitored call leads with sequence zero", func(t *testing.T) {
		require.Len(t, calls, 3)

		assert.Equal(t, "Hillsdale", calls[0].StationName)
		assert.Equal(t, 0, calls[0].StopSequence)

		// Onward calls are numbered from zero in feed order, matching
		// the upstream feed's own stops-away counting.
		assert.Equal(t, "Millbrae", calls[1].StationName)
		assert.Equal(t, 0, calls[1].StopSequence)

		assert.Equal(t, "San Francisco", calls[2].StationName)
		assert.Equal(t, 1, calls[2].StopSequence)
	})

	t.Run("direction comes from the feed's direction code", func(t *testing.T) {
		for _, call := range calls {
			assert.Equal(t, ctdf.DirectionNorthbound, call.Direction)
		}
	})

	t.Run("timestamps are localized and complete", func(t *testing.T) {
		assert.Equal(t, time.Date(2024, 3, 12, 15, 7, 0, 0, time.UTC), calls[0].AimedArrival)
		assert.Equal(t, time.Date(2024, 3, 12, 15, 10, 0, 0, time.UTC), calls[0].ExpectedArrival)
		assert.Equal(t, time.Date(2024, 3, 12, 15, 8, 0, 0, time.UTC), calls[0].AimedDeparture)
	})

	t.Run("distance is the rounded great-circle to the stop", func(t *testing.T) {
		// Vehicle at (37.58, -122.30), Hillsdale at (37.5378, -122.2972):
		// a hair under three miles.
		assert.InDelta(t, 2.9, calls[0].DistanceMiles, 0.2)
	})
}

func TestNormalizeSkipsBadRecords(t *testing.T) {
	stations := testStations(t)

	t.Run("unknown stop code drops the call, not the vehicle", func(t *testing.T) {
		var snapshot Snapshot

		journey := &MonitoredVehicleJourney{
			DirectionRef: "N",
			VehicleRef:   "518",
			MonitoredCall: &Call{
				StopPointRef:        "99999",
				AimedArrivalTime:    "2024-03-12T15:07:00Z",
				ExpectedArrivalTime: "2024-03-12T15:07:00Z",
				AimedDepartureTime:  "2024-03-12T15:07:00Z",
			},
		}
		journey.OnwardCalls.OnwardCall = []*Call{
			{
				StopPointRef:        "70011",
				AimedArrivalTime:    "2024-03-12T15:40:00Z",
				ExpectedArrivalTime: "2024-03-12T15:41:00Z",
				AimedDepartureTime:  "2024-03-12T15:42:00Z",
			},
		}

		snapshot.Siri.ServiceDelivery.VehicleMonitoringDelivery.VehicleActivity = []*VehicleActivity{
			{MonitoredVehicleJourney: journey},
		}

		calls := Normalize(&snapshot, stations, time.UTC)
		require.Len(t, calls, 1)
		assert.Equal(t, "San Francisco", calls[0].StationName)
	})

	t.Run("missing aimed arrival drops the call", func(t *testing.T) {
		var snapshot Snapshot

		journey := &MonitoredVehicleJourney{
			DirectionRef: "N",
			VehicleRef:   "518",
			MonitoredCall: &Call{
				StopPointRef: "70111",
			},
		}
		journey.OnwardCalls.OnwardCall = []*Call{
			{
				StopPointRef:     "70011",
				AimedArrivalTime: "2024-03-12T15:40:00Z",
			},
		}

		snapshot.Siri.ServiceDelivery.VehicleMonitoringDelivery.VehicleActivity = []*VehicleActivity{
			{MonitoredVehicleJourney: journey},
		}

		calls := Normalize(&snapshot, stations, time.UTC)
		require.Len(t, calls, 1)

		// Missing expected and departure times fall back to the aimed
		// arrival.
		assert.Equal(t, calls[0].AimedArrival, calls[0].ExpectedArrival)
		assert.Equal(t, calls[0].AimedArrival, calls[0].AimedDeparture)
	})

	t.Run("empty direction code falls back to the stop code's platform", func(t *testing.T) {
		var snapshot Snapshot

		journey := &MonitoredVehicleJourney{
			VehicleRef: "612",
			MonitoredCall: &Call{
				StopPointRef:        "70112",
				AimedArrivalTime:    "2024-03-12T15:07:00Z",
				ExpectedArrivalTime: "2024-03-12T15:07:00Z",
			},
		}
		journey.OnwardCalls.OnwardCall = []*Call{
			{
				StopPointRef:        "70012",
				AimedArrivalTime:    "2024-03-12T15:30:00Z",
				ExpectedArrivalTime: "2024-03-12T15:30:00Z",
			},
		}

		snapshot.Siri.ServiceDelivery.VehicleMonitoringDelivery.VehicleActivity = []*VehicleActivity{
			{MonitoredVehicleJourney: journey},
		}

		calls := Normalize(&snapshot, stations, time.UTC)
		require.Len(t, calls, 2)

		for _, call := range calls {
			assert.Equal(t, ctdf.DirectionSouthbound, call.Direction)
		}
	})
}
