package siri_vm

import (
	"time"

	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/railboard/railboard/pkg/ranking"
	"github.com/railboard/railboard/pkg/stationref"
	"github.com/rs/zerolog/log"
)

// Normalize flattens a snapshot into one LiveCall per remaining stop
// per active vehicle. The monitored (next) call comes first with
// sequence 0, onward calls follow in feed order. Vehicles with no
// onward call data are skipped - there isn't enough information to
// place them on a board. Calls whose stop code isn't in the station
// reference, or whose timestamps don't parse, are skipped per-record.
func Normalize(snapshot *Snapshot, stations *stationref.StationTable, location *time.Location) []ctdf.LiveCall {
	var calls []ctdf.LiveCall

	for _, vehicle := range snapshot.Siri.ServiceDelivery.VehicleMonitoringDelivery.VehicleActivity {
		journey := vehicle.MonitoredVehicleJourney
		if journey == nil || journey.MonitoredCall == nil {
			continue
		}

		if len(journey.OnwardCalls.OnwardCall) == 0 {
			log.Debug().Str("vehicle", journey.VehicleRef).Msg("Skipping vehicle with no onward calls")
			continue
		}

		for _, call := range vehicleCalls(journey) {
			liveCall, ok := normalizeCall(journey, call.Call, call.Sequence, stations, location)
			if !ok {
				continue
			}

			calls = append(calls, liveCall)
		}
	}

	return calls
}

type sequencedCall struct {
	Call     *Call
	Sequence int
}

// vehicleCalls orders a vehicle's itinerary: the monitored call at
// sequence 0, then onward calls numbered from 0 in feed order. The
// shared 0 mirrors the upstream feed's numbering; consumers tie-break
// by station name.
func vehicleCalls(journey *MonitoredVehicleJourney) []sequencedCall {
	ordered := []sequencedCall{{Call: journey.MonitoredCall, Sequence: 0}}

	for index, onward := range journey.OnwardCalls.OnwardCall {
		ordered = append(ordered, sequencedCall{Call: onward, Sequence: index})
	}

	return ordered
}

func normalizeCall(journey *MonitoredVehicleJourney, call *Call, sequence int, stations *stationref.StationTable, location *time.Location) (ctdf.LiveCall, bool) {
	station, codeDirection, ok := stations.LookupByStopCode(call.StopPointRef)
	if !ok {
		log.Debug().Str("stopRef", call.StopPointRef).Msg("Skipping call at unknown stop code")
		return ctdf.LiveCall{}, false
	}

	direction, ok := feedDirection(journey, call, codeDirection)
	if !ok {
		return ctdf.LiveCall{}, false
	}

	aimedArrival, err := parseCallTime(call.AimedArrivalTime, location)
	if err != nil {
		log.Debug().Err(err).Str("vehicle", journey.VehicleRef).Msg("Skipping call with bad aimed arrival")
		return ctdf.LiveCall{}, false
	}

	expectedArrival, err := parseCallTime(call.ExpectedArrivalTime, location)
	if err != nil {
		// No live estimate for this call; treat it as running to plan.
		expectedArrival = aimedArrival
	}

	aimedDeparture, err := parseCallTime(call.AimedDepartureTime, location)
	if err != nil {
		aimedDeparture = aimedArrival
	}

	distance := ranking.Miles(
		journey.VehicleLocation.Latitude, journey.VehicleLocation.Longitude,
		station.Latitude, station.Longitude,
	)

	return ctdf.LiveCall{
		TrainID:         journey.VehicleRef,
		Direction:       direction,
		StationName:     station.Name,
		StopCode:        call.StopPointRef,
		StopSequence:    sequence,
		AimedArrival:    aimedArrival,
		ExpectedArrival: expectedArrival,
		AimedDeparture:  aimedDeparture,
		DistanceMiles:   ranking.RoundMiles(distance),
	}, true
}

// feedDirection prefers the explicit direction code carried by the
// feed. Only when that's absent does it fall back to the directional
// meaning of the stop code itself.
func feedDirection(journey *MonitoredVehicleJourney, call *Call, codeDirection ctdf.Direction) (ctdf.Direction, bool) {
	switch journey.DirectionRef {
	case "N":
		return ctdf.DirectionNorthbound, true
	case "S":
		return ctdf.DirectionSouthbound, true
	case "":
		if direction, ok := stationDirectionFallback(call.StopPointRef, codeDirection); ok {
			return direction, true
		}
	}

	log.Debug().Str("directionRef", journey.DirectionRef).Str("vehicle", journey.VehicleRef).Msg("Skipping call with unresolvable direction")

	return "", false
}

func stationDirectionFallback(stopCode string, codeDirection ctdf.Direction) (ctdf.Direction, bool) {
	if codeDirection != "" {
		return codeDirection, true
	}

	return stationref.DirectionFromStopCode(stopCode)
}
