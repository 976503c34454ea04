package board

import (
	"math"
	"time"

	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/railboard/railboard/pkg/ranking"
	"github.com/railboard/railboard/pkg/siri_vm"
	"github.com/railboard/railboard/pkg/util"
)

// delayToleranceMinutes absorbs rounding between the live and aimed
// clocks before a train is flagged as delayed.
const delayToleranceMinutes = 1

func liveRows(request Request, station *ctdf.Station) []ctdf.ArrivalRow {
	location := request.Now.Location()

	calls := siri_vm.Normalize(request.Snapshot, request.Stations, location)

	// A destination that isn't a line terminal only keeps trains whose
	// itinerary actually calls there. Terminals are reached by every
	// train in that direction, so they only need the direction filter.
	if narrowTo, ok := narrowDestination(request); ok {
		servingTrains := map[string]bool{}
		for _, call := range calls {
			if call.StationName == narrowTo {
				servingTrains[call.TrainID] = true
			}
		}

		util.InPlaceFilter(&calls, func(call ctdf.LiveCall) bool {
			return servingTrains[call.TrainID]
		})
	}

	resolver := ranking.NewResolver(request.Line.StationSuffix)

	originOfRecord := map[string]ctdf.LiveCall{}
	for _, call := range calls {
		if _, done := originOfRecord[call.TrainID]; done {
			continue
		}

		if origin, ok := resolver.OriginOfRecord(call.TrainID, calls); ok {
			originOfRecord[call.TrainID] = origin
		}
	}

	var rows []ctdf.ArrivalRow

	for _, call := range calls {
		if call.StationName != station.Name {
			continue
		}

		etaMinutes := floorMinutes(call.ExpectedArrival.Sub(request.Now))
		scheduledETAMinutes := floorMinutes(call.AimedArrival.Sub(request.Now))

		// Trains already past the stop don't belong on an arrival board.
		if etaMinutes < 0 {
			continue
		}

		eta := etaMinutes
		scheduledETA := scheduledETAMinutes

		rows = append(rows, ctdf.ArrivalRow{
			TrainID:             call.TrainID,
			TrainType:           TrainTypeFor(call.TrainID),
			Direction:           call.Direction,
			ETAMinutes:          &eta,
			ScheduledETAMinutes: &scheduledETA,
			Delayed:             etaMinutes > scheduledETAMinutes+delayToleranceMinutes,
			StopsAwayLabel:      resolver.StopsAwayLabel(call, originOfRecord[call.TrainID]),
			Source:              ctdf.BoardSourceLive,
		})
	}

	return rows
}

func scheduledRows(request Request, station *ctdf.Station) []ctdf.ArrivalRow {
	var rows []ctdf.ArrivalRow

	for _, call := range request.ScheduledCalls {
		if call.StationName != station.Name {
			continue
		}

		scheduledETA := call.ETAMinutes

		rows = append(rows, ctdf.ArrivalRow{
			TrainID:             call.TrainID,
			TrainType:           TrainTypeFor(call.TrainID),
			Direction:           call.ServiceLabel.Direction,
			ScheduledETAMinutes: &scheduledETA,
			StopsAwayLabel:      call.Display,
			Source:              ctdf.BoardSourceScheduled,
		})
	}

	return rows
}

// narrowDestination reports whether live rows must be narrowed to
// trains serving the requested destination.
func narrowDestination(request Request) (string, bool) {
	if request.Destination == "" || request.Destination == request.Station {
		return "", false
	}

	for _, terminal := range request.Line.TerminalStations {
		if request.Destination == terminal {
			return "", false
		}
	}

	return request.Destination, true
}

func floorMinutes(duration time.Duration) int {
	return int(math.Floor(duration.Minutes()))
}
