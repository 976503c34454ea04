package board

import (
	"fmt"
	"time"

	"github.com/railboard/railboard/pkg/config"
	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/railboard/railboard/pkg/siri_vm"
	"github.com/railboard/railboard/pkg/stationref"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Request carries everything one board generation needs. The live
// snapshot and scheduled calls arrive as explicit arguments - there is
// no ambient fetched-once state to read.
type Request struct {
	Station     string
	Destination string

	Snapshot       *siri_vm.Snapshot
	ScheduledCalls []ctdf.ScheduledCall

	// ScheduleErr reports a timetable source that failed entirely;
	// generation can still proceed on live data alone.
	ScheduleErr error

	Stations *stationref.StationTable
	Line     config.Line
	Now      time.Time
}

type Board struct {
	Rows []ctdf.ArrivalRow `groups:"basic"`

	Source     ctdf.BoardSource `groups:"basic"`
	FeedHealth ctdf.FeedHealth  `groups:"basic"`

	Warning string `groups:"basic"`
}

// Generate builds the arrival board for a station: the live board when
// telemetry is fresh and non-empty, otherwise the scheduled board. An
// empty row list is a valid answer; an error means the request itself
// could not be served.
func Generate(request Request) (*Board, error) {
	station, err := request.Stations.LookupByName(request.Station)
	if err != nil {
		return nil, err
	}

	health, warning := feedHealth(request)

	if health == ctdf.FeedHealthOk {
		rows := liveRows(request, station)

		board := &Board{
			Rows:       rows,
			Source:     ctdf.BoardSourceLive,
			FeedHealth: health,
		}

		return filterAndSort(board, request)
	}

	if request.ScheduleErr != nil {
		// Nothing left to serve the board from.
		liveErr := ctdf.ErrFeedUnavailable
		if health == ctdf.FeedHealthStale {
			liveErr = ctdf.ErrFeedStale
		}

		return nil, fmt.Errorf("%w: %s", request.ScheduleErr, liveErr)
	}

	board := &Board{
		Rows:       scheduledRows(request, station),
		Source:     ctdf.BoardSourceScheduled,
		FeedHealth: health,
		Warning:    warning,
	}

	return filterAndSort(board, request)
}

// feedHealth classifies the live feed for this request. An absent
// snapshot and an empty vehicle list are both "unavailable"; a
// response whose server clock is skewed beyond tolerance is "stale".
func feedHealth(request Request) (ctdf.FeedHealth, string) {
	if request.Snapshot == nil {
		return ctdf.FeedHealthUnavailable, ""
	}

	if len(request.Snapshot.Siri.ServiceDelivery.VehicleMonitoringDelivery.VehicleActivity) == 0 {
		return ctdf.FeedHealthUnavailable, ""
	}

	health := request.Snapshot.Freshness(request.Now, request.Line.StalenessTolerance())
	if health == ctdf.FeedHealthStale {
		responseTime, _ := request.Snapshot.ResponseTime(request.Now.Location())
		skew := request.Now.Sub(responseTime)

		log.Warn().Dur("skew", skew).Msg("Vehicle monitoring feed clock out of tolerance")

		return health, fmt.Sprintf("live feed clock is off by %s, showing scheduled times", skew)
	}

	return health, ""
}

func filterAndSort(board *Board, request Request) (*Board, error) {
	if request.Destination != "" && request.Destination != request.Station {
		direction, err := request.Stations.ResolveDirection(request.Station, request.Destination)
		if err != nil {
			return nil, err
		}

		filtered := board.Rows[:0:0]
		for _, row := range board.Rows {
			if row.Direction == direction {
				filtered = append(filtered, row)
			}
		}
		board.Rows = filtered
	}

	slices.SortStableFunc(board.Rows, func(a, b ctdf.ArrivalRow) int {
		return rowSortKey(a) - rowSortKey(b)
	})

	if board.Rows == nil {
		board.Rows = []ctdf.ArrivalRow{}
	}

	return board, nil
}

// rowSortKey orders rows by the live ETA when one exists, otherwise by
// the scheduled ETA. Ties keep source order via the stable sort.
func rowSortKey(row ctdf.ArrivalRow) int {
	if row.ETAMinutes != nil {
		return *row.ETAMinutes
	}

	if row.ScheduledETAMinutes != nil {
		return *row.ScheduledETAMinutes
	}

	return 0
}
