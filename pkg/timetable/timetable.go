package timetable

import (
	"fmt"
	"io"
	"time"

	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/rs/zerolog/log"
)

// Parse turns the scraped timetable page into upcoming scheduled
// calls. Only grids for the current service day type contribute rows,
// and only departures at or after now survive. A page with zero
// parseable grids is ErrScheduleUnavailable; individual bad grids or
// cells just drop out.
func Parse(reader io.Reader, now time.Time, cutoffHour int, location *time.Location) ([]ctdf.ScheduledCall, error) {
	rawGrids, err := ParseHTML(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ctdf.ErrScheduleUnavailable, err)
	}

	if len(rawGrids) != expectedGridCount {
		log.Warn().Int("tables", len(rawGrids)).Int("expected", expectedGridCount).Msg("Timetable page table count changed")
	}

	var grids []*Grid
	for _, cells := range rawGrids {
		if grid, ok := NewGrid(cells); ok {
			grids = append(grids, grid)
		}
	}

	if len(grids) == 0 {
		return nil, fmt.Errorf("%w: no grids with recognisable labels", ctdf.ErrScheduleUnavailable)
	}

	return flattenGrids(NewGrids(grids), now, cutoffHour, location), nil
}

func flattenGrids(grids *Grids, now time.Time, cutoffHour int, location *time.Location) []ctdf.ScheduledCall {
	localNow := now.In(location)
	currentDayType := ctdf.DayTypeFor(int(localNow.Weekday()))

	var calls []ctdf.ScheduledCall

	for _, grid := range grids.All() {
		if grid.Label.DayType != currentDayType {
			continue
		}

		for _, row := range grid.Rows {
			for column, timeCell := range row.Times {
				if column >= len(grid.TrainIDs) {
					break
				}

				if timeCell == "" || timeCell == placeholderCell {
					continue
				}

				resolved, err := NormalizeClockTime(timeCell, localNow, cutoffHour, location)
				if err != nil {
					log.Debug().Err(err).Str("station", row.StationName).Msg("Skipping unparseable time cell")
					continue
				}

				// The board only shows upcoming departures.
				if resolved.Before(localNow) {
					continue
				}

				etaMinutes := int(resolved.Sub(localNow).Minutes())

				calls = append(calls, ctdf.ScheduledCall{
					TrainID:       grid.TrainIDs[column],
					StationName:   row.StationName,
					ServiceLabel:  grid.Label,
					ScheduledTime: resolved,
					ETAMinutes:    etaMinutes,
					Display:       fmt.Sprintf("%d mins // %s", etaMinutes, resolved.Format("03:04 PM")),
				})
			}
		}
	}

	return calls
}
