package timetable

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableHTML(label string, trains []string, stationRows [][]string) string {
	var builder strings.Builder

	builder.WriteString("<table>")

	builder.WriteString(fmt.Sprintf("<tr><th>%s</th></tr>", label))

	builder.WriteString("<tr><th>Zone</th><th>Station</th>")
	for _, train := range trains {
		builder.WriteString(fmt.Sprintf("<th>%s</th>", train))
	}
	builder.WriteString("</tr>")

	// The source markup carries two filler rows between the header and
	// the first station.
	builder.WriteString("<tr><td>Zone</td><td>Station</td></tr>")
	builder.WriteString("<tr><td>Zone</td><td>Station</td></tr>")

	for _, row := range stationRows {
		builder.WriteString("<tr>")
		for _, cell := range row {
			builder.WriteString(fmt.Sprintf("<td>%s</td>", cell))
		}
		builder.WriteString("</tr>")
	}

	builder.WriteString("</table>")

	return builder.String()
}

func timetablePage() string {
	weekdayNB := tableHTML("Northbound Service - Weekday Service to San Francisco",
		[]string{"101", "423"},
		[][]string{
			{"4", "Hillsdale", "5:00p", "5:40p"},
			{"1", "San Francisco", "6:05p", "--"},
		})

	weekdaySB := tableHTML("Southbound Service - Weekday Service to San Jose",
		[]string{"102", "424"},
		[][]string{
			{"4", "Hillsdale", "9:00a", "5:55p"},
			{"6", "San Jose Diridon", "", "7:10p"},
		})

	weekendNB := tableHTML("Northbound Service - Weekend Service to San Francisco",
		[]string{"601"},
		[][]string{
			{"4", "Hillsdale", "5:10p"},
		})

	weekendSB := tableHTML("Southbound Service - Weekend Service to San Jose",
		[]string{"602"},
		[][]string{
			{"4", "Hillsdale", "5:20p"},
		})

	return "<html><body>" + weekdayNB + weekdaySB + weekendNB + weekendSB + "</body></html>"
}

func TestParse(t *testing.T) {
	location := time.UTC
	// A Tuesday afternoon.
	now := time.Date(2024, 3, 12, 15, 0, 0, 0, location)

	calls, err := Parse(strings.NewReader(timetablePage()), now, 4, location)
	require.NoError(t, err)

	t.Run("only weekday grids contribute on a Tuesday", func(t *testing.T) {
		for _, call := range calls {
			assert.Equal(t, ctdf.DayTypeWeekday, call.ServiceLabel.DayType)
		}
	})

	t.Run("placeholder and empty cells are skipped", func(t *testing.T) {
		for _, call := range calls {
			assert.NotEmpty(t, call.TrainID)

			if call.TrainID == "423" {
				assert.NotEqual(t, "San Francisco", call.StationName)
			}
			if call.TrainID == "102" {
				assert.NotEqual(t, "San Jose Diridon", call.StationName)
			}
		}
	})

	t.Run("departures already past are discarded", func(t *testing.T) {
		// Train 102 calls at Hillsdale at 9:00a, six hours before now.
		for _, call := range calls {
			assert.False(t, call.ScheduledTime.Before(now), "call %s at %s is in the past", call.TrainID, call.StationName)
			if call.TrainID == "102" {
				t.Errorf("train 102's only call is in the past and should be gone")
			}
		}
	})

	t.Run("eta and display are derived from the resolved time", func(t *testing.T) {
		var found bool
		for _, call := range calls {
			if call.TrainID == "101" && call.StationName == "Hillsdale" {
				found = true
				assert.Equal(t, time.Date(2024, 3, 12, 17, 0, 0, 0, location), call.ScheduledTime)
				assert.Equal(t, 120, call.ETAMinutes)
				assert.Equal(t, "120 mins // 05:00 PM", call.Display)
				assert.Equal(t, ctdf.DirectionNorthbound, call.ServiceLabel.Direction)
			}
		}
		assert.True(t, found)
	})

	t.Run("weekend grids contribute on a Saturday", func(t *testing.T) {
		saturday := time.Date(2024, 3, 16, 15, 0, 0, 0, location)

		weekendCalls, err := Parse(strings.NewReader(timetablePage()), saturday, 4, location)
		require.NoError(t, err)
		require.NotEmpty(t, weekendCalls)

		for _, call := range weekendCalls {
			assert.Equal(t, ctdf.DayTypeWeekend, call.ServiceLabel.DayType)
		}
	})
}

func TestParseDegradation(t *testing.T) {
	location := time.UTC
	now := time.Date(2024, 3, 12, 15, 0, 0, 0, location)

	t.Run("page without tables is unavailable", func(t *testing.T) {
		_, err := Parse(strings.NewReader("<html><body><p>maintenance</p></body></html>"), now, 4, location)
		assert.ErrorIs(t, err, ctdf.ErrScheduleUnavailable)
	})

	t.Run("page with only unrecognised labels is unavailable", func(t *testing.T) {
		page := tableHTML("Special Holiday Timetable", []string{"901"}, [][]string{{"4", "Hillsdale", "5:00p"}})

		_, err := Parse(strings.NewReader(page), now, 4, location)
		assert.ErrorIs(t, err, ctdf.ErrScheduleUnavailable)
	})

	t.Run("one bad grid degrades gracefully", func(t *testing.T) {
		good := tableHTML("Northbound Service - Weekday Service to San Francisco",
			[]string{"101"}, [][]string{{"4", "Hillsdale", "5:00p"}})
		bad := tableHTML("Mystery Grid", []string{"??"}, [][]string{{"4", "Hillsdale", "5:00p"}})

		calls, err := Parse(strings.NewReader(good+bad), now, 4, location)
		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, "101", calls[0].TrainID)
	})
}

func TestGridAccessors(t *testing.T) {
	rawGrids, err := ParseHTML(strings.NewReader(timetablePage()))
	require.NoError(t, err)
	require.Len(t, rawGrids, 4)

	var grids []*Grid
	for _, cells := range rawGrids {
		grid, ok := NewGrid(cells)
		require.True(t, ok)
		grids = append(grids, grid)
	}

	collection := NewGrids(grids)

	assert.Equal(t, "Northbound Service - Weekday Service to San Francisco", collection.WeekdayNorthbound().RawLabel)
	assert.Equal(t, "Southbound Service - Weekday Service to San Jose", collection.WeekdaySouthbound().RawLabel)
	assert.Equal(t, "Northbound Service - Weekend Service to San Francisco", collection.WeekendNorthbound().RawLabel)
	assert.Equal(t, "Southbound Service - Weekend Service to San Jose", collection.WeekendSouthbound().RawLabel)

	// Accessors are resolved by label, not page position, so a
	// reordered page still finds the right grid.
	reversed := NewGrids([]*Grid{grids[3], grids[2], grids[1], grids[0]})
	assert.Equal(t, collection.WeekdayNorthbound().RawLabel, reversed.WeekdayNorthbound().RawLabel)
}
