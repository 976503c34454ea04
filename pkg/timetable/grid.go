package timetable

import (
	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/rs/zerolog/log"
)

// placeholderCell marks a station a train does not stop at.
const placeholderCell = "--"

// Grid is one labelled timetable table: a service label, a header row
// of train identifiers and a station/time matrix.
type Grid struct {
	Label    ctdf.ServiceLabel
	RawLabel string

	TrainIDs []string

	Rows []GridRow
}

type GridRow struct {
	Zone        string
	StationName string
	Times       []string
}

// NewGrid interprets a raw cell matrix as a timetable grid. The first
// row carries the dataset label, the second the train identifiers
// (starting at column 2), and the remainder the station rows. Grids
// whose label doesn't parse are rejected - their rows must never reach
// the board under a guessed direction.
func NewGrid(cells [][]string) (*Grid, bool) {
	if len(cells) < 3 {
		return nil, false
	}

	rawLabel := cells[0][0]

	label := ParseServiceLabel(rawLabel)
	if label == nil {
		log.Debug().Str("label", rawLabel).Msg("Skipping timetable grid with unrecognised label")
		return nil, false
	}

	headerRow := cells[1]
	if len(headerRow) < 3 {
		return nil, false
	}

	grid := &Grid{
		Label:    *label,
		RawLabel: rawLabel,
		TrainIDs: headerRow[2:],
	}

	// The source markup repeats two filler rows between the header and
	// the first station.
	stationCells := nonEmptyRows(cells[2:])
	if len(stationCells) < 2 {
		return nil, false
	}
	stationCells = stationCells[2:]

	for _, row := range stationCells {
		if len(row) < 3 {
			continue
		}

		grid.Rows = append(grid.Rows, GridRow{
			Zone:        row[0],
			StationName: row[1],
			Times:       row[2:],
		})
	}

	return grid, true
}

func nonEmptyRows(rows [][]string) [][]string {
	var kept [][]string

	for _, row := range rows {
		for _, cell := range row {
			if cell != "" {
				kept = append(kept, row)
				break
			}
		}
	}

	return kept
}

// Grids holds the four service grids, addressable by what they are
// rather than by their position on the page.
type Grids struct {
	grids []*Grid
}

func NewGrids(grids []*Grid) *Grids {
	return &Grids{grids: grids}
}

func (g *Grids) All() []*Grid {
	return g.grids
}

func (g *Grids) find(direction ctdf.Direction, dayType ctdf.DayType) *Grid {
	for _, grid := range g.grids {
		if grid.Label.Direction == direction && grid.Label.DayType == dayType {
			return grid
		}
	}

	return nil
}

func (g *Grids) WeekdayNorthbound() *Grid {
	return g.find(ctdf.DirectionNorthbound, ctdf.DayTypeWeekday)
}

func (g *Grids) WeekdaySouthbound() *Grid {
	return g.find(ctdf.DirectionSouthbound, ctdf.DayTypeWeekday)
}

func (g *Grids) WeekendNorthbound() *Grid {
	return g.find(ctdf.DirectionNorthbound, ctdf.DayTypeWeekend)
}

func (g *Grids) WeekendSouthbound() *Grid {
	return g.find(ctdf.DirectionSouthbound, ctdf.DayTypeWeekend)
}
