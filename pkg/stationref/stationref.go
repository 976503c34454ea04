package stationref

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/rs/zerolog/log"
)

// StationTable is the ordered station reference for the line. Row
// order in the source file is the ordinal order along the line, south
// to north.
type StationTable struct {
	Stations []*ctdf.Station

	byName     map[string]*ctdf.Station
	byURLName  map[string]*ctdf.Station
	byStopCode map[string]stopCodeEntry
}

type stopCodeEntry struct {
	Station   *ctdf.Station
	Direction ctdf.Direction
}

// Load parses the station reference CSV. Ordinals are assigned from
// row order.
func Load(reader io.Reader) (*StationTable, error) {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	var stations []*ctdf.Station
	if err := gocsv.Unmarshal(reader, &stations); err != nil {
		return nil, fmt.Errorf("failed to parse station reference: %w", err)
	}

	table := &StationTable{
		Stations:   stations,
		byName:     map[string]*ctdf.Station{},
		byURLName:  map[string]*ctdf.Station{},
		byStopCode: map[string]stopCodeEntry{},
	}

	for index, station := range stations {
		station.Ordinal = index

		table.byName[strings.ToLower(station.Name)] = station

		if station.URLName != "" {
			table.byURLName[strings.ToLower(station.URLName)] = station
		}

		if station.StopCodeSouthbound != "" {
			table.byStopCode[station.StopCodeSouthbound] = stopCodeEntry{station, ctdf.DirectionSouthbound}
		}
		if station.StopCodeNorthbound != "" {
			table.byStopCode[station.StopCodeNorthbound] = stopCodeEntry{station, ctdf.DirectionNorthbound}
		}
	}

	log.Info().Int("stations", len(stations)).Msg("Loaded station reference")

	return table, nil
}

// LoadFile loads the station reference from a file on disk. Called
// once at process start; changes to the file require a restart.
func LoadFile(path string) (*StationTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open station reference: %w", err)
	}
	defer file.Close()

	return Load(file)
}

// LookupByName finds a station by its display name, case insensitive.
func (t *StationTable) LookupByName(name string) (*ctdf.Station, error) {
	station := t.byName[strings.ToLower(name)]
	if station == nil {
		return nil, fmt.Errorf("%w: %s", ctdf.ErrUnknownStation, name)
	}

	return station, nil
}

// LookupByURLName finds a station by the URL-safe name the operator
// publishes for it, e.g. "san-jose-diridon".
func (t *StationTable) LookupByURLName(urlName string) (*ctdf.Station, error) {
	station := t.byURLName[strings.ToLower(urlName)]
	if station == nil {
		return nil, fmt.Errorf("%w: %s", ctdf.ErrUnknownStation, urlName)
	}

	return station, nil
}

// LookupByStopCode resolves a directional stop code to its station and
// the platform direction that code belongs to.
func (t *StationTable) LookupByStopCode(code string) (*ctdf.Station, ctdf.Direction, bool) {
	entry, ok := t.byStopCode[code]
	if !ok {
		return nil, "", false
	}

	return entry.Station, entry.Direction, true
}
