package stationref

import (
	"strconv"

	"github.com/railboard/railboard/pkg/ctdf"
)

// ResolveDirection classifies the trip from origin to destination.
// The station list runs south to north, so moving towards a lower
// ordinal is northbound.
func (t *StationTable) ResolveDirection(originName string, destinationName string) (ctdf.Direction, error) {
	origin, err := t.LookupByName(originName)
	if err != nil {
		return "", err
	}

	destination, err := t.LookupByName(destinationName)
	if err != nil {
		return "", err
	}

	if origin.Ordinal > destination.Ordinal {
		return ctdf.DirectionNorthbound, nil
	}

	return ctdf.DirectionSouthbound, nil
}

// DirectionFromStopCode is the stop-code parity fallback: even codes
// are southbound platforms, odd codes northbound. This is a documented
// quirk of the source data, not a general rule - only use it when a
// record carries no richer directional signal.
func DirectionFromStopCode(code string) (ctdf.Direction, bool) {
	n, err := strconv.Atoi(code)
	if err != nil {
		return "", false
	}

	if n%2 == 0 {
		return ctdf.DirectionSouthbound, true
	}

	return ctdf.DirectionNorthbound, true
}
