package ctdf

import "errors"

var (
	// ErrFeedUnavailable - the vehicle monitoring feed was unreachable
	// or its envelope was malformed. Recovered by falling back to the
	// scheduled board.
	ErrFeedUnavailable = errors.New("vehicle monitoring feed unavailable")

	// ErrFeedStale - the feed answered but its response timestamp is
	// outside the staleness tolerance window.
	ErrFeedStale = errors.New("vehicle monitoring feed stale")

	// ErrUnknownStation - a station name that isn't in the station
	// reference table. Fatal to the request that supplied it.
	ErrUnknownStation = errors.New("unknown station")

	// ErrScheduleUnavailable - the timetable source yielded zero
	// parseable grids.
	ErrScheduleUnavailable = errors.New("timetable unavailable")
)
