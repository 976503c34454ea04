package ctdf

import "time"

// ScheduledCall is one (train, station, time) record parsed out of the
// published timetable grids. ScheduledTime is always resolved to the
// next occurrence at or after parse time, localized to the line's
// civil timezone.
type ScheduledCall struct {
	TrainID     string
	StationName string

	ServiceLabel ServiceLabel

	ScheduledTime time.Time

	ETAMinutes int
	Display    string
}

// LiveCall is one remaining stop on an active vehicle's itinerary.
// StopSequence 0 is the vehicle's immediate next stop. Rebuilt fresh
// on every poll, never persisted.
type LiveCall struct {
	TrainID   string
	Direction Direction

	StationName  string
	StopCode     string
	StopSequence int

	AimedArrival    time.Time
	ExpectedArrival time.Time
	AimedDeparture  time.Time

	DistanceMiles float64
}
