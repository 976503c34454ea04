package ctdf

// Direction is one of the line's two travel directions. The ordinal
// scale of the station table runs south to north, so a trip towards
// lower ordinals is Northbound.
type Direction string

const (
	DirectionNorthbound Direction = "NB"
	DirectionSouthbound Direction = "SB"
)

type DayType string

const (
	DayTypeWeekday DayType = "Weekday"
	DayTypeWeekend DayType = "Weekend"
)

// DayTypeFor classifies a weekday index (time.Weekday) into the two
// service day types the timetable publishes.
func DayTypeFor(weekday int) DayType {
	if weekday == 0 || weekday == 6 {
		return DayTypeWeekend
	}

	return DayTypeWeekday
}

// ServiceLabel identifies which of the four timetable grids a record
// came from.
type ServiceLabel struct {
	Direction Direction
	DayType   DayType
}
