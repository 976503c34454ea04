package timetable

import (
	"regexp"
	"strings"

	"github.com/railboard/railboard/pkg/ctdf"
)

// Dataset labels look like "Northbound Service - Weekday Service to
// San Francisco". Only the direction and day type words matter.
var serviceLabelRegex = regexp.MustCompile(`(?i)(\w+bound).*?(Weekday|Weekend)`)

// ParseServiceLabel classifies a grid's dataset label. Returns nil for
// labels that don't match - callers must exclude those grids rather
// than guess.
func ParseServiceLabel(label string) *ctdf.ServiceLabel {
	match := serviceLabelRegex.FindStringSubmatch(label)
	if match == nil {
		return nil
	}

	var direction ctdf.Direction
	switch strings.ToLower(match[1]) {
	case "northbound":
		direction = ctdf.DirectionNorthbound
	case "southbound":
		direction = ctdf.DirectionSouthbound
	default:
		return nil
	}

	dayType := ctdf.DayTypeWeekday
	if strings.EqualFold(match[2], "weekend") {
		dayType = ctdf.DayTypeWeekend
	}

	return &ctdf.ServiceLabel{
		Direction: direction,
		DayType:   dayType,
	}
}
