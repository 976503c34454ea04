package timetable

import (
	"fmt"
	"strings"
	"time"

	"github.com/railboard/railboard/pkg/util"
)

const clockFormat = "3:04pm"

// NormalizeClockTime resolves a raw timetable cell like "8:05p" or
// "12:30a" to a concrete localized timestamp on or after now's
// calendar date. Trailing bare "a"/"p" are the source's shorthand for
// am/pm. Hours before cutoffHour belong to the following calendar day,
// covering service that runs past midnight.
func NormalizeClockTime(raw string, now time.Time, cutoffHour int, location *time.Location) (time.Time, error) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))

	if strings.HasSuffix(cleaned, "a") && !strings.HasSuffix(cleaned, "am") {
		cleaned = cleaned + "m"
	} else if strings.HasSuffix(cleaned, "p") && !strings.HasSuffix(cleaned, "pm") {
		cleaned = cleaned + "m"
	}

	clockTime, err := time.Parse(clockFormat, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time cell %q: %w", raw, err)
	}

	resolved := util.AddTimeToDate(now.In(location), clockTime)

	if resolved.Hour() < cutoffHour {
		resolved = resolved.AddDate(0, 0, 1)
	}

	return resolved, nil
}
