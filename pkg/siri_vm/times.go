package siri_vm

import (
	"fmt"
	"time"
)

func parseCallTime(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}

	return parsed.In(location), nil
}
