package siri_vm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/railboard/railboard/pkg/ctdf"
)

// ResponseTimestampFormat is how the vehicle monitoring endpoint
// renders its timestamps.
const ResponseTimestampFormat = "2006-01-02T15:04:05Z"

// Snapshot is the SIRI VehicleMonitoring envelope the feed returns.
type Snapshot struct {
	Siri struct {
		ServiceDelivery struct {
			ResponseTimestamp string
			ProducerRef       string

			VehicleMonitoringDelivery struct {
				ResponseTimestamp string

				VehicleActivity []*VehicleActivity
			}
		}
	}
}

// ParseJSON decodes a vehicle monitoring response body. The endpoint
// serves UTF-8 with a byte order mark, which encoding/json rejects, so
// it is stripped first. A missing VehicleActivity array means the feed
// has nothing to say and is treated as unavailable.
func ParseJSON(data []byte) (*Snapshot, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %s", ctdf.ErrFeedUnavailable, err)
	}

	if snapshot.Siri.ServiceDelivery.VehicleMonitoringDelivery.VehicleActivity == nil {
		return nil, fmt.Errorf("%w: no vehicle activity in response", ctdf.ErrFeedUnavailable)
	}

	return &snapshot, nil
}

// ResponseTime parses the envelope's server timestamp, localized to
// the given timezone.
func (s *Snapshot) ResponseTime(location *time.Location) (time.Time, error) {
	raw := s.Siri.ServiceDelivery.ResponseTimestamp

	responseTime, err := time.Parse(ResponseTimestampFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse response timestamp %q: %w", raw, err)
	}

	return responseTime.In(location), nil
}

// Freshness compares the snapshot's server timestamp against now. A
// skew beyond the tolerance in either direction marks the feed stale -
// callers must fall back to the scheduled board and surface a warning.
func (s *Snapshot) Freshness(now time.Time, tolerance time.Duration) ctdf.FeedHealth {
	responseTime, err := s.ResponseTime(now.Location())
	if err != nil {
		return ctdf.FeedHealthUnavailable
	}

	skew := now.Sub(responseTime)
	if skew < 0 {
		skew = -skew
	}

	if skew > tolerance {
		return ctdf.FeedHealthStale
	}

	return ctdf.FeedHealthOk
}
