package feeds

import (
	"context"
	"time"

	"github.com/railboard/railboard/pkg/config"
	"github.com/railboard/railboard/pkg/ctdf"
	"github.com/railboard/railboard/pkg/siri_vm"
	"github.com/railboard/railboard/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// fetchTimeout bounds each upstream request; a feed that can't answer
// in this window is treated as failed and the board degrades to
// whatever the other feed produced.
const fetchTimeout = 10 * time.Second

// Result is what one round of upstream fetches produced. Either side
// may have failed independently.
type Result struct {
	Snapshot    *siri_vm.Snapshot
	SnapshotErr error

	ScheduledCalls []ctdf.ScheduledCall
	ScheduleErr    error
}

// Fetcher issues the two independent upstream fetches concurrently.
type Fetcher struct {
	VehicleMonitoring *VehicleMonitoringClient
	Timetable         *TimetableClient
}

func NewFetcher(line config.Line) *Fetcher {
	responseCache := NewCache(line.CacheTTL())

	env := util.GetEnvironmentVariables()

	return &Fetcher{
		VehicleMonitoring: NewVehicleMonitoringClient(line.VehicleMonitoringURL, line.AgencyCode, env["RAILBOARD_511_API_KEY"], responseCache),
		Timetable:         NewTimetableClient(line.TimetableURL, line.RolloverCutoffHour, line.Location(), responseCache),
	}
}

// FetchBoth runs both fetches in parallel with bounded timeouts. A
// failure on one side never blocks or poisons the other - falling back
// between them is the board generator's job.
func (f *Fetcher) FetchBoth(ctx context.Context, now time.Time) Result {
	var result Result

	p := pool.New().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		result.Snapshot, result.SnapshotErr = f.VehicleMonitoring.Fetch(fetchCtx)
		if result.SnapshotErr != nil {
			log.Warn().Err(result.SnapshotErr).Msg("Live feed unavailable for this board")
		}

		return nil
	})

	p.Go(func(ctx context.Context) error {
		fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		result.ScheduledCalls, result.ScheduleErr = f.Timetable.Fetch(fetchCtx, now)
		if result.ScheduleErr != nil {
			log.Warn().Err(result.ScheduleErr).Msg("Timetable unavailable for this board")
		}

		return nil
	})

	p.Wait()

	return result
}
