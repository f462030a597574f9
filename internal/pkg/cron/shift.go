package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
)

// ShiftJobs re-runs status recomputation over shifts nobody has touched.
// Clock events recompute synchronously, but Scheduled -> Late -> Missed
// transitions happen from the passage of time alone, so something has to
// re-visit untouched shifts periodically.
type ShiftJobs struct {
	shiftService shift.ShiftService
	interval     time.Duration
}

func NewShiftJobs(shiftService shift.ShiftService, interval time.Duration) *ShiftJobs {
	return &ShiftJobs{
		shiftService: shiftService,
		interval:     interval,
	}
}

func (j *ShiftJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("refresh_shift_statuses", j.interval, j.RefreshShiftStatuses)
}

func (j *ShiftJobs) RefreshShiftStatuses(ctx context.Context) error {
	changed, err := j.shiftService.RefreshStatuses(ctx, time.Now())
	if err != nil {
		return err
	}
	if changed > 0 {
		slog.Info("Cron: Refreshed shift statuses", "changed", changed)
	}
	return nil
}
