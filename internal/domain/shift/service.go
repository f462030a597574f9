package shift

import (
	"context"
	"time"
)

// ShiftService defines business logic for shift lifecycle operations
type ShiftService interface {
	// ClockIn records a clock-in on the shift for the authenticated staff member
	ClockIn(ctx context.Context, shiftID string) (ClockEventResponse, error)

	// ClockOut records a clock-out on the shift for the authenticated staff member
	ClockOut(ctx context.Context, shiftID string) (ClockEventResponse, error)

	// GetShift retrieves a single shift
	GetShift(ctx context.Context, id string) (ShiftResponse, error)

	// ListMyShifts retrieves the authenticated staff member's shifts
	ListMyShifts(ctx context.Context) ([]ShiftResponse, error)

	// ListScheduleShifts retrieves the combined roster of a schedule
	ListScheduleShifts(ctx context.Context, scheduleID string) ([]ShiftResponse, error)

	// RefreshStatuses re-runs status recomputation over shifts nobody has
	// touched, picking up Scheduled->Late->Missed transitions. Returns the
	// number of shifts whose status changed.
	RefreshStatuses(ctx context.Context, now time.Time) (int, error)
}
