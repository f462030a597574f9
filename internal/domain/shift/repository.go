package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for shift records.
type ShiftRepository interface {
	// Create persists a single shift
	Create(ctx context.Context, newShift Shift) (Shift, error)

	// CreateBatch persists a strategy run's shifts; callers wrap it in a
	// transaction so a failed run never leaves a partially-assigned schedule
	CreateBatch(ctx context.Context, shifts []Shift) ([]Shift, error)

	// GetByID retrieves a shift by ID
	GetByID(ctx context.Context, id string) (Shift, error)

	// ListBySchedule retrieves a schedule's shifts ordered by start_time,
	// joined with the assigned staff member's display name
	ListBySchedule(ctx context.Context, scheduleID string) ([]Shift, error)

	// ListByStaff retrieves a staff member's shifts ordered by start_time
	ListByStaff(ctx context.Context, staffID string) ([]Shift, error)

	// Update persists timing, clock and status fields of an existing shift
	Update(ctx context.Context, s Shift) error

	// ListOpenBefore retrieves shifts with no clock-in whose window has been
	// entered or passed by the given instant and whose status may be stale.
	// Used by the periodic status re-scan.
	ListOpenBefore(ctx context.Context, now time.Time) ([]Shift, error)

	// DeleteBySchedule removes all shifts owned by a schedule
	DeleteBySchedule(ctx context.Context, scheduleID string) error
}
