package schedule

import (
	"context"

	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
)

// ScheduleService defines business logic for schedule management
type ScheduleService interface {
	// CreateSchedule creates an empty schedule covering a date range (admin only)
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)

	// GetSchedule retrieves a schedule together with its shifts
	GetSchedule(ctx context.Context, id string) (ScheduleResponse, error)

	// ListSchedules retrieves all schedules without their shifts
	ListSchedules(ctx context.Context) ([]ScheduleResponse, error)

	// AssignSchedule runs the selected strategy over the roster and persists
	// the generated shifts atomically (admin only)
	AssignSchedule(ctx context.Context, req AssignScheduleRequest) (ScheduleResponse, error)

	// ScheduleShift creates a single shift directly (admin only)
	ScheduleShift(ctx context.Context, req ScheduleShiftRequest) (shift.ShiftResponse, error)

	// DeleteSchedule removes a schedule and cascades to its shifts (admin only)
	DeleteSchedule(ctx context.Context, id string) error
}
