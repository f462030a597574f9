package schedule

import "errors"

var (
	// Assignment errors
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
	ErrInsufficientStaff = errors.New("not enough staff to run this strategy")
	ErrUnknownStrategy   = errors.New("unknown scheduling strategy")

	// General errors
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidStaff     = errors.New("staff member not found or not a staff role")
)
