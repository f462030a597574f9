package shift

import "errors"

// Shift domain errors
var (
	// Clock event errors
	ErrNotAssignedStaff      = errors.New("shift is assigned to another staff member")
	ErrAlreadyClockedIn      = errors.New("you have already clocked in for this shift")
	ErrAlreadyClockedOut     = errors.New("you have already clocked out of this shift")
	ErrNotClockedIn          = errors.New("you have not clocked in for this shift")
	ErrClockOutBeforeClockIn = errors.New("clock-out cannot precede clock-in")

	// General errors
	ErrShiftNotFound  = errors.New("shift not found")
	ErrInvalidWindow  = errors.New("shift end_time must be after start_time")
	ErrStaffIDMissing = errors.New("every shift must carry a staff ID")
)
