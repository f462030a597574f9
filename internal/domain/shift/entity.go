package shift

import (
	"math"
	"time"
)

type Status string

const (
	StatusScheduled Status = "Scheduled" // Future shift, not yet started
	StatusOngoing   Status = "Ongoing"   // Clocked in, not yet clocked out
	StatusCompleted Status = "Completed" // Clocked in and out
	StatusMissed    Status = "Missed"    // Window passed with no clock-in
	StatusLate      Status = "Late"      // Window open, no clock-in yet
)

var StatusValues = []string{
	string(StatusScheduled),
	string(StatusOngoing),
	string(StatusCompleted),
	string(StatusMissed),
	string(StatusLate),
}

type Shift struct {
	ID         string
	ScheduleID string
	StaffID    string
	StartTime  time.Time
	EndTime    time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	StaffName string
}

// NextStatus derives the attendance status of the shift at the given instant.
// Rules are evaluated in precedence order; the first match wins. When no rule
// matches (now exactly equals start_time or end_time) the current status is
// returned unchanged rather than guessing a tie-break.
func (s *Shift) NextStatus(now time.Time) Status {
	switch {
	case s.ClockIn != nil && s.ClockOut != nil:
		return StatusCompleted
	case s.ClockIn != nil:
		return StatusOngoing
	case now.After(s.StartTime) && now.Before(s.EndTime):
		return StatusLate
	case now.After(s.EndTime):
		return StatusMissed
	case now.Before(s.StartTime):
		return StatusScheduled
	}
	return s.Status
}

// RefreshStatus recomputes and stores the status for the given instant.
// It reports whether the status changed.
func (s *Shift) RefreshStatus(now time.Time) bool {
	next := s.NextStatus(now)
	if next == s.Status {
		return false
	}
	s.Status = next
	return true
}

// PunchIn records a clock-in for the assigned staff member and recomputes
// the status. It enforces the identity and single-clock-in preconditions.
func (s *Shift) PunchIn(staffID string, now time.Time) error {
	if s.StaffID != staffID {
		return ErrNotAssignedStaff
	}
	if s.ClockIn != nil {
		return ErrAlreadyClockedIn
	}
	s.ClockIn = &now
	s.RefreshStatus(now)
	return nil
}

// PunchOut records a clock-out for the assigned staff member and recomputes
// the status. Clock-out requires a prior clock-in and may happen only once.
func (s *Shift) PunchOut(staffID string, now time.Time) error {
	if s.StaffID != staffID {
		return ErrNotAssignedStaff
	}
	if s.ClockIn == nil {
		return ErrNotClockedIn
	}
	if s.ClockOut != nil {
		return ErrAlreadyClockedOut
	}
	if now.Before(*s.ClockIn) {
		return ErrClockOutBeforeClockIn
	}
	s.ClockOut = &now
	s.RefreshStatus(now)
	return nil
}

// HoursWorked returns the clocked duration in hours rounded to two decimals.
// It is 0 until both clock-in and clock-out are recorded.
func (s *Shift) HoursWorked() float64 {
	if s.ClockIn == nil || s.ClockOut == nil {
		return 0
	}
	hours := s.ClockOut.Sub(*s.ClockIn).Hours()
	return math.Round(hours*100) / 100
}

// Day returns the calendar day the shift is attributed to, derived from
// start_time. Attribution never follows clock-in: a staff member clocking in
// after midnight still counts toward the day the shift started.
func (s *Shift) Day() string {
	return s.StartTime.Format("2006-01-02")
}
