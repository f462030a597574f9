package schedule

import (
	"time"

	"github.com/RostrApp/rostr-backend-go/internal/domain/schedule"
	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
)

// AssignmentStrategy distributes shifts across a staff roster for a date
// range. Strategies are pure: they never touch the store, and they either
// produce a fully-assigned shift set or fail before returning any shift.
type AssignmentStrategy interface {
	Kind() schedule.StrategyKind
	Assign(roster []user.User, startDate, endDate time.Time) ([]shift.Shift, error)
}

// NewStrategy resolves a strategy kind to its implementation.
func NewStrategy(kind schedule.StrategyKind) (AssignmentStrategy, error) {
	switch kind {
	case schedule.StrategyEven:
		return &EvenStrategy{}, nil
	case schedule.StrategyMinimum:
		return &MinimumStrategy{}, nil
	case schedule.StrategyDayNight:
		return &DayNightStrategy{}, nil
	default:
		return nil, schedule.ErrUnknownStrategy
	}
}

// shiftWindow is a daily shift template expressed in hours from midnight.
// An endHour of 24 ends the shift at 00:00 of the following day.
type shiftWindow struct {
	startHour int
	endHour   int
}

func validateRange(roster []user.User, startDate, endDate time.Time) error {
	if len(roster) == 0 {
		return schedule.ErrInsufficientStaff
	}
	if dayOf(endDate).Before(dayOf(startDate)) {
		return schedule.ErrInvalidDateRange
	}
	return nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// generate walks the date range forward one calendar day at a time, stamping
// out each window and assigning staff through pick. pick receives the
// 0-indexed position of the shift across the whole run and its start time.
func generate(startDate, endDate time.Time, windows []shiftWindow, pick func(i int, start time.Time) string) []shift.Shift {
	var shifts []shift.Shift
	i := 0
	last := dayOf(endDate)
	for day := dayOf(startDate); !day.After(last); day = day.AddDate(0, 0, 1) {
		for _, w := range windows {
			start := day.Add(time.Duration(w.startHour) * time.Hour)
			end := day.Add(time.Duration(w.endHour) * time.Hour)
			shifts = append(shifts, shift.Shift{
				StaffID:   pick(i, start),
				StartTime: start,
				EndTime:   end,
				Status:    shift.StatusScheduled,
			})
			i++
		}
	}
	return shifts
}
