package schedule

import (
	"time"

	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
)

type StrategyKind string

const (
	StrategyEven     StrategyKind = "even"      // Round-robin over the roster
	StrategyMinimum  StrategyKind = "minimum"   // Single-worker baseline
	StrategyDayNight StrategyKind = "day_night" // First two staff split day/night
)

var StrategyKindValues = []string{
	string(StrategyEven),
	string(StrategyMinimum),
	string(StrategyDayNight),
}

type Schedule struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	CreatedBy string
	Strategy  *StrategyKind
	CreatedAt time.Time
	UpdatedAt time.Time

	Shifts []shift.Shift
}

func (s *Schedule) ShiftCount() int {
	return len(s.Shifts)
}

// Contains reports whether the given instant falls inside the schedule's
// date range, inclusive on both ends.
func (s *Schedule) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return !day.Before(s.StartDate) && !day.After(s.EndDate)
}
