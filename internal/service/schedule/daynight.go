package schedule

import (
	"time"

	"github.com/RostrApp/rostr-backend-go/internal/domain/schedule"
	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
)

// Shifts starting before this hour count as day shifts, the rest as night.
const dayNightBoundaryHour = 18

// DayNightStrategy produces two shifts per day: an 08:00-16:00 day window
// for the first roster entry and an 18:00-00:00 night window for the second.
// Only the first two roster entries are ever used.
type DayNightStrategy struct{}

func (s *DayNightStrategy) Kind() schedule.StrategyKind {
	return schedule.StrategyDayNight
}

func (s *DayNightStrategy) Assign(roster []user.User, startDate, endDate time.Time) ([]shift.Shift, error) {
	if err := validateRange(roster, startDate, endDate); err != nil {
		return nil, err
	}
	if len(roster) < 2 {
		return nil, schedule.ErrInsufficientStaff
	}

	windows := []shiftWindow{
		{startHour: 8, endHour: 16},  // day
		{startHour: 18, endHour: 24}, // night, ends 00:00 next day
	}
	return generate(startDate, endDate, windows, func(_ int, start time.Time) string {
		if start.Hour() < dayNightBoundaryHour {
			return roster[0].ID
		}
		return roster[1].ID
	}), nil
}
