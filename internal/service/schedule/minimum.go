package schedule

import (
	"time"

	"github.com/RostrApp/rostr-backend-go/internal/domain/schedule"
	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
)

// MinimumStrategy assigns one 09:00-17:00 shift per day, all to the first
// roster entry. Models a single-worker baseline.
type MinimumStrategy struct{}

func (s *MinimumStrategy) Kind() schedule.StrategyKind {
	return schedule.StrategyMinimum
}

func (s *MinimumStrategy) Assign(roster []user.User, startDate, endDate time.Time) ([]shift.Shift, error) {
	if err := validateRange(roster, startDate, endDate); err != nil {
		return nil, err
	}

	windows := []shiftWindow{{startHour: 9, endHour: 17}}
	return generate(startDate, endDate, windows, func(_ int, _ time.Time) string {
		return roster[0].ID
	}), nil
}
