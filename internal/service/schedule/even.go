package schedule

import (
	"time"

	"github.com/RostrApp/rostr-backend-go/internal/domain/schedule"
	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
)

// EvenStrategy assigns one 09:00-17:00 shift per day, rotating round-robin
// through the roster so no two staff members differ by more than one shift.
type EvenStrategy struct{}

func (s *EvenStrategy) Kind() schedule.StrategyKind {
	return schedule.StrategyEven
}

func (s *EvenStrategy) Assign(roster []user.User, startDate, endDate time.Time) ([]shift.Shift, error) {
	if err := validateRange(roster, startDate, endDate); err != nil {
		return nil, err
	}

	windows := []shiftWindow{{startHour: 9, endHour: 17}}
	return generate(startDate, endDate, windows, func(i int, _ time.Time) string {
		return roster[i%len(roster)].ID
	}), nil
}
