package schedule

import (
	"time"

	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
)

// Scheduler holds the currently selected assignment strategy and forwards
// assignment runs to it, so call sites can swap strategies without rewiring.
type Scheduler struct {
	strategy AssignmentStrategy
}

func NewScheduler(strategy AssignmentStrategy) *Scheduler {
	return &Scheduler{strategy: strategy}
}

func (s *Scheduler) SetStrategy(strategy AssignmentStrategy) {
	s.strategy = strategy
}

func (s *Scheduler) Strategy() AssignmentStrategy {
	return s.strategy
}

func (s *Scheduler) Assign(roster []user.User, startDate, endDate time.Time) ([]shift.Shift, error) {
	return s.strategy.Assign(roster, startDate, endDate)
}
