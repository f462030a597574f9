package schedule

import "context"

type ScheduleRepository interface {
	Create(ctx context.Context, newSchedule Schedule) (Schedule, error)
	GetByID(ctx context.Context, id string) (Schedule, error)
	List(ctx context.Context) ([]Schedule, error)
	SetStrategy(ctx context.Context, id string, strategy StrategyKind) error
	// Delete removes the schedule row; the owning service deletes the
	// schedule's shifts in the same transaction
	Delete(ctx context.Context, id string) error
}
