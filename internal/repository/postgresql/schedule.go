package postgresql

import (
	"context"

	"github.com/RostrApp/rostr-backend-go/internal/domain/schedule"
	"github.com/RostrApp/rostr-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, newSchedule schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedules (id, name, start_date, end_date, created_by, strategy)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, start_date, end_date, created_by, strategy, created_at, updated_at
	`

	var created schedule.Schedule
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		newSchedule.Name,
		newSchedule.StartDate,
		newSchedule.EndDate,
		newSchedule.CreatedBy,
		newSchedule.Strategy,
	).Scan(
		&created.ID,
		&created.Name,
		&created.StartDate,
		&created.EndDate,
		&created.CreatedBy,
		&created.Strategy,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return schedule.Schedule{}, err
	}

	return created, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, created_by, strategy, created_at, updated_at
		FROM schedules
		WHERE id = $1
	`

	var found schedule.Schedule
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.StartDate,
		&found.EndDate,
		&found.CreatedBy,
		&found.Strategy,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return schedule.Schedule{}, err
	}

	return found, nil
}

// List implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) List(ctx context.Context) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, created_by, strategy, created_at, updated_at
		FROM schedules
		ORDER BY start_date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		var s schedule.Schedule
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.StartDate,
			&s.EndDate,
			&s.CreatedBy,
			&s.Strategy,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}

// SetStrategy implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) SetStrategy(ctx context.Context, id string, strategy schedule.StrategyKind) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedules
		SET strategy = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, strategy, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}
