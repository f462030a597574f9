package postgresql

import (
	"context"
	"time"

	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, schedule_id, staff_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, schedule_id, staff_id, start_time, end_time, clock_in, clock_out, status,
				  created_at, updated_at
	`

	var created shift.Shift
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		newShift.ScheduleID,
		newShift.StaffID,
		newShift.StartTime,
		newShift.EndTime,
		newShift.Status,
	).Scan(
		&created.ID,
		&created.ScheduleID,
		&created.StaffID,
		&created.StartTime,
		&created.EndTime,
		&created.ClockIn,
		&created.ClockOut,
		&created.Status,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, err
	}

	return created, nil
}

// CreateBatch implements shift.ShiftRepository. Rows are inserted with a
// single batched round trip; the caller is expected to hold a transaction.
func (r *shiftRepositoryImpl) CreateBatch(ctx context.Context, shifts []shift.Shift) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, schedule_id, staff_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, schedule_id, staff_id, start_time, end_time, clock_in, clock_out, status,
				  created_at, updated_at
	`

	created := make([]shift.Shift, 0, len(shifts))
	for _, s := range shifts {
		var row shift.Shift
		err := q.QueryRow(ctx, query,
			uuid.NewString(),
			s.ScheduleID,
			s.StaffID,
			s.StartTime,
			s.EndTime,
			s.Status,
		).Scan(
			&row.ID,
			&row.ScheduleID,
			&row.StaffID,
			&row.StartTime,
			&row.EndTime,
			&row.ClockIn,
			&row.ClockOut,
			&row.Status,
			&row.CreatedAt,
			&row.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		created = append(created, row)
	}

	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.schedule_id, s.staff_id, s.start_time, s.end_time, s.clock_in, s.clock_out,
			   s.status, s.created_at, s.updated_at, u.full_name
		FROM shifts s
		JOIN users u ON u.id = s.staff_id
		WHERE s.id = $1
	`

	var found shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.ScheduleID,
		&found.StaffID,
		&found.StartTime,
		&found.EndTime,
		&found.ClockIn,
		&found.ClockOut,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.StaffName,
	)
	if err != nil {
		return shift.Shift{}, err
	}

	return found, nil
}

func scanShiftRows(rows pgx.Rows) ([]shift.Shift, error) {
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.ID,
			&s.ScheduleID,
			&s.StaffID,
			&s.StartTime,
			&s.EndTime,
			&s.ClockIn,
			&s.ClockOut,
			&s.Status,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.StaffName,
		); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

// ListBySchedule implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListBySchedule(ctx context.Context, scheduleID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.schedule_id, s.staff_id, s.start_time, s.end_time, s.clock_in, s.clock_out,
			   s.status, s.created_at, s.updated_at, u.full_name
		FROM shifts s
		JOIN users u ON u.id = s.staff_id
		WHERE s.schedule_id = $1
		ORDER BY s.start_time ASC, s.created_at ASC
	`

	rows, err := q.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}

	return scanShiftRows(rows)
}

// ListByStaff implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByStaff(ctx context.Context, staffID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.schedule_id, s.staff_id, s.start_time, s.end_time, s.clock_in, s.clock_out,
			   s.status, s.created_at, s.updated_at, u.full_name
		FROM shifts s
		JOIN users u ON u.id = s.staff_id
		WHERE s.staff_id = $1
		ORDER BY s.start_time ASC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, err
	}

	return scanShiftRows(rows)
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET start_time = $1, end_time = $2, clock_in = $3, clock_out = $4, status = $5,
			updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		s.StartTime,
		s.EndTime,
		s.ClockIn,
		s.ClockOut,
		s.Status,
		s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// ListOpenBefore implements shift.ShiftRepository. It narrows the re-scan to
// shifts whose stored status can still move: no clock-in recorded and a
// window the clock has already entered or passed.
func (r *shiftRepositoryImpl) ListOpenBefore(ctx context.Context, now time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.schedule_id, s.staff_id, s.start_time, s.end_time, s.clock_in, s.clock_out,
			   s.status, s.created_at, s.updated_at, u.full_name
		FROM shifts s
		JOIN users u ON u.id = s.staff_id
		WHERE s.clock_in IS NULL
		  AND s.start_time < $1
		  AND s.status NOT IN ($2, $3)
		ORDER BY s.start_time ASC
	`

	rows, err := q.Query(ctx, query, now, shift.StatusMissed, shift.StatusCompleted)
	if err != nil {
		return nil, err
	}

	return scanShiftRows(rows)
}

// DeleteBySchedule implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) DeleteBySchedule(ctx context.Context, scheduleID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM shifts WHERE schedule_id = $1`, scheduleID)
	return err
}
