package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
	"github.com/RostrApp/rostr-backend-go/internal/pkg/database"
	"github.com/RostrApp/rostr-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
}

func NewShiftService(db *database.DB, shiftRepository shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		db:              db,
		ShiftRepository: shiftRepository,
	}
}

func staffFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	staffID, ok := claims["user_id"].(string)
	if !ok || staffID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || user.Role(roleStr) != user.RoleStaff {
		return "", user.ErrStaffRoleRequired
	}

	return staffID, nil
}

// ClockIn implements shift.ShiftService. The check-and-set on "clock_in is
// currently absent" runs inside one transaction so two concurrent callers
// cannot double-claim a shift.
func (s *ShiftServiceImpl) ClockIn(ctx context.Context, shiftID string) (shift.ClockEventResponse, error) {
	staffID, err := staffFromContext(ctx)
	if err != nil {
		return shift.ClockEventResponse{}, err
	}

	var updated shift.Shift
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err := s.ShiftRepository.GetByID(txCtx, shiftID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return shift.ErrShiftNotFound
			}
			return fmt.Errorf("failed to get shift: %w", err)
		}

		if err := record.PunchIn(staffID, time.Now()); err != nil {
			return err
		}

		if err := s.ShiftRepository.Update(txCtx, record); err != nil {
			return fmt.Errorf("failed to update shift: %w", err)
		}
		updated = record
		return nil
	})
	if err != nil {
		return shift.ClockEventResponse{}, err
	}

	return shift.ClockEventResponse{
		Shift:       shift.ToResponse(updated),
		HoursWorked: updated.HoursWorked(),
	}, nil
}

// ClockOut implements shift.ShiftService.
func (s *ShiftServiceImpl) ClockOut(ctx context.Context, shiftID string) (shift.ClockEventResponse, error) {
	staffID, err := staffFromContext(ctx)
	if err != nil {
		return shift.ClockEventResponse{}, err
	}

	var updated shift.Shift
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		record, err := s.ShiftRepository.GetByID(txCtx, shiftID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return shift.ErrShiftNotFound
			}
			return fmt.Errorf("failed to get shift: %w", err)
		}

		if err := record.PunchOut(staffID, time.Now()); err != nil {
			return err
		}

		if err := s.ShiftRepository.Update(txCtx, record); err != nil {
			return fmt.Errorf("failed to update shift: %w", err)
		}
		updated = record
		return nil
	})
	if err != nil {
		return shift.ClockEventResponse{}, err
	}

	return shift.ClockEventResponse{
		Shift:       shift.ToResponse(updated),
		HoursWorked: updated.HoursWorked(),
	}, nil
}

// GetShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	record, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return shift.ToResponse(record), nil
}

// ListMyShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListMyShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	staffID, err := staffFromContext(ctx)
	if err != nil {
		return nil, err
	}

	shifts, err := s.ShiftRepository.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff shifts: %w", err)
	}
	return shift.ToResponseList(shifts), nil
}

// ListScheduleShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListScheduleShifts(ctx context.Context, scheduleID string) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule shifts: %w", err)
	}
	return shift.ToResponseList(shifts), nil
}

// RefreshStatuses implements shift.ShiftService. It picks up the time-only
// transitions (Scheduled -> Late -> Missed) for shifts without clock events.
func (s *ShiftServiceImpl) RefreshStatuses(ctx context.Context, now time.Time) (int, error) {
	open, err := s.ShiftRepository.ListOpenBefore(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list open shifts: %w", err)
	}

	changed := 0
	for _, record := range open {
		if !record.RefreshStatus(now) {
			continue
		}
		if err := s.ShiftRepository.Update(ctx, record); err != nil {
			return changed, fmt.Errorf("failed to update shift %s: %w", record.ID, err)
		}
		changed++
	}
	return changed, nil
}
