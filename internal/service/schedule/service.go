package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RostrApp/rostr-backend-go/internal/domain/schedule"
	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
	"github.com/RostrApp/rostr-backend-go/internal/pkg/database"
	"github.com/RostrApp/rostr-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type ScheduleServiceImpl struct {
	db *database.DB
	schedule.ScheduleRepository
	shift.ShiftRepository
	user.UserRepository
}

func NewScheduleService(
	db *database.DB,
	scheduleRepository schedule.ScheduleRepository,
	shiftRepository shift.ShiftRepository,
	userRepository user.UserRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:                 db,
		ScheduleRepository: scheduleRepository,
		ShiftRepository:    shiftRepository,
		UserRepository:     userRepository,
	}
}

// actorFromContext extracts the authenticated user's identity and role from
// JWT claims.
func actorFromContext(ctx context.Context) (id string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return "", "", fmt.Errorf("role claim is missing or invalid")
	}

	return id, user.Role(roleStr), nil
}

// CreateSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	adminID, role, err := actorFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	if role != user.RoleAdmin {
		return schedule.ScheduleResponse{}, user.ErrAdminRoleRequired
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.ScheduleRepository.Create(ctx, schedule.Schedule{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedBy: adminID,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return schedule.ToResponse(created), nil
}

// GetSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	sched, err := s.ScheduleRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	shifts, err := s.ShiftRepository.ListBySchedule(ctx, id)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to list schedule shifts: %w", err)
	}
	sched.Shifts = shifts

	return schedule.ToResponse(sched), nil
}

// ListSchedules implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListSchedules(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.ScheduleRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	out := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		out = append(out, schedule.ToResponse(sched))
	}
	return out, nil
}

// AssignSchedule implements schedule.ScheduleService. The strategy run is
// pure; persistence happens afterwards in a single transaction so a failure
// never leaves a partially-assigned schedule.
func (s *ScheduleServiceImpl) AssignSchedule(ctx context.Context, req schedule.AssignScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	_, role, err := actorFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	if role != user.RoleAdmin {
		return schedule.ScheduleResponse{}, user.ErrAdminRoleRequired
	}

	sched, err := s.ScheduleRepository.GetByID(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	roster, err := s.loadRoster(ctx, req.StaffIDs)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	strategy, err := NewStrategy(schedule.StrategyKind(req.Strategy))
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	scheduler := NewScheduler(strategy)
	shifts, err := scheduler.Assign(roster, sched.StartDate, sched.EndDate)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	for i := range shifts {
		shifts[i].ScheduleID = sched.ID
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		persisted, err := s.ShiftRepository.CreateBatch(txCtx, shifts)
		if err != nil {
			return fmt.Errorf("failed to persist shifts: %w", err)
		}
		sched.Shifts = persisted

		kind := strategy.Kind()
		if err := s.ScheduleRepository.SetStrategy(txCtx, sched.ID, kind); err != nil {
			return fmt.Errorf("failed to record strategy: %w", err)
		}
		sched.Strategy = &kind
		return nil
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return schedule.ToResponse(sched), nil
}

// loadRoster resolves the staff roster for an assignment run. With explicit
// IDs the roster preserves the request order; otherwise the full staff list
// is used in repository order.
func (s *ScheduleServiceImpl) loadRoster(ctx context.Context, staffIDs []string) ([]user.User, error) {
	if len(staffIDs) == 0 {
		roster, err := s.UserRepository.ListByRole(ctx, user.RoleStaff)
		if err != nil {
			return nil, fmt.Errorf("failed to list staff: %w", err)
		}
		return roster, nil
	}

	users, err := s.UserRepository.GetByIDs(ctx, staffIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff by ids: %w", err)
	}

	byID := make(map[string]user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	roster := make([]user.User, 0, len(staffIDs))
	for _, id := range staffIDs {
		u, ok := byID[id]
		if !ok || !u.IsStaff() {
			return nil, schedule.ErrInvalidStaff
		}
		roster = append(roster, u)
	}
	return roster, nil
}

// ScheduleShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ScheduleShift(ctx context.Context, req schedule.ScheduleShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	_, role, err := actorFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if role != user.RoleAdmin {
		return shift.ShiftResponse{}, user.ErrAdminRoleRequired
	}

	if _, err := s.ScheduleRepository.GetByID(ctx, req.ScheduleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, schedule.ErrScheduleNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	staff, err := s.UserRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, schedule.ErrInvalidStaff
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get staff: %w", err)
	}
	if !staff.IsStaff() {
		return shift.ShiftResponse{}, schedule.ErrInvalidStaff
	}

	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		ScheduleID: req.ScheduleID,
		StaffID:    req.StaffID,
		StartTime:  startTime,
		EndTime:    endTime,
		Status:     shift.StatusScheduled,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}
	created.StaffName = staff.FullName

	return shift.ToResponse(created), nil
}

// DeleteSchedule implements schedule.ScheduleService. Deleting a schedule
// cascades to its shifts inside one transaction.
func (s *ScheduleServiceImpl) DeleteSchedule(ctx context.Context, id string) error {
	_, role, err := actorFromContext(ctx)
	if err != nil {
		return err
	}
	if role != user.RoleAdmin {
		return user.ErrAdminRoleRequired
	}

	if _, err := s.ScheduleRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to get schedule: %w", err)
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.ShiftRepository.DeleteBySchedule(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete schedule shifts: %w", err)
		}
		if err := s.ScheduleRepository.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete schedule: %w", err)
		}
		return nil
	})
}
