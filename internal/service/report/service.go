package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RostrApp/rostr-backend-go/internal/domain/report"
	"github.com/RostrApp/rostr-backend-go/internal/domain/schedule"
	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type ReportServiceImpl struct {
	report.ReportRepository
	schedule.ScheduleRepository
	shift.ShiftRepository
}

func NewReportService(
	reportRepository report.ReportRepository,
	scheduleRepository schedule.ScheduleRepository,
	shiftRepository shift.ShiftRepository,
) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository:   reportRepository,
		ScheduleRepository: scheduleRepository,
		ShiftRepository:    shiftRepository,
	}
}

func adminFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	adminID, ok := claims["user_id"].(string)
	if !ok || adminID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || user.Role(roleStr) != user.RoleAdmin {
		return "", user.ErrAdminRoleRequired
	}

	return adminID, nil
}

// loadSummary resolves the schedule and computes its summary from shifts
// ordered by start_time.
func (s *ReportServiceImpl) loadSummary(ctx context.Context, scheduleID string) (report.AttendanceSummary, error) {
	if _, err := s.ScheduleRepository.GetByID(ctx, scheduleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.AttendanceSummary{}, schedule.ErrScheduleNotFound
		}
		return report.AttendanceSummary{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	shifts, err := s.ShiftRepository.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return report.AttendanceSummary{}, fmt.Errorf("failed to list schedule shifts: %w", err)
	}

	return Summarize(scheduleID, shifts), nil
}

// GetSummary implements report.ReportService.
func (s *ReportServiceImpl) GetSummary(ctx context.Context, scheduleID string) (report.AttendanceSummary, error) {
	return s.loadSummary(ctx, scheduleID)
}

// GenerateReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateReport(ctx context.Context, scheduleID string) (report.ReportResponse, error) {
	adminID, err := adminFromContext(ctx)
	if err != nil {
		return report.ReportResponse{}, err
	}

	summary, err := s.loadSummary(ctx, scheduleID)
	if err != nil {
		return report.ReportResponse{}, err
	}

	created, err := s.ReportRepository.Create(ctx, report.Report{
		AdminID:     adminID,
		GeneratedAt: time.Now(),
		Summary:     summary,
	})
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("failed to create report: %w", err)
	}

	return report.ToResponse(created), nil
}

// GetReport implements report.ReportService.
func (s *ReportServiceImpl) GetReport(ctx context.Context, id string) (report.ReportResponse, error) {
	record, err := s.ReportRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.ReportResponse{}, report.ErrReportNotFound
		}
		return report.ReportResponse{}, fmt.Errorf("failed to get report: %w", err)
	}
	return report.ToResponse(record), nil
}

// ListMyReports implements report.ReportService.
func (s *ReportServiceImpl) ListMyReports(ctx context.Context) ([]report.ReportResponse, error) {
	adminID, err := adminFromContext(ctx)
	if err != nil {
		return nil, err
	}

	reports, err := s.ReportRepository.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	out := make([]report.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, report.ToResponse(r))
	}
	return out, nil
}
