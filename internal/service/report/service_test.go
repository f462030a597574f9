package report

import (
	"context"
	"testing"
	"time"

	domain "github.com/RostrApp/rostr-backend-go/internal/domain/report"
	"github.com/RostrApp/rostr-backend-go/internal/domain/schedule"
	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	createFn      func(ctx context.Context, newReport domain.Report) (domain.Report, error)
	getByIDFn     func(ctx context.Context, id string) (domain.Report, error)
	listByAdminFn func(ctx context.Context, adminID string) ([]domain.Report, error)
}

func (f *fakeReportRepo) Create(ctx context.Context, newReport domain.Report) (domain.Report, error) {
	return f.createFn(ctx, newReport)
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id string) (domain.Report, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeReportRepo) ListByAdmin(ctx context.Context, adminID string) ([]domain.Report, error) {
	return f.listByAdminFn(ctx, adminID)
}

type fakeScheduleRepo struct {
	getByIDFn func(ctx context.Context, id string) (schedule.Schedule, error)
}

func (f *fakeScheduleRepo) Create(ctx context.Context, newSchedule schedule.Schedule) (schedule.Schedule, error) {
	panic("not implemented")
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id string) (schedule.Schedule, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeScheduleRepo) List(ctx context.Context) ([]schedule.Schedule, error) {
	panic("not implemented")
}

func (f *fakeScheduleRepo) SetStrategy(ctx context.Context, id string, strategy schedule.StrategyKind) error {
	panic("not implemented")
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
	panic("not implemented")
}

type fakeShiftRepo struct {
	listByScheduleFn func(ctx context.Context, scheduleID string) ([]shift.Shift, error)
}

func (f *fakeShiftRepo) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	panic("not implemented")
}

func (f *fakeShiftRepo) CreateBatch(ctx context.Context, shifts []shift.Shift) ([]shift.Shift, error) {
	panic("not implemented")
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	panic("not implemented")
}

func (f *fakeShiftRepo) ListBySchedule(ctx context.Context, scheduleID string) ([]shift.Shift, error) {
	return f.listByScheduleFn(ctx, scheduleID)
}

func (f *fakeShiftRepo) ListByStaff(ctx context.Context, staffID string) ([]shift.Shift, error) {
	panic("not implemented")
}

func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error {
	panic("not implemented")
}

func (f *fakeShiftRepo) ListOpenBefore(ctx context.Context, now time.Time) ([]shift.Shift, error) {
	panic("not implemented")
}

func (f *fakeShiftRepo) DeleteBySchedule(ctx context.Context, scheduleID string) error {
	panic("not implemented")
}

func claimsContext(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func existingSchedule(id string) *fakeScheduleRepo {
	return &fakeScheduleRepo{
		getByIDFn: func(ctx context.Context, got string) (schedule.Schedule, error) {
			if got != id {
				return schedule.Schedule{}, pgx.ErrNoRows
			}
			return schedule.Schedule{ID: id}, nil
		},
	}
}

func TestGetSummary(t *testing.T) {
	day := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
	shiftRepo := &fakeShiftRepo{
		listByScheduleFn: func(ctx context.Context, scheduleID string) ([]shift.Shift, error) {
			return []shift.Shift{
				{StaffName: "Alice", StartTime: day.Add(9 * time.Hour), EndTime: day.Add(17 * time.Hour), Status: shift.StatusCompleted},
			}, nil
		},
	}
	svc := NewReportService(&fakeReportRepo{}, existingSchedule("sched-1"), shiftRepo)

	summary, err := svc.GetSummary(context.Background(), "sched-1")
	require.NoError(t, err)
	assert.Equal(t, "sched-1", summary.ScheduleID)
	assert.Equal(t, []string{"Alice"}, summary.Days["2025-11-17"][domain.BucketCompleted])
}

func TestGetSummaryScheduleNotFound(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, existingSchedule("sched-1"), &fakeShiftRepo{})

	_, err := svc.GetSummary(context.Background(), "missing")
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestGenerateReport(t *testing.T) {
	shiftRepo := &fakeShiftRepo{
		listByScheduleFn: func(ctx context.Context, scheduleID string) ([]shift.Shift, error) {
			return nil, nil
		},
	}
	reportRepo := &fakeReportRepo{
		createFn: func(ctx context.Context, newReport domain.Report) (domain.Report, error) {
			newReport.ID = "report-1"
			return newReport, nil
		},
	}
	svc := NewReportService(reportRepo, existingSchedule("sched-1"), shiftRepo)

	ctx := claimsContext(t, "admin-1", user.RoleAdmin)
	generated, err := svc.GenerateReport(ctx, "sched-1")
	require.NoError(t, err)
	assert.Equal(t, "report-1", generated.ID)
	assert.Equal(t, "admin-1", generated.AdminID)
	assert.Equal(t, "sched-1", generated.Summary.ScheduleID)
	assert.NotEmpty(t, generated.GeneratedAt)
}

func TestGenerateReportRequiresAdmin(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, existingSchedule("sched-1"), &fakeShiftRepo{})

	ctx := claimsContext(t, "staff-1", user.RoleStaff)
	_, err := svc.GenerateReport(ctx, "sched-1")
	assert.ErrorIs(t, err, user.ErrAdminRoleRequired)
}

func TestGetReportNotFound(t *testing.T) {
	reportRepo := &fakeReportRepo{
		getByIDFn: func(ctx context.Context, id string) (domain.Report, error) {
			return domain.Report{}, pgx.ErrNoRows
		},
	}
	svc := NewReportService(reportRepo, existingSchedule("sched-1"), &fakeShiftRepo{})

	_, err := svc.GetReport(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestListMyReports(t *testing.T) {
	reportRepo := &fakeReportRepo{
		listByAdminFn: func(ctx context.Context, adminID string) ([]domain.Report, error) {
			assert.Equal(t, "admin-1", adminID)
			return []domain.Report{
				{ID: "report-1", AdminID: adminID, GeneratedAt: time.Now()},
			}, nil
		},
	}
	svc := NewReportService(reportRepo, existingSchedule("sched-1"), &fakeShiftRepo{})

	ctx := claimsContext(t, "admin-1", user.RoleAdmin)
	reports, err := svc.ListMyReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "report-1", reports[0].ID)
}
