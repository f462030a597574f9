package report

import "context"

// ReportService defines business logic for attendance reporting
type ReportService interface {
	// GetSummary computes the per-day attendance summary for a schedule
	// without persisting anything
	GetSummary(ctx context.Context, scheduleID string) (AttendanceSummary, error)

	// GenerateReport computes the summary and persists a timestamped report
	// owned by the requesting admin (admin only)
	GenerateReport(ctx context.Context, scheduleID string) (ReportResponse, error)

	// GetReport retrieves a previously generated report
	GetReport(ctx context.Context, id string) (ReportResponse, error)

	// ListMyReports retrieves reports generated by the authenticated admin
	ListMyReports(ctx context.Context) ([]ReportResponse, error)
}
