package report

import "context"

type ReportRepository interface {
	Create(ctx context.Context, newReport Report) (Report, error)
	GetByID(ctx context.Context, id string) (Report, error)
	ListByAdmin(ctx context.Context, adminID string) ([]Report, error)
}
