package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RostrApp/rostr-backend-go/internal/domain/report"
	"github.com/RostrApp/rostr-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// Create implements report.ReportRepository. The summary snapshot is stored
// as a JSONB column so past reports survive later shift edits.
func (r *reportRepositoryImpl) Create(ctx context.Context, newReport report.Report) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	summaryJSON, err := json.Marshal(newReport.Summary)
	if err != nil {
		return report.Report{}, fmt.Errorf("marshal summary: %w", err)
	}

	query := `
		INSERT INTO reports (id, admin_id, generated_at, summary)
		VALUES ($1, $2, $3, $4)
		RETURNING id, admin_id, generated_at, summary
	`

	var created report.Report
	var rawSummary []byte
	err = q.QueryRow(ctx, query,
		uuid.NewString(),
		newReport.AdminID,
		newReport.GeneratedAt,
		summaryJSON,
	).Scan(
		&created.ID,
		&created.AdminID,
		&created.GeneratedAt,
		&rawSummary,
	)
	if err != nil {
		return report.Report{}, err
	}

	if err := json.Unmarshal(rawSummary, &created.Summary); err != nil {
		return report.Report{}, fmt.Errorf("unmarshal summary: %w", err)
	}

	return created, nil
}

// GetByID implements report.ReportRepository.
func (r *reportRepositoryImpl) GetByID(ctx context.Context, id string) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.admin_id, r.generated_at, r.summary, u.full_name
		FROM reports r
		JOIN users u ON u.id = r.admin_id
		WHERE r.id = $1
	`

	var found report.Report
	var rawSummary []byte
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.AdminID,
		&found.GeneratedAt,
		&rawSummary,
		&found.AdminName,
	)
	if err != nil {
		return report.Report{}, err
	}

	if err := json.Unmarshal(rawSummary, &found.Summary); err != nil {
		return report.Report{}, fmt.Errorf("unmarshal summary: %w", err)
	}

	return found, nil
}

// ListByAdmin implements report.ReportRepository.
func (r *reportRepositoryImpl) ListByAdmin(ctx context.Context, adminID string) ([]report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.admin_id, r.generated_at, r.summary, u.full_name
		FROM reports r
		JOIN users u ON u.id = r.admin_id
		WHERE r.admin_id = $1
		ORDER BY r.generated_at DESC
	`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []report.Report
	for rows.Next() {
		var rep report.Report
		var rawSummary []byte
		if err := rows.Scan(
			&rep.ID,
			&rep.AdminID,
			&rep.GeneratedAt,
			&rawSummary,
			&rep.AdminName,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rawSummary, &rep.Summary); err != nil {
			return nil, fmt.Errorf("unmarshal summary: %w", err)
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}
