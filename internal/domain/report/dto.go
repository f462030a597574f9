package report

import "time"

type ReportResponse struct {
	ID          string            `json:"id"`
	AdminID     string            `json:"admin_id"`
	AdminName   string            `json:"admin_name,omitempty"`
	GeneratedAt string            `json:"generated_at"`
	Summary     AttendanceSummary `json:"summary"`
}

func ToResponse(r Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID,
		AdminID:     r.AdminID,
		AdminName:   r.AdminName,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
		Summary:     r.Summary,
	}
}
