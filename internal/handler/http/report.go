package http

import (
	"log/slog"
	"net/http"

	"github.com/RostrApp/rostr-backend-go/internal/domain/report"
	"github.com/RostrApp/rostr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// GetSummary implements ReportHandler. It computes the per-day attendance
// summary for a schedule without persisting a report.
func (h *ReportHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")

	summary, err := h.reportService.GetSummary(r.Context(), scheduleID)
	if err != nil {
		slog.Error("Get summary service error", "error", err, "schedule_id", scheduleID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Generate implements ReportHandler.
func (h *ReportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")

	generated, err := h.reportService.GenerateReport(r.Context(), scheduleID)
	if err != nil {
		slog.Error("Generate report service error", "error", err, "schedule_id", scheduleID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Report generated", "report_id", generated.ID, "schedule_id", scheduleID)
	response.Created(w, "Report generated successfully", generated)
}

// GetByID implements ReportHandler.
func (h *ReportHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "reportID")

	found, err := h.reportService.GetReport(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListMine implements ReportHandler.
func (h *ReportHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.ListMyReports(r.Context())
	if err != nil {
		slog.Error("List my reports service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}
