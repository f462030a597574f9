package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/RostrApp/rostr-backend-go/internal/domain/schedule"
	"github.com/RostrApp/rostr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	ScheduleShift(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Create implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq schedule.CreateScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create schedule validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.scheduleService.CreateSchedule(r.Context(), createReq)
	if err != nil {
		slog.Error("Create schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Schedule created", "schedule_id", created.ID)
	response.Created(w, "Schedule created successfully", created)
}

// GetByID implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "scheduleID")

	found, err := h.scheduleService.GetSchedule(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements ScheduleHandler.
func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.scheduleService.ListSchedules(r.Context())
	if err != nil {
		slog.Error("List schedules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedules)
}

// Assign implements ScheduleHandler. It runs the requested assignment
// strategy over the roster and persists the generated shifts.
func (h *ScheduleHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var assignReq schedule.AssignScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("Assign schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	assignReq.ScheduleID = chi.URLParam(r, "scheduleID")

	if err := assignReq.Validate(); err != nil {
		slog.Error("Assign schedule validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	assigned, err := h.scheduleService.AssignSchedule(r.Context(), assignReq)
	if err != nil {
		slog.Error("Assign schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Schedule assigned", "schedule_id", assigned.ID, "strategy", assignReq.Strategy, "shift_count", assigned.ShiftCount)
	response.Created(w, "Shifts assigned successfully", assigned)
}

// ScheduleShift implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ScheduleShift(w http.ResponseWriter, r *http.Request) {
	var shiftReq schedule.ScheduleShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&shiftReq); err != nil {
		slog.Error("Schedule shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	shiftReq.ScheduleID = chi.URLParam(r, "scheduleID")

	if err := shiftReq.Validate(); err != nil {
		slog.Error("Schedule shift validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.scheduleService.ScheduleShift(r.Context(), shiftReq)
	if err != nil {
		slog.Error("Schedule shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift scheduled", "shift_id", created.ID, "staff_id", created.StaffID)
	response.Created(w, "Shift scheduled successfully", created)
}

// Delete implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "scheduleID")

	if err := h.scheduleService.DeleteSchedule(r.Context(), id); err != nil {
		slog.Error("Delete schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Schedule deleted", "schedule_id", id)
	response.SuccessWithMessage(w, "Schedule deleted successfully", nil)
}
