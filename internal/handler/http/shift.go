package http

import (
	"log/slog"
	"net/http"

	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	GetByID(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListBySchedule(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// GetByID implements ShiftHandler.
func (h *ShiftHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shiftID")

	found, err := h.shiftService.GetShift(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListMine implements ShiftHandler.
func (h *ShiftHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.ListMyShifts(r.Context())
	if err != nil {
		slog.Error("List my shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// ListBySchedule implements ShiftHandler.
func (h *ShiftHandlerImpl) ListBySchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")

	shifts, err := h.shiftService.ListScheduleShifts(r.Context(), scheduleID)
	if err != nil {
		slog.Error("List schedule shifts service error", "error", err, "schedule_id", scheduleID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// ClockIn implements ShiftHandler.
func (h *ShiftHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shiftID")

	clockEvent, err := h.shiftService.ClockIn(r.Context(), id)
	if err != nil {
		slog.Error("Clock in service error", "error", err, "shift_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff clocked in", "shift_id", id)
	response.SuccessWithMessage(w, "Clocked in successfully", clockEvent)
}

// ClockOut implements ShiftHandler.
func (h *ShiftHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shiftID")

	clockEvent, err := h.shiftService.ClockOut(r.Context(), id)
	if err != nil {
		slog.Error("Clock out service error", "error", err, "shift_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff clocked out", "shift_id", id, "hours_worked", clockEvent.HoursWorked)
	response.SuccessWithMessage(w, "Clocked out successfully", clockEvent)
}
