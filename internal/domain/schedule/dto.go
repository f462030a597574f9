package schedule

import (
	"time"

	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignScheduleRequest struct {
	ScheduleID string   `json:"schedule_id"`
	Strategy   string   `json:"strategy"`
	StaffIDs   []string `json:"staff_ids"` // Empty means the full staff roster
}

func (r *AssignScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ScheduleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_id",
			Message: "schedule_id is required",
		})
	}

	if !validator.IsInSlice(r.Strategy, StrategyKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "strategy",
			Message: "strategy must be one of 'even', 'minimum', 'day_night'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleShiftRequest struct {
	ScheduleID string `json:"schedule_id"`
	StaffID    string `json:"staff_id"`
	StartTime  string `json:"start_time"` // RFC3339
	EndTime    string `json:"end_time"`   // RFC3339
}

func (r *ScheduleShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ScheduleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_id",
			Message: "schedule_id is required",
		})
	}

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	start, okStart := validator.IsValidDateTime(r.StartTime)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid ISO8601 timestamp",
		})
	}

	end, okEnd := validator.IsValidDateTime(r.EndTime)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid ISO8601 timestamp",
		})
	}

	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	StartDate  string                `json:"start_date"`
	EndDate    string                `json:"end_date"`
	CreatedBy  string                `json:"created_by"`
	Strategy   *string               `json:"strategy"`
	ShiftCount int                   `json:"shift_count"`
	CreatedAt  string                `json:"created_at"`
	Shifts     []shift.ShiftResponse `json:"shifts,omitempty"`
}

func ToResponse(s Schedule) ScheduleResponse {
	var strategy *string
	if s.Strategy != nil {
		v := string(*s.Strategy)
		strategy = &v
	}
	return ScheduleResponse{
		ID:         s.ID,
		Name:       s.Name,
		StartDate:  s.StartDate.Format("2006-01-02"),
		EndDate:    s.EndDate.Format("2006-01-02"),
		CreatedBy:  s.CreatedBy,
		Strategy:   strategy,
		ShiftCount: s.ShiftCount(),
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
		Shifts:     shift.ToResponseList(s.Shifts),
	}
}
