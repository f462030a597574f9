package shift

import "time"

type ShiftResponse struct {
	ID         string  `json:"id"`
	StaffID    string  `json:"staff_id"`
	ScheduleID string  `json:"schedule_id"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	ClockIn    *string `json:"clock_in"`
	ClockOut   *string `json:"clock_out"`
	Status     string  `json:"status"`
	StaffName  string  `json:"staff_name,omitempty"`
}

func isoPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:         s.ID,
		StaffID:    s.StaffID,
		ScheduleID: s.ScheduleID,
		StartTime:  s.StartTime.Format(time.RFC3339),
		EndTime:    s.EndTime.Format(time.RFC3339),
		ClockIn:    isoPtr(s.ClockIn),
		ClockOut:   isoPtr(s.ClockOut),
		Status:     string(s.Status),
		StaffName:  s.StaffName,
	}
}

func ToResponseList(shifts []Shift) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, ToResponse(s))
	}
	return out
}

type ClockEventResponse struct {
	Shift       ShiftResponse `json:"shift"`
	HoursWorked float64       `json:"hours_worked"`
}
