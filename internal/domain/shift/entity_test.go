package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(t *testing.T) (start, end time.Time) {
	t.Helper()
	start = time.Date(2025, 11, 17, 9, 0, 0, 0, time.UTC)
	end = time.Date(2025, 11, 17, 17, 0, 0, 0, time.UTC)
	return start, end
}

func TestNextStatus(t *testing.T) {
	start, end := window(t)
	clockIn := start.Add(5 * time.Minute)
	clockOut := end.Add(-5 * time.Minute)

	tests := []struct {
		name     string
		clockIn  *time.Time
		clockOut *time.Time
		now      time.Time
		current  Status
		want     Status
	}{
		{
			name:    "before window is scheduled",
			now:     start.Add(-time.Hour),
			current: StatusScheduled,
			want:    StatusScheduled,
		},
		{
			name:    "inside window without clock in is late",
			now:     start.Add(time.Hour),
			current: StatusScheduled,
			want:    StatusLate,
		},
		{
			name:    "after window without clock in is missed",
			now:     end.Add(time.Hour),
			current: StatusLate,
			want:    StatusMissed,
		},
		{
			name:    "clock in wins over elapsed window",
			clockIn: &clockIn,
			now:     end.Add(time.Hour),
			current: StatusOngoing,
			want:    StatusOngoing,
		},
		{
			name:     "both clocks always completed",
			clockIn:  &clockIn,
			clockOut: &clockOut,
			now:      start.Add(-time.Hour),
			current:  StatusOngoing,
			want:     StatusCompleted,
		},
		{
			name:    "now equal to start keeps current status",
			now:     start,
			current: StatusScheduled,
			want:    StatusScheduled,
		},
		{
			name:    "now equal to end keeps current status",
			now:     end,
			current: StatusLate,
			want:    StatusLate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Shift{
				StartTime: start,
				EndTime:   end,
				ClockIn:   tt.clockIn,
				ClockOut:  tt.clockOut,
				Status:    tt.current,
			}
			assert.Equal(t, tt.want, s.NextStatus(tt.now))
		})
	}
}

func TestNextStatusIdempotent(t *testing.T) {
	start, end := window(t)
	now := start.Add(time.Hour)

	s := Shift{StartTime: start, EndTime: end, Status: StatusScheduled}
	first := s.NextStatus(now)
	s.Status = first
	assert.Equal(t, first, s.NextStatus(now))
}

func TestRefreshStatus(t *testing.T) {
	start, end := window(t)

	s := Shift{StartTime: start, EndTime: end, Status: StatusScheduled}
	assert.True(t, s.RefreshStatus(start.Add(time.Hour)))
	assert.Equal(t, StatusLate, s.Status)

	// Same instant again is a no-op
	assert.False(t, s.RefreshStatus(start.Add(time.Hour)))
	assert.Equal(t, StatusLate, s.Status)
}

func TestPunchIn(t *testing.T) {
	start, end := window(t)

	t.Run("records clock in and goes ongoing", func(t *testing.T) {
		s := Shift{StaffID: "staff-1", StartTime: start, EndTime: end, Status: StatusScheduled}
		now := start.Add(10 * time.Minute)

		require.NoError(t, s.PunchIn("staff-1", now))
		require.NotNil(t, s.ClockIn)
		assert.Equal(t, now, *s.ClockIn)
		assert.Equal(t, StatusOngoing, s.Status)
	})

	t.Run("rejects other staff", func(t *testing.T) {
		s := Shift{StaffID: "staff-1", StartTime: start, EndTime: end, Status: StatusScheduled}
		err := s.PunchIn("staff-2", start)
		assert.ErrorIs(t, err, ErrNotAssignedStaff)
		assert.Nil(t, s.ClockIn)
	})

	t.Run("rejects second clock in", func(t *testing.T) {
		s := Shift{StaffID: "staff-1", StartTime: start, EndTime: end, Status: StatusScheduled}
		require.NoError(t, s.PunchIn("staff-1", start.Add(time.Minute)))
		err := s.PunchIn("staff-1", start.Add(2*time.Minute))
		assert.ErrorIs(t, err, ErrAlreadyClockedIn)
	})
}

func TestPunchOut(t *testing.T) {
	start, end := window(t)

	t.Run("records clock out and completes", func(t *testing.T) {
		s := Shift{StaffID: "staff-1", StartTime: start, EndTime: end, Status: StatusScheduled}
		require.NoError(t, s.PunchIn("staff-1", start))
		require.NoError(t, s.PunchOut("staff-1", end))
		require.NotNil(t, s.ClockOut)
		assert.Equal(t, StatusCompleted, s.Status)
	})

	t.Run("requires prior clock in", func(t *testing.T) {
		s := Shift{StaffID: "staff-1", StartTime: start, EndTime: end, Status: StatusScheduled}
		err := s.PunchOut("staff-1", end)
		assert.ErrorIs(t, err, ErrNotClockedIn)
	})

	t.Run("rejects second clock out", func(t *testing.T) {
		s := Shift{StaffID: "staff-1", StartTime: start, EndTime: end, Status: StatusScheduled}
		require.NoError(t, s.PunchIn("staff-1", start))
		require.NoError(t, s.PunchOut("staff-1", end.Add(-time.Hour)))
		err := s.PunchOut("staff-1", end)
		assert.ErrorIs(t, err, ErrAlreadyClockedOut)
	})

	t.Run("rejects clock out before clock in", func(t *testing.T) {
		s := Shift{StaffID: "staff-1", StartTime: start, EndTime: end, Status: StatusScheduled}
		require.NoError(t, s.PunchIn("staff-1", start.Add(time.Hour)))
		err := s.PunchOut("staff-1", start)
		assert.ErrorIs(t, err, ErrClockOutBeforeClockIn)
	})

	t.Run("rejects other staff", func(t *testing.T) {
		s := Shift{StaffID: "staff-1", StartTime: start, EndTime: end, Status: StatusScheduled}
		require.NoError(t, s.PunchIn("staff-1", start))
		err := s.PunchOut("staff-2", end)
		assert.ErrorIs(t, err, ErrNotAssignedStaff)
	})
}

func TestHoursWorked(t *testing.T) {
	start, end := window(t)

	t.Run("zero until both clocks recorded", func(t *testing.T) {
		s := Shift{StaffID: "staff-1", StartTime: start, EndTime: end}
		assert.Equal(t, 0.0, s.HoursWorked())

		require.NoError(t, s.PunchIn("staff-1", start))
		assert.Equal(t, 0.0, s.HoursWorked())
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		s := Shift{StaffID: "staff-1", StartTime: start, EndTime: end}
		require.NoError(t, s.PunchIn("staff-1", start))
		require.NoError(t, s.PunchOut("staff-1", start.Add(7*time.Hour+44*time.Minute)))

		// 7h44m = 7.7333... hours
		assert.Equal(t, 7.73, s.HoursWorked())
	})
}

func TestDay(t *testing.T) {
	s := Shift{
		StartTime: time.Date(2025, 11, 17, 18, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC),
	}
	// Attribution follows the start day even when the window crosses midnight
	assert.Equal(t, "2025-11-17", s.Day())

	clockIn := time.Date(2025, 11, 18, 0, 30, 0, 0, time.UTC)
	s.ClockIn = &clockIn
	assert.Equal(t, "2025-11-17", s.Day())
}
