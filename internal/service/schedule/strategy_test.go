package schedule

import (
	"testing"
	"time"

	domain "github.com/RostrApp/rostr-backend-go/internal/domain/schedule"
	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster(n int) []user.User {
	names := []string{"Alice", "Bob", "Steve", "Diana", "Evan"}
	roster := make([]user.User, 0, n)
	for i := 0; i < n; i++ {
		roster = append(roster, user.User{
			ID:       names[i] + "-id",
			FullName: names[i],
			Role:     user.RoleStaff,
		})
	}
	return roster
}

func testRange(days int) (start, end time.Time) {
	start = time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 0, days-1)
	return start, end
}

func TestNewStrategy(t *testing.T) {
	tests := []struct {
		kind    domain.StrategyKind
		wantErr error
	}{
		{kind: domain.StrategyEven},
		{kind: domain.StrategyMinimum},
		{kind: domain.StrategyDayNight},
		{kind: domain.StrategyKind("random"), wantErr: domain.ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s, err := NewStrategy(tt.kind)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, s.Kind())
		})
	}
}

func TestEvenStrategy(t *testing.T) {
	roster := testRoster(3)
	start, end := testRange(7)

	shifts, err := (&EvenStrategy{}).Assign(roster, start, end)
	require.NoError(t, err)
	require.Len(t, shifts, 7)

	counts := make(map[string]int)
	for i, s := range shifts {
		assert.Equal(t, roster[i%3].ID, s.StaffID)
		assert.Equal(t, 9, s.StartTime.Hour())
		assert.Equal(t, 17, s.EndTime.Hour())
		assert.Equal(t, shift.StatusScheduled, s.Status)
		counts[s.StaffID]++
	}

	// 7 shifts over 3 staff: counts differ by at most one
	min, max := shifts[0].StaffID, shifts[0].StaffID
	for id, c := range counts {
		if c < counts[min] {
			min = id
		}
		if c > counts[max] {
			max = id
		}
	}
	assert.LessOrEqual(t, counts[max]-counts[min], 1)
}

func TestEvenStrategySingleDay(t *testing.T) {
	roster := testRoster(2)
	start, end := testRange(1)

	shifts, err := (&EvenStrategy{}).Assign(roster, start, end)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, roster[0].ID, shifts[0].StaffID)
}

func TestMinimumStrategy(t *testing.T) {
	roster := testRoster(4)
	start, end := testRange(5)

	shifts, err := (&MinimumStrategy{}).Assign(roster, start, end)
	require.NoError(t, err)
	require.Len(t, shifts, 5)

	for _, s := range shifts {
		assert.Equal(t, roster[0].ID, s.StaffID)
		assert.Equal(t, 9, s.StartTime.Hour())
		assert.Equal(t, 17, s.EndTime.Hour())
	}
}

func TestDayNightStrategy(t *testing.T) {
	roster := testRoster(3)
	start, end := testRange(4)

	shifts, err := (&DayNightStrategy{}).Assign(roster, start, end)
	require.NoError(t, err)
	require.Len(t, shifts, 8)

	for _, s := range shifts {
		if s.StartTime.Hour() < dayNightBoundaryHour {
			assert.Equal(t, roster[0].ID, s.StaffID)
			assert.Equal(t, 8, s.StartTime.Hour())
			assert.Equal(t, 16, s.EndTime.Hour())
		} else {
			assert.Equal(t, roster[1].ID, s.StaffID)
			assert.Equal(t, 18, s.StartTime.Hour())
			// Night shift ends at midnight of the next day
			assert.Equal(t, 0, s.EndTime.Hour())
			assert.Equal(t, s.StartTime.AddDate(0, 0, 1).Day(), s.EndTime.Day())
		}
	}

	// Third roster entry never receives a shift
	for _, s := range shifts {
		assert.NotEqual(t, roster[2].ID, s.StaffID)
	}
}

func TestDayNightStrategyNeedsTwoStaff(t *testing.T) {
	start, end := testRange(3)

	_, err := (&DayNightStrategy{}).Assign(testRoster(1), start, end)
	assert.ErrorIs(t, err, domain.ErrInsufficientStaff)
}

func TestStrategiesRejectEmptyRoster(t *testing.T) {
	start, end := testRange(3)

	for _, s := range []AssignmentStrategy{&EvenStrategy{}, &MinimumStrategy{}, &DayNightStrategy{}} {
		_, err := s.Assign(nil, start, end)
		assert.ErrorIs(t, err, domain.ErrInsufficientStaff, string(s.Kind()))
	}
}

func TestStrategiesRejectInvertedRange(t *testing.T) {
	roster := testRoster(3)
	start, _ := testRange(1)
	end := start.AddDate(0, 0, -1)

	for _, s := range []AssignmentStrategy{&EvenStrategy{}, &MinimumStrategy{}, &DayNightStrategy{}} {
		_, err := s.Assign(roster, start, end)
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange, string(s.Kind()))
	}
}

func TestSchedulerSwapsStrategy(t *testing.T) {
	roster := testRoster(2)
	start, end := testRange(2)

	scheduler := NewScheduler(&MinimumStrategy{})
	shifts, err := scheduler.Assign(roster, start, end)
	require.NoError(t, err)
	require.Len(t, shifts, 2)
	assert.Equal(t, roster[0].ID, shifts[1].StaffID)

	scheduler.SetStrategy(&EvenStrategy{})
	assert.Equal(t, domain.StrategyEven, scheduler.Strategy().Kind())

	shifts, err = scheduler.Assign(roster, start, end)
	require.NoError(t, err)
	require.Len(t, shifts, 2)
	assert.Equal(t, roster[1].ID, shifts[1].StaffID)
}
