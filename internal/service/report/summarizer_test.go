package report

import (
	"testing"
	"time"

	domain "github.com/RostrApp/rostr-backend-go/internal/domain/report"
	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayShift(staffName string, day time.Time, startHour int, status shift.Status) shift.Shift {
	start := day.Add(time.Duration(startHour) * time.Hour)
	return shift.Shift{
		StaffName: staffName,
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
		Status:    status,
	}
}

func TestSummarize(t *testing.T) {
	day := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
	shifts := []shift.Shift{
		dayShift("Alice", day, 9, shift.StatusCompleted),
		dayShift("Bob", day, 9, shift.StatusMissed),
		dayShift("Steve", day, 18, shift.StatusLate),
	}

	summary := Summarize("sched-1", shifts)
	assert.Equal(t, "sched-1", summary.ScheduleID)
	require.Len(t, summary.Days, 1)

	buckets, ok := summary.Days["2025-11-17"]
	require.True(t, ok)
	assert.Equal(t, []string{"Alice"}, buckets[domain.BucketCompleted])
	assert.Equal(t, []string{"Bob"}, buckets[domain.BucketMissed])
	assert.Equal(t, []string{"Steve"}, buckets[domain.BucketLate])
	assert.Empty(t, buckets[domain.BucketScheduled])
	assert.Empty(t, buckets[domain.BucketOngoing])
}

func TestSummarizeAllBucketsPresent(t *testing.T) {
	day := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
	summary := Summarize("sched-1", []shift.Shift{
		dayShift("Alice", day, 9, shift.StatusCompleted),
	})

	buckets := summary.Days["2025-11-17"]
	require.Len(t, buckets, len(domain.BucketNames))
	for _, name := range domain.BucketNames {
		_, ok := buckets[name]
		assert.True(t, ok, name)
	}
}

func TestSummarizeGroupsByStartDay(t *testing.T) {
	day1 := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	// The night shift runs past midnight but belongs to its start day
	night := dayShift("Bob", day1, 18, shift.StatusCompleted)
	night.EndTime = day2

	summary := Summarize("sched-1", []shift.Shift{
		night,
		dayShift("Alice", day2, 9, shift.StatusScheduled),
	})

	require.Len(t, summary.Days, 2)
	assert.Equal(t, []string{"Bob"}, summary.Days["2025-11-17"][domain.BucketCompleted])
	assert.Equal(t, []string{"Alice"}, summary.Days["2025-11-18"][domain.BucketScheduled])
}

func TestSummarizeSameStaffMultipleBuckets(t *testing.T) {
	day := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
	summary := Summarize("sched-1", []shift.Shift{
		dayShift("Alice", day, 8, shift.StatusCompleted),
		dayShift("Alice", day, 18, shift.StatusMissed),
	})

	buckets := summary.Days["2025-11-17"]
	assert.Equal(t, []string{"Alice"}, buckets[domain.BucketCompleted])
	assert.Equal(t, []string{"Alice"}, buckets[domain.BucketMissed])
}

func TestSummarizePreservesIterationOrder(t *testing.T) {
	day := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
	summary := Summarize("sched-1", []shift.Shift{
		dayShift("Alice", day, 8, shift.StatusMissed),
		dayShift("Bob", day, 10, shift.StatusMissed),
		dayShift("Steve", day, 12, shift.StatusMissed),
	})

	assert.Equal(t, []string{"Alice", "Bob", "Steve"}, summary.Days["2025-11-17"][domain.BucketMissed])
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize("sched-1", nil)
	assert.Equal(t, "sched-1", summary.ScheduleID)
	assert.Empty(t, summary.Days)
}
