package report

import (
	"github.com/RostrApp/rostr-backend-go/internal/domain/report"
	"github.com/RostrApp/rostr-backend-go/internal/domain/shift"
)

// bucketFor maps a shift status to its summary bucket name.
func bucketFor(status shift.Status) string {
	switch status {
	case shift.StatusScheduled:
		return report.BucketScheduled
	case shift.StatusOngoing:
		return report.BucketOngoing
	case shift.StatusCompleted:
		return report.BucketCompleted
	case shift.StatusMissed:
		return report.BucketMissed
	case shift.StatusLate:
		return report.BucketLate
	}
	return report.BucketScheduled
}

// Summarize groups a schedule's shifts by the calendar day of each shift's
// start_time and buckets staff display names by the shift's current status.
// Statuses must already reflect the latest recomputation; the summarizer
// never recomputes. Names are appended in shift iteration order, so callers
// passing shifts ordered by start_time get deterministic output. A staff
// member with two differently-statused shifts on one day appears in both
// buckets.
func Summarize(scheduleID string, shifts []shift.Shift) report.AttendanceSummary {
	days := make(map[string]report.DaySummary)

	for _, s := range shifts {
		day := s.Day()
		buckets, ok := days[day]
		if !ok {
			buckets = make(report.DaySummary, len(report.BucketNames))
			for _, name := range report.BucketNames {
				buckets[name] = []string{}
			}
			days[day] = buckets
		}

		bucket := bucketFor(s.Status)
		buckets[bucket] = append(buckets[bucket], s.StaffName)
	}

	return report.AttendanceSummary{
		ScheduleID: scheduleID,
		Days:       days,
	}
}
