package report

import "time"

// Bucket names used in the per-day attendance summary. One shift status maps
// to exactly one bucket.
const (
	BucketScheduled = "scheduled"
	BucketOngoing   = "ongoing"
	BucketCompleted = "completed"
	BucketMissed    = "missed"
	BucketLate      = "late"
)

var BucketNames = []string{
	BucketScheduled,
	BucketOngoing,
	BucketCompleted,
	BucketMissed,
	BucketLate,
}

// DaySummary maps a bucket name to the display names of staff whose shift on
// that day carries the bucket's status. A name may appear in more than one
// bucket when the staff member holds multiple shifts that day.
type DaySummary map[string][]string

// AttendanceSummary groups a schedule's shifts by the calendar day of each
// shift's start_time, keyed "YYYY-MM-DD".
type AttendanceSummary struct {
	ScheduleID string                `json:"schedule_id"`
	Days       map[string]DaySummary `json:"days"`
}

// Report is an immutable, timestamped snapshot of a generated summary plus
// the identity of the admin who requested it.
type Report struct {
	ID          string
	AdminID     string
	GeneratedAt time.Time
	Summary     AttendanceSummary

	// DTO / Join
	AdminName string
}
