package attendance

import "time"

type Status string

const (
	StatusPresent    Status = "PRESENT"
	StatusAbsent     Status = "ABSENT"
	StatusLate       Status = "LATE"
	StatusEarlyLeave Status = "EARLY_LEAVE"
	StatusOnLeave    Status = "ON_LEAVE"
)

// Fact is the derived attendance result for one employee-day. It is
// never mutated; recomputation from the punch log is the only update
// path.
type Fact struct {
	EmployeeID        string
	Date              time.Time
	CheckIn           *time.Time
	CheckOut          *time.Time
	LateMinutes       int
	EarlyLeaveMinutes int
	TotalHours        float64
	OvertimeHours     float64
	Status            Status

	// ScheduledDay is false when the resolved shift does not list the
	// date's weekday as a working day. Aggregation skips unscheduled
	// days that have no punches and no leave.
	ScheduledDay bool

	// InvalidInterval marks a day whose last OUT precedes the first IN.
	// Duration fields are clamped to zero instead of going negative.
	InvalidInterval bool
}
