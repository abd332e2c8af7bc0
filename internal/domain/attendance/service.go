package attendance

import (
	"context"
	"time"
)

// AttendanceService derives attendance facts from the punch log, the
// shift calendar and the leave oracle.
type AttendanceService interface {
	// DeriveDay computes the attendance fact for one employee-day.
	// Pure over fetched data: identical punches, shift and leave state
	// always produce the same fact.
	DeriveDay(ctx context.Context, employeeID string, date time.Time) (Fact, error)

	// History retrieves materialized facts for an employee, newest first
	History(ctx context.Context, employeeID string, from, to time.Time) ([]Fact, error)
}
