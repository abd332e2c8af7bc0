package attendance

import (
	"context"
	"time"
)

// FactRepository stores materialized attendance facts. The nightly job
// writes yesterday's facts here; the history endpoint reads them.
// Upsert keyed on (employee_id, date) keeps recomputation idempotent.
type FactRepository interface {
	// Upsert inserts or replaces the fact for an employee-day
	Upsert(ctx context.Context, fact Fact) error

	// ListByEmployee retrieves stored facts in [from, to], newest first
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Fact, error)
}
