package shift

import (
	"context"
	"time"
)

type DefinitionRepository interface {
	// GetByID retrieves a shift definition by id
	GetByID(ctx context.Context, id string) (Definition, error)

	// List retrieves all shift definitions ordered by name
	List(ctx context.Context) ([]Definition, error)
}

type AssignmentRepository interface {
	// GetByEmployeeID retrieves every assignment of one employee,
	// ordered by date_start descending
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Assignment, error)
}

// Calendar resolves the shift in effect for an employee on a date.
// Returns ErrNoAssignment when no assignment covers the date; callers
// treat that as "shift-relative fields cannot be evaluated", never as a
// failure.
type Calendar interface {
	ShiftFor(ctx context.Context, employeeID string, date time.Time) (Definition, error)
}
