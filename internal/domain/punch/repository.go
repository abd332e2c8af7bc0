package punch

import (
	"context"
	"time"
)

// PunchRepository is the read/append boundary of the punch log.
type PunchRepository interface {
	// PunchesFor retrieves the punches of one employee in the half-open
	// window [from, to), ordered by timestamp ascending.
	PunchesFor(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)

	// Append records a new punch. The log is append-only.
	Append(ctx context.Context, p Punch) (Punch, error)
}
