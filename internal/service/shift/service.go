package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/biotrack/attendance-backend-go/internal/domain/shift"
	"github.com/jackc/pgx/v5"
)

type CalendarImpl struct {
	assignmentRepo shift.AssignmentRepository
	definitionRepo shift.DefinitionRepository
}

func NewCalendar(
	assignmentRepo shift.AssignmentRepository,
	definitionRepo shift.DefinitionRepository,
) shift.Calendar {
	return &CalendarImpl{
		assignmentRepo: assignmentRepo,
		definitionRepo: definitionRepo,
	}
}

// ShiftFor implements shift.Calendar.
//
// Assignment intervals should not overlap but the store does not
// enforce it, so resolution must stay deterministic: among matching
// assignments the latest DateStart wins, with the latest CreatedAt as
// tie-break.
func (c *CalendarImpl) ShiftFor(ctx context.Context, employeeID string, date time.Time) (shift.Definition, error) {
	assignments, err := c.assignmentRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return shift.Definition{}, fmt.Errorf("failed to get shift assignments: %w", err)
	}

	var selected *shift.Assignment
	for i := range assignments {
		a := assignments[i]
		if !a.Contains(date) {
			continue
		}
		if selected == nil ||
			a.DateStart.After(selected.DateStart) ||
			(a.DateStart.Equal(selected.DateStart) && a.CreatedAt.After(selected.CreatedAt)) {
			selected = &a
		}
	}

	if selected == nil {
		return shift.Definition{}, shift.ErrNoAssignment
	}

	def, err := c.definitionRepo.GetByID(ctx, selected.ShiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, shift.ErrShiftNotFound) {
			// Dangling shift reference behaves like no assignment.
			return shift.Definition{}, shift.ErrNoAssignment
		}
		return shift.Definition{}, fmt.Errorf("failed to get shift definition: %w", err)
	}

	return def, nil
}
