package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/biotrack/attendance-backend-go/internal/domain/shift"
	"github.com/biotrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftDefinitionRepositoryImpl struct {
	db *database.DB
}

func NewShiftDefinitionRepository(db *database.DB) shift.DefinitionRepository {
	return &shiftDefinitionRepositoryImpl{db: db}
}

// GetByID implements shift.DefinitionRepository.
func (r *shiftDefinitionRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, time_start, time_end, break_duration_minutes, working_days,
			   created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var (
		def         shift.Definition
		workingDays []int32
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&def.ID, &def.Name, &def.TimeStart, &def.TimeEnd,
		&def.BreakDurationMinutes, &workingDays,
		&def.CreatedAt, &def.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Definition{}, shift.ErrShiftNotFound
		}
		return shift.Definition{}, fmt.Errorf("failed to get shift: %w", err)
	}

	def.WorkingDays = toIntSlice(workingDays)
	return def, nil
}

// List implements shift.DefinitionRepository.
func (r *shiftDefinitionRepositoryImpl) List(ctx context.Context) ([]shift.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, time_start, time_end, break_duration_minutes, working_days,
			   created_at, updated_at
		FROM shifts
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var defs []shift.Definition
	for rows.Next() {
		var (
			def         shift.Definition
			workingDays []int32
		)
		if err := rows.Scan(
			&def.ID, &def.Name, &def.TimeStart, &def.TimeEnd,
			&def.BreakDurationMinutes, &workingDays,
			&def.CreatedAt, &def.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		def.WorkingDays = toIntSlice(workingDays)
		defs = append(defs, def)
	}

	return defs, rows.Err()
}

func toIntSlice(in []int32) []int {
	if in == nil {
		return nil
	}
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

type shiftAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &shiftAssignmentRepositoryImpl{db: db}
}

// GetByEmployeeID implements shift.AssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, shift_id, date_start, date_end, created_at, updated_at
		FROM shift_assignments
		WHERE employee_id = $1
		ORDER BY date_start DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		var a shift.Assignment
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.ShiftID, &a.DateStart, &a.DateEnd,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}
