package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/biotrack/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack/attendance-backend-go/internal/pkg/database"
)

type factRepositoryImpl struct {
	db *database.DB
}

func NewFactRepository(db *database.DB) attendance.FactRepository {
	return &factRepositoryImpl{db: db}
}

// Upsert implements attendance.FactRepository. Keyed on
// (employee_id, date) so rerunning the nightly job is idempotent.
func (r *factRepositoryImpl) Upsert(ctx context.Context, fact attendance.Fact) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_facts (
			employee_id, date, check_in, check_out,
			late_minutes, early_leave_minutes, total_hours, overtime_hours,
			status, scheduled_day, invalid_interval
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			late_minutes = EXCLUDED.late_minutes,
			early_leave_minutes = EXCLUDED.early_leave_minutes,
			total_hours = EXCLUDED.total_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			status = EXCLUDED.status,
			scheduled_day = EXCLUDED.scheduled_day,
			invalid_interval = EXCLUDED.invalid_interval,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		fact.EmployeeID,
		fact.Date,
		fact.CheckIn,
		fact.CheckOut,
		fact.LateMinutes,
		fact.EarlyLeaveMinutes,
		fact.TotalHours,
		fact.OvertimeHours,
		fact.Status,
		fact.ScheduledDay,
		fact.InvalidInterval,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance fact: %w", err)
	}

	return nil
}

// ListByEmployee implements attendance.FactRepository.
func (r *factRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Fact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, date, check_in, check_out,
			   late_minutes, early_leave_minutes, total_hours, overtime_hours,
			   status, scheduled_day, invalid_interval
		FROM attendance_facts
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance facts: %w", err)
	}
	defer rows.Close()

	var facts []attendance.Fact
	for rows.Next() {
		var fact attendance.Fact
		if err := rows.Scan(
			&fact.EmployeeID, &fact.Date, &fact.CheckIn, &fact.CheckOut,
			&fact.LateMinutes, &fact.EarlyLeaveMinutes, &fact.TotalHours, &fact.OvertimeHours,
			&fact.Status, &fact.ScheduledDay, &fact.InvalidInterval,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance fact: %w", err)
		}
		facts = append(facts, fact)
	}

	return facts, rows.Err()
}
