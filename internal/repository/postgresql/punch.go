package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/biotrack/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack/attendance-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// PunchesFor implements punch.PunchRepository.
func (r *punchRepositoryImpl) PunchesFor(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, timestamp, direction, device_id, verified, created_at
		FROM punches
		WHERE employee_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Timestamp, &p.Direction,
			&p.DeviceID, &p.Verified, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	return punches, rows.Err()
}

// Append implements punch.PunchRepository.
func (r *punchRepositoryImpl) Append(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (id, employee_id, timestamp, direction, device_id, verified)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.EmployeeID,
		p.Timestamp,
		p.Direction,
		p.DeviceID,
		p.Verified,
	).Scan(&p.CreatedAt)

	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to append punch: %w", err)
	}

	return p, nil
}
