package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/biotrack/attendance-backend-go/internal/domain/leave"
	"github.com/biotrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, type, date_start, date_end, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.Type,
		req.DateStart,
		req.DateEnd,
		req.Reason,
		req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.type, lr.date_start, lr.date_end, lr.reason,
			   lr.status, lr.approved_by, lr.approved_at, lr.rejection_reason,
			   lr.created_at, lr.updated_at, e.name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.DateStart, &req.DateEnd, &req.Reason,
		&req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// UpdateStatus implements leave.LeaveRequestRepository. The status guard
// in the WHERE clause keeps concurrent approvals from racing past the
// service-level check.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4,
			updated_at = NOW()
		WHERE id = $5 AND status = 'PENDING'
	`

	tag, err := q.Exec(ctx, query,
		req.Status,
		req.ApprovedBy,
		req.ApprovedAt,
		req.RejectionReason,
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrAlreadyProcessed
	}

	return nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.type, lr.date_start, lr.date_end, lr.reason,
			   lr.status, lr.approved_by, lr.approved_at, lr.rejection_reason,
			   lr.created_at, lr.updated_at, e.name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE ($1::text IS NULL OR lr.employee_id = $1)
		  AND ($2::text IS NULL OR lr.status = $2)
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.DateStart, &req.DateEnd, &req.Reason,
			&req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
			&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// HasApprovedLeave implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) HasApprovedLeave(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE employee_id = $1
			  AND status = 'APPROVED'
			  AND date_start <= $2
			  AND date_end >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}

	return exists, nil
}
