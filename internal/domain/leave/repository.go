package leave

import (
	"context"
	"time"
)

type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *string
}

type LeaveRequestRepository interface {
	// Create creates a new leave request
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by id
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateStatus moves a request out of PENDING
	UpdateStatus(ctx context.Context, req LeaveRequest) error

	// List retrieves leave requests with filters, newest first
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)

	// HasApprovedLeave reports whether an APPROVED request covers the
	// date, inclusive on both ends
	HasApprovedLeave(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
