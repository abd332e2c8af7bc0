package leave

import (
	"context"
	"time"
)

// Oracle answers whether an employee is on approved leave for a date.
// It is the only view of leave the attendance core consumes.
type Oracle interface {
	IsOnLeave(ctx context.Context, employeeID string, date time.Time) (bool, error)
}

// LeaveService defines the leave-request workflow.
type LeaveService interface {
	// Submit creates a new request in PENDING state
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)

	// Approve moves a PENDING request to APPROVED
	Approve(ctx context.Context, req ApproveLeaveRequest) (LeaveRequestResponse, error)

	// Reject moves a PENDING request to REJECTED with a reason
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveRequestResponse, error)

	// List retrieves leave requests with filters
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
}
