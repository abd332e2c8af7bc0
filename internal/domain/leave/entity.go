package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "PENDING"
	LeaveRequestStatusApproved LeaveRequestStatus = "APPROVED"
	LeaveRequestStatusRejected LeaveRequestStatus = "REJECTED"
)

// LeaveRequest entity. Created by employee action; an approver moves it
// from PENDING to APPROVED or REJECTED. Those states are terminal.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       string
	DateStart  time.Time
	DateEnd    time.Time
	Reason     string

	Status          LeaveRequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	EmployeeName *string
}
