package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/biotrack/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack/attendance-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to verify employee: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	request := leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		DateStart:  startDate,
		DateEnd:    endDate,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.MapLeaveRequestToResponse(created), nil
}

// Approve implements leave.LeaveService. Only PENDING requests can be
// approved; APPROVED and REJECTED are terminal.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ApproveLeaveRequest) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := time.Now()
	request.Status = leave.LeaveRequestStatusApproved
	request.ApprovedBy = &req.ApprovedBy
	request.ApprovedAt = &now

	if err := s.leaveRepo.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to approve leave request: %w", err)
	}

	return leave.MapLeaveRequestToResponse(request), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := time.Now()
	request.Status = leave.LeaveRequestStatusRejected
	request.ApprovedBy = &req.ApprovedBy
	request.ApprovedAt = &now
	request.RejectionReason = &req.Reason

	if err := s.leaveRepo.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to reject leave request: %w", err)
	}

	return leave.MapLeaveRequestToResponse(request), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.MapLeaveRequestToResponse(r))
	}
	return responses, nil
}

// OracleImpl answers the attendance deriver's leave question from the
// leave-request store.
type OracleImpl struct {
	leaveRepo leave.LeaveRequestRepository
}

func NewOracle(leaveRepo leave.LeaveRequestRepository) leave.Oracle {
	return &OracleImpl{leaveRepo: leaveRepo}
}

// IsOnLeave implements leave.Oracle. Store errors propagate: the caller
// must not treat an unreachable leave store as "not on leave".
func (o *OracleImpl) IsOnLeave(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	onLeave, err := o.leaveRepo.HasApprovedLeave(ctx, employeeID, date)
	if err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}
	return onLeave, nil
}
