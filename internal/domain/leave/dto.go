package leave

import (
	"time"

	"github.com/biotrack/attendance-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveLeaveRequest struct {
	ID         string `json:"id"`
	ApprovedBy string `json:"approved_by"`
}

type RejectLeaveRequest struct {
	ID         string `json:"id"`
	ApprovedBy string `json:"approved_by"`
	Reason     string `json:"reason"`
}

func (r *RejectLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	Type            string  `json:"type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// MapLeaveRequestToResponse converts a LeaveRequest entity to its response form.
func MapLeaveRequestToResponse(req LeaveRequest) LeaveRequestResponse {
	var approvedAt *string
	if req.ApprovedAt != nil {
		s := req.ApprovedAt.Format(time.RFC3339)
		approvedAt = &s
	}

	return LeaveRequestResponse{
		ID:              req.ID,
		EmployeeID:      req.EmployeeID,
		EmployeeName:    req.EmployeeName,
		Type:            req.Type,
		StartDate:       req.DateStart.Format("2006-01-02"),
		EndDate:         req.DateEnd.Format("2006-01-02"),
		Reason:          req.Reason,
		Status:          string(req.Status),
		ApprovedBy:      req.ApprovedBy,
		ApprovedAt:      approvedAt,
		RejectionReason: req.RejectionReason,
		CreatedAt:       req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
