package response

import (
	"errors"
	"net/http"

	"github.com/biotrack/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack/attendance-backend-go/internal/domain/device"
	"github.com/biotrack/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack/attendance-backend-go/internal/domain/leave"
	"github.com/biotrack/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack/attendance-backend-go/internal/domain/report"
	"github.com/biotrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Punch domain errors
	case errors.Is(err, punch.ErrInvalidDirection):
		BadRequest(w, "Punch direction must be IN or OUT", nil)

	// Device domain errors
	case errors.Is(err, device.ErrDeviceNotFound):
		NotFound(w, "Device not found")
	case errors.Is(err, device.ErrInvalidDeviceKey):
		Unauthorized(w, "Invalid device key")
	case errors.Is(err, device.ErrDeviceInactive):
		Forbidden(w, "Device is not active")

	// Attendance and report errors. Derivation with unreachable source
	// data must fail loudly, never report a guessed status.
	case errors.Is(err, attendance.ErrDataUnavailable):
		ServiceUnavailable(w, "Attendance data is temporarily unavailable")
	case errors.Is(err, report.ErrReportAborted):
		ServiceUnavailable(w, "Report aborted: attendance data is temporarily unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
