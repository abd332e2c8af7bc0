package report

import (
	"fmt"
	"time"

	"github.com/biotrack/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// DAILY ATTENDANCE REPORT
// ========================================

type DailyReportRequest struct {
	Date        string   `json:"date"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceRow is one employee's derived fact enriched with identity
// fields for presentation.
type AttendanceRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Position     string `json:"position"`

	attendance.FactResponse
}

type DailyReport struct {
	Date string          `json:"date"`
	Rows []AttendanceRow `json:"rows"`

	UnavailableCount int              `json:"unavailable_count"`
	Unavailable      []UnavailableDay `json:"unavailable,omitempty"`
}

// ========================================
// DEPARTMENT REPORT
// ========================================

type DepartmentReportRequest struct {
	Department string `json:"department"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *DepartmentReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
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

	if startOK && endOK && startDate.After(endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be after start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UnavailableDay identifies an employee-day whose derivation failed and
// was skipped under the "skip" error policy.
type UnavailableDay struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

type DepartmentReport struct {
	Department  string `json:"department"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	TotalEmployees int `json:"total_employees"`

	PresentCount    int `json:"present_count"`
	AbsentCount     int `json:"absent_count"`
	LateCount       int `json:"late_count"`
	EarlyLeaveCount int `json:"early_leave_count"`
	OnLeaveCount    int `json:"on_leave_count"`

	AverageLateMinutes       float64 `json:"average_late_minutes"`
	AverageEarlyLeaveMinutes float64 `json:"average_early_leave_minutes"`
	TotalOvertimeHours       float64 `json:"total_overtime_hours"`

	UnavailableCount int              `json:"unavailable_count"`
	Unavailable      []UnavailableDay `json:"unavailable,omitempty"`
}

// ========================================
// MONTHLY EMPLOYEE REPORT
// ========================================

type MonthlyReportRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReport struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	PeriodMonth  int    `json:"period_month"`
	PeriodYear   int    `json:"period_year"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`
	GeneratedAt  string `json:"generated_at"`

	Summary   MonthlySummary `json:"summary"`
	DailyLogs []DailyLog     `json:"daily_logs"`

	Unavailable []UnavailableDay `json:"unavailable,omitempty"`
}

type MonthlySummary struct {
	TotalWorkDays      int     `json:"total_work_days"`
	TotalWorkHours     float64 `json:"total_work_hours"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
	TotalLateMinutes   int     `json:"total_late_minutes"`
	TotalPresent       int     `json:"total_present"`
	TotalLate          int     `json:"total_late"`
	TotalEarlyLeave    int     `json:"total_early_leave"`
	TotalLeave         int     `json:"total_leave"`
	TotalAbsent        int     `json:"total_absent"`
	TotalUnavailable   int     `json:"total_unavailable"`
}

type DailyLog struct {
	Date              string  `json:"date"`
	DayOfWeek         string  `json:"day_of_week"`
	CheckIn           *string `json:"check_in"`
	CheckOut          *string `json:"check_out"`
	Status            string  `json:"status"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyLeaveMinutes int     `json:"early_leave_minutes"`
	TotalHours        float64 `json:"total_hours"`
	OvertimeHours     float64 `json:"overtime_hours"`
}
