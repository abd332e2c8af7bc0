package http

import (
	"net/http"
	"strconv"

	"github.com/biotrack/attendance-backend-go/internal/domain/report"
	"github.com/biotrack/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Department Attendance Report
	GetDepartmentReport(w http.ResponseWriter, r *http.Request)

	// Monthly Employee Report
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetDepartmentReport handles GET /reports/department
func (h *reportHandlerImpl) GetDepartmentReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.DepartmentReportRequest{
		Department: r.URL.Query().Get("department"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.DepartmentReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthlyReport handles GET /reports/monthly
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	req := report.MonthlyReportRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Month:      month,
		Year:       year,
	}

	result, err := h.reportService.MonthlyReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
