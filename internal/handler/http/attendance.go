package http

import (
	"net/http"
	"time"

	"github.com/biotrack/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack/attendance-backend-go/internal/domain/report"
	"github.com/biotrack/attendance-backend-go/internal/handler/http/response"
	"github.com/biotrack/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	// Daily derived attendance for all (or selected) employees
	GetDaily(w http.ResponseWriter, r *http.Request)

	// Derived attendance for one employee-day
	GetEmployeeDay(w http.ResponseWriter, r *http.Request)

	// Materialized attendance history for one employee
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	reportService     report.ReportService
}

func NewAttendanceHandler(
	attendanceService attendance.AttendanceService,
	reportService report.ReportService,
) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

// GetDaily handles GET /attendance/daily
func (h *attendanceHandlerImpl) GetDaily(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.DailyReportRequest{
		Date: r.URL.Query().Get("date"),
	}
	if ids, ok := r.URL.Query()["employee_id"]; ok {
		req.EmployeeIDs = ids
	}

	result, err := h.reportService.DailyReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeDay handles GET /attendance/{employeeID}/day
func (h *attendanceHandlerImpl) GetEmployeeDay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	employeeID := chi.URLParam(r, "employeeID")

	date, ok := validator.IsValidDate(r.URL.Query().Get("date"))
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	fact, err := h.attendanceService.DeriveDay(ctx, employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.MapFactToResponse(fact))
}

// GetHistory handles GET /attendance/{employeeID}/history
func (h *attendanceHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	employeeID := chi.URLParam(r, "employeeID")

	from, ok := validator.IsValidDate(r.URL.Query().Get("from"))
	if !ok {
		// Default to the last 30 days.
		from = time.Now().AddDate(0, 0, -30)
	}
	to, ok := validator.IsValidDate(r.URL.Query().Get("to"))
	if !ok {
		to = time.Now()
	}

	facts, err := h.attendanceService.History(ctx, employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]attendance.FactResponse, 0, len(facts))
	for _, fact := range facts {
		responses = append(responses, attendance.MapFactToResponse(fact))
	}

	response.Success(w, responses)
}
