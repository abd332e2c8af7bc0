package http

import (
	"encoding/json"
	"net/http"

	"github.com/biotrack/attendance-backend-go/internal/domain/leave"
	"github.com/biotrack/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Submit handles POST /leaves
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.leaveService.Submit(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// Approve handles POST /leaves/{id}/approve
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req leave.ApproveLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.leaveService.Approve(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", result)
}

// Reject handles POST /leaves/{id}/reject
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req leave.RejectLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.leaveService.Reject(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", result)
}

// List handles GET /leaves
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter leave.LeaveRequestFilter
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.leaveService.List(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
