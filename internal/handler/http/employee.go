package http

import (
	"net/http"

	"github.com/biotrack/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack/attendance-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo employee.EmployeeRepository) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeRepo: employeeRepo,
	}
}

// List handles GET /employees
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		employees []employee.Employee
		err       error
	)
	if department := r.URL.Query().Get("department"); department != "" {
		employees, err = h.employeeRepo.ListByDepartment(ctx, department)
	} else {
		employees, err = h.employeeRepo.ListActive(ctx)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.MapEmployeeToResponse(emp))
	}

	response.Success(w, responses)
}
