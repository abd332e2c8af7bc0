package employee

type EmployeeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	HireDate   string `json:"hire_date"`
	Active     bool   `json:"active"`
}

// MapEmployeeToResponse converts an Employee entity to its response form.
func MapEmployeeToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Department: emp.Department,
		Position:   emp.Position,
		HireDate:   emp.HireDate.Format("2006-01-02"),
		Active:     emp.Active,
	}
}
