package attendance

import "time"

type FactResponse struct {
	EmployeeID        string  `json:"employee_id"`
	Date              string  `json:"date"`
	CheckIn           *string `json:"check_in"`
	CheckOut          *string `json:"check_out"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyLeaveMinutes int     `json:"early_leave_minutes"`
	TotalHours        float64 `json:"total_hours"`
	OvertimeHours     float64 `json:"overtime_hours"`
	Status            string  `json:"status"`
	ScheduledDay      bool    `json:"scheduled_day"`
	InvalidInterval   bool    `json:"invalid_interval,omitempty"`
}

// MapFactToResponse converts a Fact entity to its response form.
func MapFactToResponse(fact Fact) FactResponse {
	return FactResponse{
		EmployeeID:        fact.EmployeeID,
		Date:              fact.Date.Format("2006-01-02"),
		CheckIn:           timePtrToString(fact.CheckIn),
		CheckOut:          timePtrToString(fact.CheckOut),
		LateMinutes:       fact.LateMinutes,
		EarlyLeaveMinutes: fact.EarlyLeaveMinutes,
		TotalHours:        fact.TotalHours,
		OvertimeHours:     fact.OvertimeHours,
		Status:            string(fact.Status),
		ScheduledDay:      fact.ScheduledDay,
		InvalidInterval:   fact.InvalidInterval,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}
