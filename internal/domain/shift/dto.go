package shift

type ShiftResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	TimeStart            string `json:"time_start"`
	TimeEnd              string `json:"time_end"`
	BreakDurationMinutes int    `json:"break_duration_minutes"`
	WorkingDays          []int  `json:"working_days"`
}

// MapDefinitionToResponse converts a Definition entity to its response form.
func MapDefinitionToResponse(def Definition) ShiftResponse {
	return ShiftResponse{
		ID:                   def.ID,
		Name:                 def.Name,
		TimeStart:            def.TimeStart,
		TimeEnd:              def.TimeEnd,
		BreakDurationMinutes: def.BreakDurationMinutes,
		WorkingDays:          def.WorkingDays,
	}
}
