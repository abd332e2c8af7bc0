package shift

import (
	"fmt"
	"time"
)

// Definition is a recurring daily work-time template.
// TimeStart/TimeEnd are times of day in "15:04" format; a TimeEnd at or
// before TimeStart means checkout rolls over to the next day.
type Definition struct {
	ID                   string
	Name                 string
	TimeStart            string
	TimeEnd              string
	BreakDurationMinutes int
	WorkingDays          []int // 1=Monday, ..., 7=Sunday
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// StartOn returns the shift start timestamp on the given day.
func (d Definition) StartOn(day time.Time) (time.Time, error) {
	return timeOfDayOn(day, d.TimeStart)
}

// EndOn returns the shift end timestamp on the given day, rolled to the
// next day for overnight shifts.
func (d Definition) EndOn(day time.Time) (time.Time, error) {
	start, err := timeOfDayOn(day, d.TimeStart)
	if err != nil {
		return time.Time{}, err
	}
	end, err := timeOfDayOn(day, d.TimeEnd)
	if err != nil {
		return time.Time{}, err
	}
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return end, nil
}

// WorksOn reports whether the weekday of day is one of the shift's
// working days. A definition with no working days listed applies every
// day.
func (d Definition) WorksOn(day time.Time) bool {
	if len(d.WorkingDays) == 0 {
		return true
	}
	// time.Weekday has Sunday=0; working days use ISO numbering.
	iso := int(day.Weekday())
	if iso == 0 {
		iso = 7
	}
	for _, wd := range d.WorkingDays {
		if wd == iso {
			return true
		}
	}
	return false
}

func timeOfDayOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// Assignment binds an employee to a shift definition for a date
// interval, inclusive on both ends. A nil DateEnd means open-ended.
type Assignment struct {
	ID         string
	EmployeeID string
	ShiftID    string
	DateStart  time.Time
	DateEnd    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Contains reports whether date falls inside the assignment interval.
// Comparison is by calendar day.
func (a Assignment) Contains(date time.Time) bool {
	day := truncateDay(date)
	if day.Before(truncateDay(a.DateStart)) {
		return false
	}
	if a.DateEnd != nil && day.After(truncateDay(*a.DateEnd)) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
