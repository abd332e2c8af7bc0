package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/biotrack/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack/attendance-backend-go/internal/domain/leave"
	"github.com/biotrack/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack/attendance-backend-go/internal/domain/shift"
)

type AttendanceServiceImpl struct {
	punchRepo   punch.PunchRepository
	calendar    shift.Calendar
	leaveOracle leave.Oracle
	factRepo    attendance.FactRepository
}

func NewAttendanceService(
	punchRepo punch.PunchRepository,
	calendar shift.Calendar,
	leaveOracle leave.Oracle,
	factRepo attendance.FactRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		punchRepo:   punchRepo,
		calendar:    calendar,
		leaveOracle: leaveOracle,
		factRepo:    factRepo,
	}
}

// DeriveDay implements attendance.AttendanceService.
//
// The day collapses to first-IN / last-OUT: multiple in/out cycles
// within one day are not tracked as sessions. Status precedence is
// ON_LEAVE > LATE > EARLY_LEAVE > PRESENT > ABSENT, first match wins,
// so a day that is both late and leaves early reports LATE.
func (s *AttendanceServiceImpl) DeriveDay(ctx context.Context, employeeID string, date time.Time) (attendance.Fact, error) {
	day := truncateDay(date)

	punches, err := s.punchRepo.PunchesFor(ctx, employeeID, day, day.Add(24*time.Hour))
	if err != nil {
		return attendance.Fact{}, unavailable("failed to fetch punches", err)
	}

	onLeave, err := s.leaveOracle.IsOnLeave(ctx, employeeID, day)
	if err != nil {
		return attendance.Fact{}, unavailable("failed to check leave", err)
	}

	checkIn, checkOut := selectPunchPair(punches)

	fact := attendance.Fact{
		EmployeeID:   employeeID,
		Date:         day,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		ScheduledDay: true,
	}

	def, err := s.calendar.ShiftFor(ctx, employeeID, day)
	hasShift := err == nil
	if err != nil && !errors.Is(err, shift.ErrNoAssignment) {
		return attendance.Fact{}, unavailable("failed to resolve shift", err)
	}

	if hasShift {
		if err := s.applyShift(&fact, def, day); err != nil {
			return attendance.Fact{}, err
		}
	} else if checkIn != nil && checkOut != nil {
		// Without a shift only the raw worked span is known.
		span := checkOut.Sub(*checkIn)
		if span < 0 {
			fact.InvalidInterval = true
		} else {
			fact.TotalHours = span.Minutes() / 60.0
		}
	}

	fact.Status = determineStatus(onLeave, fact)
	return fact, nil
}

// applyShift fills the shift-relative fields of the fact.
func (s *AttendanceServiceImpl) applyShift(fact *attendance.Fact, def shift.Definition, day time.Time) error {
	shiftStart, err := def.StartOn(day)
	if err != nil {
		return fmt.Errorf("bad shift definition %s: %w", def.ID, err)
	}
	shiftEnd, err := def.EndOn(day)
	if err != nil {
		return fmt.Errorf("bad shift definition %s: %w", def.ID, err)
	}

	fact.ScheduledDay = def.WorksOn(day)
	breakMinutes := float64(def.BreakDurationMinutes)

	if fact.CheckIn != nil {
		if late := fact.CheckIn.Sub(shiftStart).Minutes(); late > 0 {
			fact.LateMinutes = int(late)
		}
	}

	if fact.CheckOut != nil {
		if early := shiftEnd.Sub(*fact.CheckOut).Minutes(); early > 0 {
			fact.EarlyLeaveMinutes = int(early)
		}
	}

	if fact.CheckIn != nil && fact.CheckOut != nil {
		span := fact.CheckOut.Sub(*fact.CheckIn)
		if span < 0 {
			// Last OUT before first IN: clamp instead of going negative.
			fact.InvalidInterval = true
			return nil
		}

		// Break time is unpaid: it is excluded from the worked total and
		// from the expected shift duration alike.
		totalMinutes := span.Minutes() - breakMinutes
		if totalMinutes < 0 {
			totalMinutes = 0
		}
		shiftMinutes := shiftEnd.Sub(shiftStart).Minutes() - breakMinutes
		if shiftMinutes < 0 {
			shiftMinutes = 0
		}

		fact.TotalHours = totalMinutes / 60.0
		if overtime := totalMinutes - shiftMinutes; overtime > 0 {
			fact.OvertimeHours = overtime / 60.0
		}
	}

	return nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Fact, error) {
	facts, err := s.factRepo.ListByEmployee(ctx, employeeID, truncateDay(from), truncateDay(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance facts: %w", err)
	}
	return facts, nil
}

// selectPunchPair picks the earliest IN and the latest OUT by explicit
// extremum scan; the input sequence is never reordered.
func selectPunchPair(punches []punch.Punch) (checkIn, checkOut *time.Time) {
	for i := range punches {
		p := punches[i]
		switch p.Direction {
		case punch.DirectionIn:
			if checkIn == nil || p.Timestamp.Before(*checkIn) {
				ts := p.Timestamp
				checkIn = &ts
			}
		case punch.DirectionOut:
			if checkOut == nil || p.Timestamp.After(*checkOut) {
				ts := p.Timestamp
				checkOut = &ts
			}
		}
	}
	return checkIn, checkOut
}

func determineStatus(onLeave bool, fact attendance.Fact) attendance.Status {
	switch {
	case onLeave:
		return attendance.StatusOnLeave
	case fact.LateMinutes > 0:
		return attendance.StatusLate
	case fact.EarlyLeaveMinutes > 0:
		return attendance.StatusEarlyLeave
	case fact.CheckIn != nil || fact.CheckOut != nil:
		return attendance.StatusPresent
	default:
		return attendance.StatusAbsent
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func unavailable(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, attendance.ErrDataUnavailable, err)
}
