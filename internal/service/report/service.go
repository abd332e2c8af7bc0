package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/biotrack/attendance-backend-go/internal/config"
	"github.com/biotrack/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	employeeRepo      employee.EmployeeRepository
	attendanceService attendance.AttendanceService
	cfg               config.ReportConfig
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceService attendance.AttendanceService,
	cfg config.ReportConfig,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:      employeeRepo,
		attendanceService: attendanceService,
		cfg:               cfg,
	}
}

// DailyReport implements report.ReportService.
func (s *ReportServiceImpl) DailyReport(ctx context.Context, req report.DailyReportRequest) (report.DailyReport, error) {
	if err := req.Validate(); err != nil {
		return report.DailyReport{}, err
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	var (
		employees []employee.Employee
		err       error
	)
	if len(req.EmployeeIDs) > 0 {
		employees, err = s.employeeRepo.ListByIDs(ctx, req.EmployeeIDs)
	} else {
		employees, err = s.employeeRepo.ListActive(ctx)
	}
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	var (
		mu          sync.Mutex
		unavailable []report.UnavailableDay
	)
	slots := make([]report.AttendanceRow, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			fact, err := s.attendanceService.DeriveDay(gctx, emp.ID, date)
			if err != nil {
				if errors.Is(err, attendance.ErrDataUnavailable) && s.cfg.OnError == "skip" {
					mu.Lock()
					unavailable = append(unavailable, report.UnavailableDay{
						EmployeeID: emp.ID,
						Date:       req.Date,
					})
					mu.Unlock()
					return nil
				}
				return fmt.Errorf("%w: employee %s on %s: %w",
					report.ErrReportAborted, emp.ID, req.Date, err)
			}
			slots[i] = report.AttendanceRow{
				EmployeeID:   emp.ID,
				EmployeeName: emp.Name,
				Department:   emp.Department,
				Position:     emp.Position,
				FactResponse: attendance.MapFactToResponse(fact),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.DailyReport{}, err
	}

	// Skipped employees leave empty slots behind.
	rows := make([]report.AttendanceRow, 0, len(slots))
	for _, row := range slots {
		if row.EmployeeID != "" {
			rows = append(rows, row)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].EmployeeName != rows[j].EmployeeName {
			return rows[i].EmployeeName < rows[j].EmployeeName
		}
		return rows[i].EmployeeID < rows[j].EmployeeID
	})
	sort.Slice(unavailable, func(i, j int) bool {
		return unavailable[i].EmployeeID < unavailable[j].EmployeeID
	})

	return report.DailyReport{
		Date:             req.Date,
		Rows:             rows,
		UnavailableCount: len(unavailable),
		Unavailable:      unavailable,
	}, nil
}

// DepartmentReport implements report.ReportService.
//
// Every employee-day in the range is derived with bounded parallelism
// and folded into counters. The fold is commutative, so completion
// order does not affect the result. Unscheduled days without activity
// are excluded from the counters: a weekend is not an absence.
func (s *ReportServiceImpl) DepartmentReport(ctx context.Context, req report.DepartmentReportRequest) (report.DepartmentReport, error) {
	if err := req.Validate(); err != nil {
		return report.DepartmentReport{}, err
	}
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	employees, err := s.employeeRepo.ListByDepartment(ctx, req.Department)
	if err != nil {
		return report.DepartmentReport{}, fmt.Errorf("failed to list department employees: %w", err)
	}

	var (
		mu          sync.Mutex
		agg         departmentAccumulator
		unavailable []report.UnavailableDay
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for _, emp := range employees {
		for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
			emp, day := emp, day
			g.Go(func() error {
				fact, err := s.attendanceService.DeriveDay(gctx, emp.ID, day)
				if err != nil {
					if errors.Is(err, attendance.ErrDataUnavailable) && s.cfg.OnError == "skip" {
						mu.Lock()
						unavailable = append(unavailable, report.UnavailableDay{
							EmployeeID: emp.ID,
							Date:       day.Format("2006-01-02"),
						})
						mu.Unlock()
						return nil
					}
					return fmt.Errorf("%w: employee %s on %s: %w",
						report.ErrReportAborted, emp.ID, day.Format("2006-01-02"), err)
				}

				mu.Lock()
				agg.add(fact)
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return report.DepartmentReport{}, err
	}

	sort.Slice(unavailable, func(i, j int) bool {
		if unavailable[i].EmployeeID != unavailable[j].EmployeeID {
			return unavailable[i].EmployeeID < unavailable[j].EmployeeID
		}
		return unavailable[i].Date < unavailable[j].Date
	})

	result := report.DepartmentReport{
		Department:         req.Department,
		PeriodStart:        req.StartDate,
		PeriodEnd:          req.EndDate,
		GeneratedAt:        time.Now().Format(time.RFC3339),
		TotalEmployees:     len(employees),
		PresentCount:       agg.present,
		AbsentCount:        agg.absent,
		LateCount:          agg.late,
		EarlyLeaveCount:    agg.earlyLeave,
		OnLeaveCount:       agg.onLeave,
		TotalOvertimeHours: agg.overtimeHours,
		UnavailableCount:   len(unavailable),
		Unavailable:        unavailable,
	}
	if agg.late > 0 {
		result.AverageLateMinutes = float64(agg.lateMinutes) / float64(agg.late)
	}
	if agg.earlyLeave > 0 {
		result.AverageEarlyLeaveMinutes = float64(agg.earlyLeaveMinutes) / float64(agg.earlyLeave)
	}

	return result, nil
}

// departmentAccumulator folds facts into department counters. Callers
// hold the mutex.
type departmentAccumulator struct {
	present, absent, late, earlyLeave, onLeave int

	lateMinutes       int
	earlyLeaveMinutes int
	overtimeHours     float64
}

func (a *departmentAccumulator) add(fact attendance.Fact) {
	// A non-working day with no punches and no leave is not an absence.
	if !fact.ScheduledDay && fact.Status == attendance.StatusAbsent {
		return
	}

	switch fact.Status {
	case attendance.StatusPresent:
		a.present++
	case attendance.StatusAbsent:
		a.absent++
	case attendance.StatusLate:
		a.late++
		a.lateMinutes += fact.LateMinutes
	case attendance.StatusEarlyLeave:
		a.earlyLeave++
		a.earlyLeaveMinutes += fact.EarlyLeaveMinutes
	case attendance.StatusOnLeave:
		a.onLeave++
	}

	a.overtimeHours += fact.OvertimeHours
}

// MonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to get employee: %w", err)
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	var (
		summary     report.MonthlySummary
		logs        []report.DailyLog
		unavailable []report.UnavailableDay
	)

	for day := periodStart; !day.After(periodEnd); day = day.AddDate(0, 0, 1) {
		fact, err := s.attendanceService.DeriveDay(ctx, emp.ID, day)
		if err != nil {
			if errors.Is(err, attendance.ErrDataUnavailable) && s.cfg.OnError == "skip" {
				summary.TotalUnavailable++
				unavailable = append(unavailable, report.UnavailableDay{
					EmployeeID: emp.ID,
					Date:       day.Format("2006-01-02"),
				})
				continue
			}
			return report.MonthlyReport{}, fmt.Errorf("%w: %s: %w",
				report.ErrReportAborted, day.Format("2006-01-02"), err)
		}

		resp := attendance.MapFactToResponse(fact)
		logs = append(logs, report.DailyLog{
			Date:              resp.Date,
			DayOfWeek:         day.Weekday().String(),
			CheckIn:           resp.CheckIn,
			CheckOut:          resp.CheckOut,
			Status:            resp.Status,
			LateMinutes:       fact.LateMinutes,
			EarlyLeaveMinutes: fact.EarlyLeaveMinutes,
			TotalHours:        fact.TotalHours,
			OvertimeHours:     fact.OvertimeHours,
		})

		if fact.ScheduledDay {
			summary.TotalWorkDays++
		}
		summary.TotalWorkHours += fact.TotalHours
		summary.TotalOvertimeHours += fact.OvertimeHours
		summary.TotalLateMinutes += fact.LateMinutes

		switch fact.Status {
		case attendance.StatusPresent:
			summary.TotalPresent++
		case attendance.StatusLate:
			summary.TotalLate++
		case attendance.StatusEarlyLeave:
			summary.TotalEarlyLeave++
		case attendance.StatusOnLeave:
			summary.TotalLeave++
		case attendance.StatusAbsent:
			if fact.ScheduledDay {
				summary.TotalAbsent++
			}
		}
	}

	return report.MonthlyReport{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		PeriodMonth:  req.Month,
		PeriodYear:   req.Year,
		PeriodStart:  periodStart.Format("2006-01-02"),
		PeriodEnd:    periodEnd.Format("2006-01-02"),
		GeneratedAt:  time.Now().Format(time.RFC3339),
		Summary:      summary,
		DailyLogs:    logs,
		Unavailable:  unavailable,
	}, nil
}
