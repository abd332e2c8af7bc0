package report_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biotrack/attendance-backend-go/internal/config"
	"github.com/biotrack/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack/attendance-backend-go/internal/domain/report"
	reportservice "github.com/biotrack/attendance-backend-go/internal/service/report"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByFingerprintID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListByDepartment(_ context.Context, department string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.Department == department {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByIDs(_ context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		for _, id := range ids {
			if e.ID == id {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

// fakeAttendanceService returns canned facts keyed by employee-day and
// a store failure for keys listed in failing.
type fakeAttendanceService struct {
	facts   map[string]attendance.Fact
	failing map[string]bool
}

func dayKey(employeeID string, date time.Time) string {
	return fmt.Sprintf("%s/%s", employeeID, date.Format("2006-01-02"))
}

func (f *fakeAttendanceService) DeriveDay(_ context.Context, employeeID string, date time.Time) (attendance.Fact, error) {
	key := dayKey(employeeID, date)
	if f.failing[key] {
		return attendance.Fact{}, fmt.Errorf("punch store down: %w", attendance.ErrDataUnavailable)
	}
	if fact, ok := f.facts[key]; ok {
		return fact, nil
	}
	return attendance.Fact{
		EmployeeID:   employeeID,
		Date:         date,
		Status:       attendance.StatusAbsent,
		ScheduledDay: true,
	}, nil
}

func (f *fakeAttendanceService) History(context.Context, string, time.Time, time.Time) ([]attendance.Fact, error) {
	return nil, nil
}

var engineering = []employee.Employee{
	{ID: "emp-1", Name: "Ana Putri", Department: "Engineering", Position: "Backend"},
	{ID: "emp-2", Name: "Budi Santoso", Department: "Engineering", Position: "Frontend"},
}

func skipConfig() config.ReportConfig {
	return config.ReportConfig{Concurrency: 4, OnError: "skip"}
}

func fact(employeeID string, date time.Time, status attendance.Status) attendance.Fact {
	return attendance.Fact{
		EmployeeID:   employeeID,
		Date:         date,
		Status:       status,
		ScheduledDay: true,
	}
}

func TestDailyReport_SortedByNameThenID(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	employees := []employee.Employee{
		{ID: "emp-3", Name: "Budi Santoso", Department: "Engineering"},
		{ID: "emp-1", Name: "Budi Santoso", Department: "Engineering"},
		{ID: "emp-2", Name: "Ana Putri", Department: "Engineering"},
	}
	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{employees: employees},
		&fakeAttendanceService{},
		skipConfig(),
	)

	got, err := svc.DailyReport(context.Background(), report.DailyReportRequest{Date: "2024-01-15"})
	require.NoError(t, err)
	require.Len(t, got.Rows, 3)

	assert.Equal(t, "emp-2", got.Rows[0].EmployeeID)
	assert.Equal(t, "emp-1", got.Rows[1].EmployeeID)
	assert.Equal(t, "emp-3", got.Rows[2].EmployeeID)
	assert.Equal(t, date.Format("2006-01-02"), got.Rows[0].Date)
}

func TestDailyReport_FiltersByEmployeeIDs(t *testing.T) {
	t.Parallel()

	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{employees: engineering},
		&fakeAttendanceService{},
		skipConfig(),
	)

	got, err := svc.DailyReport(context.Background(), report.DailyReportRequest{
		Date:        "2024-01-15",
		EmployeeIDs: []string{"emp-2"},
	})
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "emp-2", got.Rows[0].EmployeeID)
}

func TestDailyReport_SkipPolicyRecordsUnavailable(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{employees: engineering},
		&fakeAttendanceService{failing: map[string]bool{
			dayKey("emp-2", start): true,
		}},
		skipConfig(),
	)

	got, err := svc.DailyReport(context.Background(), report.DailyReportRequest{Date: "2024-01-15"})
	require.NoError(t, err)

	// The reachable employee still gets a row; the failed one is
	// recorded, not silently dropped.
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "emp-1", got.Rows[0].EmployeeID)
	assert.Equal(t, 1, got.UnavailableCount)
	require.Len(t, got.Unavailable, 1)
	assert.Equal(t, "emp-2", got.Unavailable[0].EmployeeID)
	assert.Equal(t, "2024-01-15", got.Unavailable[0].Date)
}

func TestDailyReport_AbortPolicyFailsWhole(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{employees: engineering},
		&fakeAttendanceService{failing: map[string]bool{
			dayKey("emp-2", start): true,
		}},
		config.ReportConfig{Concurrency: 4, OnError: "abort"},
	)

	_, err := svc.DailyReport(context.Background(), report.DailyReportRequest{Date: "2024-01-15"})
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrReportAborted)
	assert.ErrorIs(t, err, attendance.ErrDataUnavailable)
}

func TestDailyReport_InvalidDate(t *testing.T) {
	t.Parallel()

	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{employees: engineering},
		&fakeAttendanceService{},
		skipConfig(),
	)

	_, err := svc.DailyReport(context.Background(), report.DailyReportRequest{Date: "15-01-2024"})
	assert.Error(t, err)
}

func TestDepartmentReport_Aggregates(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	facts := map[string]attendance.Fact{}

	// emp-1: three present days, two late days (20 and 40 minutes).
	for i := 0; i < 3; i++ {
		d := start.AddDate(0, 0, i)
		facts[dayKey("emp-1", d)] = fact("emp-1", d, attendance.StatusPresent)
	}
	lateA := fact("emp-1", start.AddDate(0, 0, 3), attendance.StatusLate)
	lateA.LateMinutes = 20
	facts[dayKey("emp-1", start.AddDate(0, 0, 3))] = lateA
	lateB := fact("emp-1", start.AddDate(0, 0, 4), attendance.StatusLate)
	lateB.LateMinutes = 40
	lateB.OvertimeHours = 1.5
	facts[dayKey("emp-1", start.AddDate(0, 0, 4))] = lateB

	// emp-2: present, on leave, early leave, absent, absent.
	facts[dayKey("emp-2", start)] = fact("emp-2", start, attendance.StatusPresent)
	facts[dayKey("emp-2", start.AddDate(0, 0, 1))] = fact("emp-2", start.AddDate(0, 0, 1), attendance.StatusOnLeave)
	early := fact("emp-2", start.AddDate(0, 0, 2), attendance.StatusEarlyLeave)
	early.EarlyLeaveMinutes = 30
	facts[dayKey("emp-2", start.AddDate(0, 0, 2))] = early

	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{employees: engineering},
		&fakeAttendanceService{facts: facts},
		skipConfig(),
	)

	got, err := svc.DepartmentReport(context.Background(), report.DepartmentReportRequest{
		Department: "Engineering",
		StartDate:  "2024-01-15",
		EndDate:    "2024-01-19",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, got.TotalEmployees)
	assert.Equal(t, 4, got.PresentCount)
	assert.Equal(t, 2, got.LateCount)
	assert.Equal(t, 1, got.EarlyLeaveCount)
	assert.Equal(t, 1, got.OnLeaveCount)
	assert.Equal(t, 2, got.AbsentCount)
	// Average over late days only, not over all days.
	assert.InDelta(t, 30.0, got.AverageLateMinutes, 1e-9)
	assert.InDelta(t, 30.0, got.AverageEarlyLeaveMinutes, 1e-9)
	assert.InDelta(t, 1.5, got.TotalOvertimeHours, 1e-9)
	assert.Zero(t, got.UnavailableCount)
}

func TestDepartmentReport_SkipsUnscheduledAbsentDays(t *testing.T) {
	t.Parallel()

	saturday := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	weekend := fact("emp-1", saturday, attendance.StatusAbsent)
	weekend.ScheduledDay = false

	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{employees: engineering[:1]},
		&fakeAttendanceService{facts: map[string]attendance.Fact{
			dayKey("emp-1", saturday): weekend,
		}},
		skipConfig(),
	)

	got, err := svc.DepartmentReport(context.Background(), report.DepartmentReportRequest{
		Department: "Engineering",
		StartDate:  "2024-01-20",
		EndDate:    "2024-01-20",
	})
	require.NoError(t, err)

	assert.Zero(t, got.AbsentCount)
	assert.Zero(t, got.PresentCount)
}

func TestDepartmentReport_SkipPolicyRecordsUnavailable(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{employees: engineering},
		&fakeAttendanceService{failing: map[string]bool{
			dayKey("emp-2", start): true,
		}},
		skipConfig(),
	)

	got, err := svc.DepartmentReport(context.Background(), report.DepartmentReportRequest{
		Department: "Engineering",
		StartDate:  "2024-01-15",
		EndDate:    "2024-01-16",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, got.UnavailableCount)
	require.Len(t, got.Unavailable, 1)
	assert.Equal(t, "emp-2", got.Unavailable[0].EmployeeID)
	assert.Equal(t, "2024-01-15", got.Unavailable[0].Date)
	// The other three employee-days still aggregate.
	assert.Equal(t, 3, got.AbsentCount)
}

func TestDepartmentReport_AbortPolicyFailsWhole(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{employees: engineering},
		&fakeAttendanceService{failing: map[string]bool{
			dayKey("emp-2", start): true,
		}},
		config.ReportConfig{Concurrency: 4, OnError: "abort"},
	)

	_, err := svc.DepartmentReport(context.Background(), report.DepartmentReportRequest{
		Department: "Engineering",
		StartDate:  "2024-01-15",
		EndDate:    "2024-01-16",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrReportAborted)
	assert.ErrorIs(t, err, attendance.ErrDataUnavailable)
}

func TestDepartmentReport_Deterministic(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	facts := map[string]attendance.Fact{}
	for i := 0; i < 10; i++ {
		d := start.AddDate(0, 0, i)
		f1 := fact("emp-1", d, attendance.StatusLate)
		f1.LateMinutes = 5 * (i + 1)
		facts[dayKey("emp-1", d)] = f1
		facts[dayKey("emp-2", d)] = fact("emp-2", d, attendance.StatusPresent)
	}

	build := func(concurrency int) report.DepartmentReport {
		svc := reportservice.NewReportService(
			&fakeEmployeeRepo{employees: engineering},
			&fakeAttendanceService{facts: facts},
			config.ReportConfig{Concurrency: concurrency, OnError: "skip"},
		)
		got, err := svc.DepartmentReport(context.Background(), report.DepartmentReportRequest{
			Department: "Engineering",
			StartDate:  "2024-01-15",
			EndDate:    "2024-01-24",
		})
		require.NoError(t, err)
		got.GeneratedAt = ""
		return got
	}

	assert.Equal(t, build(1), build(8))
}

func TestMonthlyReport_SummaryAndLogs(t *testing.T) {
	t.Parallel()

	facts := map[string]attendance.Fact{}
	for day := 1; day <= 29; day++ {
		d := time.Date(2024, 2, day, 0, 0, 0, 0, time.UTC)
		wd := d.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			weekend := fact("emp-1", d, attendance.StatusAbsent)
			weekend.ScheduledDay = false
			facts[dayKey("emp-1", d)] = weekend
			continue
		}
		f := fact("emp-1", d, attendance.StatusPresent)
		f.TotalHours = 8
		facts[dayKey("emp-1", d)] = f
	}

	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{employees: engineering},
		&fakeAttendanceService{facts: facts},
		skipConfig(),
	)

	got, err := svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{
		EmployeeID: "emp-1",
		Month:      2,
		Year:       2024,
	})
	require.NoError(t, err)

	// February 2024 has 29 days, 21 of them weekdays.
	assert.Len(t, got.DailyLogs, 29)
	assert.Equal(t, 21, got.Summary.TotalWorkDays)
	assert.Equal(t, 21, got.Summary.TotalPresent)
	assert.Zero(t, got.Summary.TotalAbsent)
	assert.InDelta(t, 168.0, got.Summary.TotalWorkHours, 1e-9)
	assert.Equal(t, "2024-02-01", got.PeriodStart)
	assert.Equal(t, "2024-02-29", got.PeriodEnd)
	assert.Equal(t, "Thursday", got.DailyLogs[0].DayOfWeek)
}

func TestMonthlyReport_SkipPolicyRecordsUnavailable(t *testing.T) {
	t.Parallel()

	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{employees: engineering},
		&fakeAttendanceService{failing: map[string]bool{
			dayKey("emp-1", time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)): true,
		}},
		skipConfig(),
	)

	got, err := svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{
		EmployeeID: "emp-1",
		Month:      2,
		Year:       2024,
	})
	require.NoError(t, err)

	assert.Len(t, got.DailyLogs, 28)
	assert.Equal(t, 1, got.Summary.TotalUnavailable)
	require.Len(t, got.Unavailable, 1)
	assert.Equal(t, "emp-1", got.Unavailable[0].EmployeeID)
	assert.Equal(t, "2024-02-14", got.Unavailable[0].Date)
}

func TestMonthlyReport_UnknownEmployee(t *testing.T) {
	t.Parallel()

	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{},
		&fakeAttendanceService{},
		skipConfig(),
	)

	_, err := svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{
		EmployeeID: "emp-404",
		Month:      1,
		Year:       2024,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMonthlyReport_ValidatesPeriod(t *testing.T) {
	t.Parallel()

	svc := reportservice.NewReportService(
		&fakeEmployeeRepo{employees: engineering},
		&fakeAttendanceService{},
		skipConfig(),
	)

	_, err := svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{
		EmployeeID: "emp-1",
		Month:      13,
		Year:       2024,
	})
	assert.Error(t, err)

	_, err = svc.MonthlyReport(context.Background(), report.MonthlyReportRequest{
		EmployeeID: "emp-1",
		Month:      1,
		Year:       2012,
	})
	assert.Error(t, err)
}
