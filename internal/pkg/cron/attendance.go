package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/biotrack/attendance-backend-go/internal/domain/attendance"
	"github.com/biotrack/attendance-backend-go/internal/domain/employee"
)

// AttendanceJobs materializes derived attendance facts so history and
// exports read precomputed rows instead of rederiving the punch log.
type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	employeeRepo      employee.EmployeeRepository
	factRepo          attendance.FactRepository
}

func NewAttendanceJobs(
	attendanceService attendance.AttendanceService,
	employeeRepo employee.EmployeeRepository,
	factRepo attendance.FactRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		employeeRepo:      employeeRepo,
		factRepo:          factRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("derive_daily_facts", 1*time.Hour, j.DeriveDailyFacts)
}

// DeriveDailyFacts derives and stores yesterday's fact for every active
// employee. Upsert keeps reruns idempotent, so running hourly and
// gating on the midnight window is safe.
func (j *AttendanceJobs) DeriveDailyFacts(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting daily fact derivation job")

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	derived, failed := 0, 0
	for _, emp := range employees {
		fact, err := j.attendanceService.DeriveDay(ctx, emp.ID, yesterday)
		if err != nil {
			// Leave the gap visible; the next run or an on-demand
			// derivation fills it once the source data is back.
			slog.Error("Cron: Failed to derive attendance fact",
				"employee_id", emp.ID,
				"date", yesterday.Format("2006-01-02"),
				"error", err)
			failed++
			continue
		}

		if err := j.factRepo.Upsert(ctx, fact); err != nil {
			slog.Error("Cron: Failed to store attendance fact",
				"employee_id", emp.ID,
				"date", yesterday.Format("2006-01-02"),
				"error", err)
			failed++
			continue
		}
		derived++
	}

	slog.Info("Cron: Daily fact derivation finished", "derived", derived, "failed", failed)
	return nil
}
