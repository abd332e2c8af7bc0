package report

import "context"

// ReportService aggregates derived attendance facts into reports.
type ReportService interface {
	// DailyReport derives one row per employee for the date. With no
	// employee filter it covers all active employees. Rows are sorted
	// by employee name, then id; employee-days that could not be derived
	// are recorded or abort the report per the configured error policy.
	DailyReport(ctx context.Context, req DailyReportRequest) (DailyReport, error)

	// DepartmentReport folds every employee-day of the department over
	// the inclusive date range into aggregate statistics.
	DepartmentReport(ctx context.Context, req DepartmentReportRequest) (DepartmentReport, error)

	// MonthlyReport builds one employee's daily log and summary for a
	// calendar month.
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)
}
