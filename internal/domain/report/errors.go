package report

import "errors"

var (
	ErrReportAborted = errors.New("report generation aborted")
)
