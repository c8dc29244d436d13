package report

import "errors"

var (
	ErrReportNotFound         = errors.New("incident report not found")
	ErrAbsenceAlreadyReported = errors.New("absence already reported for this intern and day")
)
