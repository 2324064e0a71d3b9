package report

import "errors"

// Report domain errors
var (
	// ErrInvalidMonthFormat means no month could be extracted from the
	// month token.
	ErrInvalidMonthFormat = errors.New("invalid month format")

	// ErrDataSourceUnavailable wraps record store failures. The report has
	// no partial-result fallback; a failed read is fatal for the call.
	ErrDataSourceUnavailable = errors.New("data source unavailable")
)
