package joboffer

import "errors"

var (
	ErrSalaryStructureNotFound = errors.New("salary structure not found")
)
