package employee

import (
	"context"
)

type EmployeeRepository interface {
	// GetByID retrieves one employee by its record name.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListWithHolidayList retrieves employees that reference a holiday
	// list, for the employee-wise holiday listing.
	ListWithHolidayList(ctx context.Context) ([]Employee, error)

	// ListBirthdaysToday retrieves active employees whose birth month and
	// day match the given date.
	ListBirthdaysToday(ctx context.Context, month int, day int) ([]Employee, error)
}
