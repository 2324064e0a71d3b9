package employee

import (
	"context"
)

type EmployeeService interface {
	// GetEmployee returns one employee's profile fields.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// TodayBirthdays returns active employees whose birthday is today,
	// plus the total count.
	TodayBirthdays(ctx context.Context) (TodayBirthdaysResponse, error)
}
