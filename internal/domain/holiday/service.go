package holiday

import (
	"context"
)

type HolidayService interface {
	// EmployeeWiseHolidays lists every employee with a holiday list
	// together with that list's holidays, excluding weekly offs and
	// entries whose description is literally "Sunday".
	EmployeeWiseHolidays(ctx context.Context) ([]EmployeeHolidays, error)
}
