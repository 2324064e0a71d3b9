package holiday

import (
	"context"
)

type HolidayRepository interface {
	// ListByHolidayList retrieves the non weekly-off holidays of one
	// holiday list, ascending by date.
	ListByHolidayList(ctx context.Context, holidayList string) ([]Holiday, error)
}
