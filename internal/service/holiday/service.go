package holiday

import (
	"context"
	"strings"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/employee"
	"github.com/flamingo-hr/attendance-backend-go/internal/domain/holiday"
)

const dateLayout = "2006-01-02"

type holidayServiceImpl struct {
	holidayRepo  holiday.HolidayRepository
	employeeRepo employee.EmployeeRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository, employeeRepo employee.EmployeeRepository) holiday.HolidayService {
	return &holidayServiceImpl{
		holidayRepo:  holidayRepo,
		employeeRepo: employeeRepo,
	}
}

// EmployeeWiseHolidays implements holiday.HolidayService.
func (s *holidayServiceImpl) EmployeeWiseHolidays(ctx context.Context) ([]holiday.EmployeeHolidays, error) {
	employees, err := s.employeeRepo.ListWithHolidayList(ctx)
	if err != nil {
		return nil, err
	}

	// Holiday lists are shared across many employees, fetch each list once.
	listCache := make(map[string][]holiday.HolidayEntry)

	result := make([]holiday.EmployeeHolidays, 0, len(employees))
	for _, emp := range employees {
		if emp.HolidayList == nil || *emp.HolidayList == "" {
			continue
		}
		listName := *emp.HolidayList

		entries, ok := listCache[listName]
		if !ok {
			holidays, err := s.holidayRepo.ListByHolidayList(ctx, listName)
			if err != nil {
				return nil, err
			}
			entries = make([]holiday.HolidayEntry, 0, len(holidays))
			for _, h := range holidays {
				// Weekly offs named "Sunday" slip through as plain
				// holidays on some lists, drop them too.
				if strings.EqualFold(strings.TrimSpace(h.Description), "Sunday") {
					continue
				}
				entries = append(entries, holiday.HolidayEntry{
					Date:        h.Date.Format(dateLayout),
					Description: h.Description,
				})
			}
			listCache[listName] = entries
		}

		result = append(result, holiday.EmployeeHolidays{
			Employee:    emp.ID,
			HolidayList: listName,
			Holidays:    entries,
		})
	}

	return result, nil
}
