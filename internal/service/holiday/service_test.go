package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/employee"
	"github.com/flamingo-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHolidayRepo struct {
	byList map[string][]holiday.Holiday
	calls  int
}

func (f *fakeHolidayRepo) ListByHolidayList(ctx context.Context, holidayList string) ([]holiday.Holiday, error) {
	f.calls++
	return f.byList[holidayList], nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListWithHolidayList(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListBirthdaysToday(ctx context.Context, month int, day int) ([]employee.Employee, error) {
	return nil, nil
}

func TestEmployeeWiseHolidays(t *testing.T) {
	listName := "India 2024"
	holidayRepo := &fakeHolidayRepo{
		byList: map[string][]holiday.Holiday{
			listName: {
				{HolidayList: listName, Date: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), Description: "Holi"},
				{HolidayList: listName, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Description: "Sunday"},
				{HolidayList: listName, Date: time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC), Description: "Independence Day"},
			},
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		employees: []employee.Employee{
			{ID: "EMP-00001", Name: "Alice Fernandes", HolidayList: &listName},
			{ID: "EMP-00002", Name: "Bobby", HolidayList: &listName},
		},
	}

	svc := NewHolidayService(holidayRepo, employeeRepo)
	got, err := svc.EmployeeWiseHolidays(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	// "Sunday" entries are excluded from the listing
	require.Len(t, got[0].Holidays, 2)
	assert.Equal(t, "Holi", got[0].Holidays[0].Description)
	assert.Equal(t, "2024-03-08", got[0].Holidays[0].Date)
	assert.Equal(t, "Independence Day", got[0].Holidays[1].Description)

	assert.Equal(t, "EMP-00001", got[0].Employee)
	assert.Equal(t, "EMP-00002", got[1].Employee)
	assert.Equal(t, listName, got[1].HolidayList)

	// The shared list is fetched once, not per employee
	assert.Equal(t, 1, holidayRepo.calls)
}

func TestEmployeeWiseHolidays_SkipsEmployeesWithoutList(t *testing.T) {
	empty := ""
	employeeRepo := &fakeEmployeeRepo{
		employees: []employee.Employee{
			{ID: "EMP-00003", Name: "Carol", HolidayList: &empty},
			{ID: "EMP-00004", Name: "Dinesh"},
		},
	}

	svc := NewHolidayService(&fakeHolidayRepo{}, employeeRepo)
	got, err := svc.EmployeeWiseHolidays(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
