package employee

import (
	"context"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/employee"
)

const dateLayout = "2006-01-02"

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	resp := employee.EmployeeResponse{
		ID:       emp.ID,
		Name:     emp.Name,
		ImageURL: emp.ImageURL,
		Company:  emp.Company,
		Gender:   emp.Gender,
	}
	if emp.DateOfBirth != nil {
		dob := emp.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &dob
	}

	return resp, nil
}

// TodayBirthdays implements employee.EmployeeService.
func (s *employeeServiceImpl) TodayBirthdays(ctx context.Context) (employee.TodayBirthdaysResponse, error) {
	today := s.now()

	employees, err := s.employeeRepo.ListBirthdaysToday(ctx, int(today.Month()), today.Day())
	if err != nil {
		return employee.TodayBirthdaysResponse{}, err
	}

	resp := employee.TodayBirthdaysResponse{
		Count:     len(employees),
		Employees: make([]employee.BirthdayEmployee, 0, len(employees)),
	}
	for _, emp := range employees {
		entry := employee.BirthdayEmployee{
			ID:   emp.ID,
			Name: emp.Name,
		}
		if emp.DateOfBirth != nil {
			entry.DateOfBirth = emp.DateOfBirth.Format(dateLayout)
		}
		resp.Employees = append(resp.Employees, entry)
	}

	return resp, nil
}
