package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/employee"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `
		SELECT id, employee_name, status, company, gender, image_url,
		       date_of_birth, holiday_list_id
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Status, &emp.Company, &emp.Gender,
		&emp.ImageURL, &emp.DateOfBirth, &emp.HolidayList,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// ListWithHolidayList implements employee.EmployeeRepository.
func (r *employeeRepository) ListWithHolidayList(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT id, employee_name, status, company, gender, image_url,
		       date_of_birth, holiday_list_id
		FROM employees
		WHERE holiday_list_id IS NOT NULL AND holiday_list_id <> ''
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with holiday list: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Status, &emp.Company, &emp.Gender,
			&emp.ImageURL, &emp.DateOfBirth, &emp.HolidayList,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// ListBirthdaysToday implements employee.EmployeeRepository.
func (r *employeeRepository) ListBirthdaysToday(ctx context.Context, month int, day int) ([]employee.Employee, error) {
	query := `
		SELECT id, employee_name, status, company, gender, image_url,
		       date_of_birth, holiday_list_id
		FROM employees
		WHERE status = 'Active'
		  AND date_of_birth IS NOT NULL
		  AND EXTRACT(MONTH FROM date_of_birth) = $1
		  AND EXTRACT(DAY FROM date_of_birth) = $2
		ORDER BY employee_name
	`

	rows, err := r.db.Query(ctx, query, month, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list birthdays: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Status, &emp.Company, &emp.Gender,
			&emp.ImageURL, &emp.DateOfBirth, &emp.HolidayList,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}
