package employee

type EmployeeResponse struct {
	ID          string  `json:"name"`
	Name        string  `json:"employee_name"`
	ImageURL    *string `json:"image,omitempty"`
	Company     *string `json:"company,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
}

type BirthdayEmployee struct {
	ID          string `json:"name"`
	Name        string `json:"employee_name"`
	DateOfBirth string `json:"date_of_birth"`
}

type TodayBirthdaysResponse struct {
	Count     int                `json:"count"`
	Employees []BirthdayEmployee `json:"employees"`
}
