package employee

import (
	"time"
)

type Employee struct {
	ID          string
	Name        string
	Status      string
	Company     *string
	Gender      *string
	ImageURL    *string
	DateOfBirth *time.Time
	HolidayList *string
}
