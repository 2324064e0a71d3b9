package holiday

type HolidayEntry struct {
	Date        string `json:"holiday_date"`
	Description string `json:"description"`
}

type EmployeeHolidays struct {
	Employee    string         `json:"employee"`
	HolidayList string         `json:"holiday_list"`
	Holidays    []HolidayEntry `json:"holidays"`
}
