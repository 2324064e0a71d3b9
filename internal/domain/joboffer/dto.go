package joboffer

// ComponentAmount carries one salary component with its monthly and yearly
// amounts.
type ComponentAmount struct {
	Component string  `json:"salary_component"`
	Amount    float64 `json:"amount"`
	Yearly    float64 `json:"yearly"`
}

type JobOfferResponse struct {
	ID                    string            `json:"name"`
	JobApplicant          string            `json:"job_applicant"`
	ApplicantName         string            `json:"applicant_name"`
	Designation           *string           `json:"designation"`
	Gender                *string           `json:"gender"`
	OfferDate             *string           `json:"offer_date"`
	JoiningDate           *string           `json:"joining_date"`
	ReportingManager      *string           `json:"reporting_manager"`
	Grade                 *string           `json:"grade"`
	Base                  *float64          `json:"base"`
	Level                 *string           `json:"level"`
	OfferedCTC            *float64          `json:"offered_ctc"`
	Status                string            `json:"status"`
	Company               *string           `json:"company"`
	IsExecutive           bool              `json:"is_executive"`
	Earnings              []ComponentAmount `json:"earnings"`
	Deductions            []ComponentAmount `json:"deductions"`
	EmployerContributions []ComponentAmount `json:"employer_contributions"`
}

type StructureComponentRow struct {
	Idx              int     `json:"idx"`
	Component        string  `json:"salary_component"`
	Abbr             *string `json:"abbr"`
	Amount           float64 `json:"amount"`
	Formula          *string `json:"formula"`
	Condition        *string `json:"condition"`
	IsTaxApplicable  bool    `json:"is_tax_applicable"`
	ExcludeFromTotal bool    `json:"do_not_include_in_total"`
}

type SalaryStructureResponse struct {
	SalaryStructure string                  `json:"salary_structure"`
	Meta            SalaryStructureMeta     `json:"meta"`
	Earnings        []StructureComponentRow `json:"earnings"`
	Deductions      []StructureComponentRow `json:"deductions"`
}

type SalaryStructureMeta struct {
	Currency         string `json:"currency"`
	PayrollFrequency string `json:"payroll_frequency"`
	IsActive         bool   `json:"is_active"`
}
