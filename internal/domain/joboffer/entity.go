package joboffer

import (
	"time"
)

type JobOffer struct {
	ID               string
	JobApplicant     string
	ApplicantName    string
	Designation      *string
	Gender           *string
	OfferDate        *time.Time
	JoiningDate      *time.Time
	ReportingManager *string
	Grade            *string
	Base             *float64
	Level            *string
	OfferedCTC       *float64
	Status           string
	Company          *string
	IsExecutive      bool
}

// SalaryComponentRow is one earnings or deductions line of an offer or a
// salary structure.
type SalaryComponentRow struct {
	ParentID         string
	Idx              int
	Component        string
	Abbr             *string
	Amount           float64
	Kind             string // "earning" or "deduction"
	ExcludeFromTotal bool
	Formula          *string
	Condition        *string
	IsTaxApplicable  bool
}

type SalaryStructure struct {
	Name             string
	Currency         string
	PayrollFrequency string
	IsActive         bool
}
