package joboffer

import (
	"context"
)

type JobOfferRepository interface {
	// ListByApplicant retrieves offers for one applicant, newest first
	ListByApplicant(ctx context.Context, applicant string) ([]JobOffer, error)

	// ListOfferComponents retrieves the salary component rows of the
	// given offers, ordered by row index
	ListOfferComponents(ctx context.Context, offerIDs []string) ([]SalaryComponentRow, error)

	// GetSalaryStructure retrieves one salary structure
	GetSalaryStructure(ctx context.Context, name string) (SalaryStructure, error)

	// ListStructureComponents retrieves the component rows of one salary
	// structure, ordered by row index
	ListStructureComponents(ctx context.Context, structure string) ([]SalaryComponentRow, error)
}
