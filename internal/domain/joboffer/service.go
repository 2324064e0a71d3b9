package joboffer

import (
	"context"
)

type JobOfferService interface {
	// OffersForApplicant returns an applicant's offers with the earnings,
	// deductions and employer-contribution breakdown.
	OffersForApplicant(ctx context.Context, applicant string) ([]JobOfferResponse, error)

	// StructureComponents returns a salary structure's earnings and
	// deductions rows with metadata.
	StructureComponents(ctx context.Context, structure string) (SalaryStructureResponse, error)
}
