package joboffer

import (
	"context"
	"errors"
	"testing"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/joboffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobOfferRepo struct {
	offers     []joboffer.JobOffer
	components []joboffer.SalaryComponentRow
	structure  joboffer.SalaryStructure
	hasStruct  bool
}

func (f *fakeJobOfferRepo) ListByApplicant(ctx context.Context, applicant string) ([]joboffer.JobOffer, error) {
	return f.offers, nil
}

func (f *fakeJobOfferRepo) ListOfferComponents(ctx context.Context, offerIDs []string) ([]joboffer.SalaryComponentRow, error) {
	return f.components, nil
}

func (f *fakeJobOfferRepo) GetSalaryStructure(ctx context.Context, name string) (joboffer.SalaryStructure, error) {
	if !f.hasStruct {
		return joboffer.SalaryStructure{}, joboffer.ErrSalaryStructureNotFound
	}
	return f.structure, nil
}

func (f *fakeJobOfferRepo) ListStructureComponents(ctx context.Context, structure string) ([]joboffer.SalaryComponentRow, error) {
	return f.components, nil
}

func TestOffersForApplicant_ComponentGrouping(t *testing.T) {
	repo := &fakeJobOfferRepo{
		offers: []joboffer.JobOffer{
			{ID: "HR-OFF-0001", JobApplicant: "applicant@example.com", ApplicantName: "Alice Fernandes", Status: "Awaiting Response"},
		},
		components: []joboffer.SalaryComponentRow{
			{ParentID: "HR-OFF-0001", Idx: 1, Component: "Basic", Amount: 50000, Kind: "earning"},
			{ParentID: "HR-OFF-0001", Idx: 2, Component: "House Rent Allowance", Amount: 20000, Kind: "earning"},
			{ParentID: "HR-OFF-0001", Idx: 1, Component: "Provident Fund", Amount: 1800, Kind: "deduction"},
			{ParentID: "HR-OFF-0001", Idx: 3, Component: "Employer PF", Amount: 1800, Kind: "earning", ExcludeFromTotal: true},
		},
	}

	svc := NewJobOfferService(repo)
	offers, err := svc.OffersForApplicant(context.Background(), "applicant@example.com")
	require.NoError(t, err)
	require.Len(t, offers, 1)

	offer := offers[0]
	require.Len(t, offer.Earnings, 3)
	require.Len(t, offer.Deductions, 1)
	require.Len(t, offer.EmployerContributions, 1)

	assert.Equal(t, "Basic", offer.Earnings[0].Component)
	assert.Equal(t, 50000.0, offer.Earnings[0].Amount)
	assert.Equal(t, 600000.0, offer.Earnings[0].Yearly)

	assert.Equal(t, "Provident Fund", offer.Deductions[0].Component)
	assert.Equal(t, 21600.0, offer.Deductions[0].Yearly)

	// Flagged rows stay in their list and are also collected separately
	assert.Equal(t, "Employer PF", offer.Earnings[2].Component)
	assert.Equal(t, "Employer PF", offer.EmployerContributions[0].Component)
	assert.Equal(t, 21600.0, offer.EmployerContributions[0].Yearly)
}

func TestOffersForApplicant_NoOffers(t *testing.T) {
	svc := NewJobOfferService(&fakeJobOfferRepo{})
	offers, err := svc.OffersForApplicant(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, offers)
	assert.Empty(t, offers)
}

func TestStructureComponents(t *testing.T) {
	repo := &fakeJobOfferRepo{
		hasStruct: true,
		structure: joboffer.SalaryStructure{
			Name:             "Standard Grade 5",
			Currency:         "INR",
			PayrollFrequency: "Monthly",
			IsActive:         true,
		},
		components: []joboffer.SalaryComponentRow{
			{ParentID: "Standard Grade 5", Idx: 1, Component: "Basic", Amount: 50000, Kind: "earning", IsTaxApplicable: true},
			{ParentID: "Standard Grade 5", Idx: 1, Component: "Professional Tax", Amount: 200, Kind: "deduction"},
		},
	}

	svc := NewJobOfferService(repo)
	got, err := svc.StructureComponents(context.Background(), "Standard Grade 5")
	require.NoError(t, err)

	assert.Equal(t, "Standard Grade 5", got.SalaryStructure)
	assert.Equal(t, "INR", got.Meta.Currency)
	assert.True(t, got.Meta.IsActive)
	require.Len(t, got.Earnings, 1)
	require.Len(t, got.Deductions, 1)
	assert.True(t, got.Earnings[0].IsTaxApplicable)
}

func TestStructureComponents_NotFound(t *testing.T) {
	svc := NewJobOfferService(&fakeJobOfferRepo{})
	_, err := svc.StructureComponents(context.Background(), "Missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, joboffer.ErrSalaryStructureNotFound))
}
