package joboffer

import (
	"context"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/joboffer"
)

const dateLayout = "2006-01-02"

// Offer amounts are stored monthly, yearly figures are derived.
const monthsPerYear = 12

type jobOfferServiceImpl struct {
	jobOfferRepo joboffer.JobOfferRepository
}

func NewJobOfferService(jobOfferRepo joboffer.JobOfferRepository) joboffer.JobOfferService {
	return &jobOfferServiceImpl{jobOfferRepo: jobOfferRepo}
}

// OffersForApplicant implements joboffer.JobOfferService.
func (s *jobOfferServiceImpl) OffersForApplicant(ctx context.Context, applicant string) ([]joboffer.JobOfferResponse, error) {
	offers, err := s.jobOfferRepo.ListByApplicant(ctx, applicant)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return []joboffer.JobOfferResponse{}, nil
	}

	offerIDs := make([]string, 0, len(offers))
	for _, o := range offers {
		offerIDs = append(offerIDs, o.ID)
	}

	components, err := s.jobOfferRepo.ListOfferComponents(ctx, offerIDs)
	if err != nil {
		return nil, err
	}

	byOffer := make(map[string][]joboffer.SalaryComponentRow)
	for _, c := range components {
		byOffer[c.ParentID] = append(byOffer[c.ParentID], c)
	}

	responses := make([]joboffer.JobOfferResponse, 0, len(offers))
	for _, o := range offers {
		resp := joboffer.JobOfferResponse{
			ID:                    o.ID,
			JobApplicant:          o.JobApplicant,
			ApplicantName:         o.ApplicantName,
			Designation:           o.Designation,
			Gender:                o.Gender,
			OfferDate:             formatDate(o.OfferDate),
			JoiningDate:           formatDate(o.JoiningDate),
			ReportingManager:      o.ReportingManager,
			Grade:                 o.Grade,
			Base:                  o.Base,
			Level:                 o.Level,
			OfferedCTC:            o.OfferedCTC,
			Status:                o.Status,
			Company:               o.Company,
			IsExecutive:           o.IsExecutive,
			Earnings:              []joboffer.ComponentAmount{},
			Deductions:            []joboffer.ComponentAmount{},
			EmployerContributions: []joboffer.ComponentAmount{},
		}

		for _, c := range byOffer[o.ID] {
			amount := joboffer.ComponentAmount{
				Component: c.Component,
				Amount:    c.Amount,
				Yearly:    c.Amount * monthsPerYear,
			}
			if c.Kind == "deduction" {
				resp.Deductions = append(resp.Deductions, amount)
			} else {
				resp.Earnings = append(resp.Earnings, amount)
			}
			// Employer-paid components stay in their list and are also
			// collected separately; they do not count toward take-home.
			if c.ExcludeFromTotal {
				resp.EmployerContributions = append(resp.EmployerContributions, amount)
			}
		}

		responses = append(responses, resp)
	}

	return responses, nil
}

// StructureComponents implements joboffer.JobOfferService.
func (s *jobOfferServiceImpl) StructureComponents(ctx context.Context, structure string) (joboffer.SalaryStructureResponse, error) {
	meta, err := s.jobOfferRepo.GetSalaryStructure(ctx, structure)
	if err != nil {
		return joboffer.SalaryStructureResponse{}, err
	}

	components, err := s.jobOfferRepo.ListStructureComponents(ctx, structure)
	if err != nil {
		return joboffer.SalaryStructureResponse{}, err
	}

	resp := joboffer.SalaryStructureResponse{
		SalaryStructure: meta.Name,
		Meta: joboffer.SalaryStructureMeta{
			Currency:         meta.Currency,
			PayrollFrequency: meta.PayrollFrequency,
			IsActive:         meta.IsActive,
		},
		Earnings:   []joboffer.StructureComponentRow{},
		Deductions: []joboffer.StructureComponentRow{},
	}

	for _, c := range components {
		row := joboffer.StructureComponentRow{
			Idx:              c.Idx,
			Component:        c.Component,
			Abbr:             c.Abbr,
			Amount:           c.Amount,
			Formula:          c.Formula,
			Condition:        c.Condition,
			IsTaxApplicable:  c.IsTaxApplicable,
			ExcludeFromTotal: c.ExcludeFromTotal,
		}
		if c.Kind == "deduction" {
			resp.Deductions = append(resp.Deductions, row)
		} else {
			resp.Earnings = append(resp.Earnings, row)
		}
	}

	return resp, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
