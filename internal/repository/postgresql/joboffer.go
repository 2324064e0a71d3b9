package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/joboffer"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type jobOfferRepository struct {
	db *database.DB
}

func NewJobOfferRepository(db *database.DB) joboffer.JobOfferRepository {
	return &jobOfferRepository{db: db}
}

// ListByApplicant implements joboffer.JobOfferRepository.
func (r *jobOfferRepository) ListByApplicant(ctx context.Context, applicant string) ([]joboffer.JobOffer, error) {
	query := `
		SELECT id, job_applicant, applicant_name, designation, gender,
		       offer_date, joining_date, reporting_manager, grade, base,
		       level, offered_ctc, status, company, is_executive
		FROM job_offers
		WHERE job_applicant = $1
		ORDER BY offer_date DESC NULLS LAST
	`

	rows, err := r.db.Query(ctx, query, applicant)
	if err != nil {
		return nil, fmt.Errorf("failed to list job offers: %w", err)
	}
	defer rows.Close()

	var offers []joboffer.JobOffer
	for rows.Next() {
		var o joboffer.JobOffer
		if err := rows.Scan(
			&o.ID, &o.JobApplicant, &o.ApplicantName, &o.Designation,
			&o.Gender, &o.OfferDate, &o.JoiningDate, &o.ReportingManager,
			&o.Grade, &o.Base, &o.Level, &o.OfferedCTC, &o.Status,
			&o.Company, &o.IsExecutive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job offer: %w", err)
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// ListOfferComponents implements joboffer.JobOfferRepository.
func (r *jobOfferRepository) ListOfferComponents(ctx context.Context, offerIDs []string) ([]joboffer.SalaryComponentRow, error) {
	if len(offerIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT parent_id, idx, salary_component, abbr, amount, kind,
		       exclude_from_total, formula, condition, is_tax_applicable
		FROM salary_detail_rows
		WHERE parent_id = ANY($1)
		ORDER BY parent_id, idx
	`
	return r.listComponents(ctx, query, offerIDs)
}

// GetSalaryStructure implements joboffer.JobOfferRepository.
func (r *jobOfferRepository) GetSalaryStructure(ctx context.Context, name string) (joboffer.SalaryStructure, error) {
	query := `
		SELECT name, currency, payroll_frequency, is_active
		FROM salary_structures
		WHERE name = $1
	`

	var s joboffer.SalaryStructure
	err := r.db.QueryRow(ctx, query, name).Scan(
		&s.Name, &s.Currency, &s.PayrollFrequency, &s.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return joboffer.SalaryStructure{}, joboffer.ErrSalaryStructureNotFound
		}
		return joboffer.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	return s, nil
}

// ListStructureComponents implements joboffer.JobOfferRepository.
func (r *jobOfferRepository) ListStructureComponents(ctx context.Context, structure string) ([]joboffer.SalaryComponentRow, error) {
	query := `
		SELECT parent_id, idx, salary_component, abbr, amount, kind,
		       exclude_from_total, formula, condition, is_tax_applicable
		FROM salary_detail_rows
		WHERE parent_id = $1
		ORDER BY idx
	`
	return r.listComponents(ctx, query, structure)
}

func (r *jobOfferRepository) listComponents(ctx context.Context, query string, args ...interface{}) ([]joboffer.SalaryComponentRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary components: %w", err)
	}
	defer rows.Close()

	var components []joboffer.SalaryComponentRow
	for rows.Next() {
		var c joboffer.SalaryComponentRow
		if err := rows.Scan(
			&c.ParentID, &c.Idx, &c.Component, &c.Abbr, &c.Amount, &c.Kind,
			&c.ExcludeFromTotal, &c.Formula, &c.Condition, &c.IsTaxApplicable,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary component: %w", err)
		}
		components = append(components, c)
	}
	return components, rows.Err()
}
