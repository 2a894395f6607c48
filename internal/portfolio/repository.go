// AngelaMos | 2026
// repository.go

package portfolio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/venturedesk/internal/core"
)

type CompanyRepository interface {
	List(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id string) (*Company, error)
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id string) error
}

type companyRepository struct {
	db core.DBTX
}

const companyColumns = `
	id, legal_name, aka, country_reg, county_ops, website,
	industry_type, industry_detail, vintage_year, current_valuation,
	cash_inflow, cash_outflow, monthly_burn, runway_months, team_size,
	created_at, updated_at`

func (r *companyRepository) List(ctx context.Context) ([]Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		ORDER BY legal_name`

	var companies []Company
	if err := r.db.SelectContext(ctx, &companies, query); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	return companies, nil
}

func (r *companyRepository) GetByID(
	ctx context.Context,
	id string,
) (*Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE id = $1`

	var company Company
	err := r.db.GetContext(ctx, &company, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get company: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	return &company, nil
}

func (r *companyRepository) Create(
	ctx context.Context,
	company *Company,
) error {
	query := `
		INSERT INTO companies (
			id, legal_name, aka, country_reg, county_ops, website,
			industry_type, industry_detail, vintage_year,
			current_valuation, cash_inflow, cash_outflow, monthly_burn,
			runway_months, team_size
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, company, query,
		company.ID,
		company.LegalName,
		company.AKA,
		company.CountryReg,
		company.CountyOps,
		company.Website,
		company.IndustryType,
		company.IndustryDetail,
		company.VintageYear,
		company.CurrentValuation,
		company.CashInflow,
		company.CashOutflow,
		company.MonthlyBurn,
		company.RunwayMonths,
		company.TeamSize,
	)
	if err != nil {
		return fmt.Errorf("create company: %w", err)
	}

	return nil
}

func (r *companyRepository) Update(
	ctx context.Context,
	company *Company,
) error {
	query := `
		UPDATE companies
		SET legal_name = $2, aka = $3, country_reg = $4, county_ops = $5,
		    website = $6, industry_type = $7, industry_detail = $8,
		    vintage_year = $9, current_valuation = $10, cash_inflow = $11,
		    cash_outflow = $12, monthly_burn = $13, runway_months = $14,
		    team_size = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &company.UpdatedAt, query,
		company.ID,
		company.LegalName,
		company.AKA,
		company.CountryReg,
		company.CountyOps,
		company.Website,
		company.IndustryType,
		company.IndustryDetail,
		company.VintageYear,
		company.CurrentValuation,
		company.CashInflow,
		company.CashOutflow,
		company.MonthlyBurn,
		company.RunwayMonths,
		company.TeamSize,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update company: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}

	return nil
}

// Delete is a hard delete. Sub-records are not cascaded at the
// application layer; whether the store enforces referential cleanup is
// the schema's concern.
func (r *companyRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM companies WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete company: %w", core.ErrNotFound)
	}

	return nil
}
