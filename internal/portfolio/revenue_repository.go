// AngelaMos | 2026
// revenue_repository.go

package portfolio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/venturedesk/internal/core"
)

type RevenueRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]RevenueRecord, error)
	GetByID(ctx context.Context, id string) (*RevenueRecord, error)
	Create(ctx context.Context, record *RevenueRecord) error
	Update(ctx context.Context, record *RevenueRecord) error
	Delete(ctx context.Context, id string) error
}

type revenueRepository struct {
	db core.DBTX
}

const revenueColumns = `
	id, company_id, fiscal_year, arr, q1_revenue, q2_revenue,
	q3_revenue, q4_revenue, projected_revenue, actual_revenue,
	created_at, updated_at`

func (r *revenueRepository) ListByCompany(
	ctx context.Context,
	companyID string,
) ([]RevenueRecord, error) {
	query := `
		SELECT ` + revenueColumns + `
		FROM revenue_records
		WHERE company_id = $1
		ORDER BY fiscal_year, created_at`

	var records []RevenueRecord
	if err := r.db.SelectContext(ctx, &records, query, companyID); err != nil {
		return nil, fmt.Errorf("list revenue records: %w", err)
	}

	return records, nil
}

func (r *revenueRepository) GetByID(
	ctx context.Context,
	id string,
) (*RevenueRecord, error) {
	query := `
		SELECT ` + revenueColumns + `
		FROM revenue_records
		WHERE id = $1`

	var record RevenueRecord
	err := r.db.GetContext(ctx, &record, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get revenue record: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get revenue record: %w", err)
	}

	return &record, nil
}

func (r *revenueRepository) Create(
	ctx context.Context,
	record *RevenueRecord,
) error {
	query := `
		INSERT INTO revenue_records (
			id, company_id, fiscal_year, arr, q1_revenue, q2_revenue,
			q3_revenue, q4_revenue, projected_revenue, actual_revenue
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, record, query,
		record.ID,
		record.CompanyID,
		record.FiscalYear,
		record.ARR,
		record.Q1Revenue,
		record.Q2Revenue,
		record.Q3Revenue,
		record.Q4Revenue,
		record.ProjectedRevenue,
		record.ActualRevenue,
	)
	if err != nil {
		return fmt.Errorf("create revenue record: %w", err)
	}

	return nil
}

func (r *revenueRepository) Update(
	ctx context.Context,
	record *RevenueRecord,
) error {
	query := `
		UPDATE revenue_records
		SET fiscal_year = $2, arr = $3, q1_revenue = $4, q2_revenue = $5,
		    q3_revenue = $6, q4_revenue = $7, projected_revenue = $8,
		    actual_revenue = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &record.UpdatedAt, query,
		record.ID,
		record.FiscalYear,
		record.ARR,
		record.Q1Revenue,
		record.Q2Revenue,
		record.Q3Revenue,
		record.Q4Revenue,
		record.ProjectedRevenue,
		record.ActualRevenue,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update revenue record: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update revenue record: %w", err)
	}

	return nil
}

func (r *revenueRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM revenue_records WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete revenue record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete revenue record: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete revenue record: %w", core.ErrNotFound)
	}

	return nil
}
