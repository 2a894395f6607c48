// AngelaMos | 2026
// snapshot_repository.go

package portfolio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/venturedesk/internal/core"
)

type SnapshotRepository interface {
	// GetByCompany returns the company's snapshot or core.ErrNotFound.
	// The reconciler uses the result to choose update-vs-create.
	GetByCompany(ctx context.Context, companyID string) (*AdminSnapshot, error)
	Create(ctx context.Context, snapshot *AdminSnapshot) error
	Update(ctx context.Context, snapshot *AdminSnapshot) error
}

type snapshotRepository struct {
	db core.DBTX
}

const snapshotColumns = `
	id, company_id, invested_amount, investment_year,
	valuation_at_investment, equity_pct, status, board_seat,
	lead_partner, last_contact_date, update_frequency, notes,
	created_at, updated_at`

func (r *snapshotRepository) GetByCompany(
	ctx context.Context,
	companyID string,
) (*AdminSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM admin_snapshots
		WHERE company_id = $1
		ORDER BY created_at
		LIMIT 1`

	var snapshot AdminSnapshot
	err := r.db.GetContext(ctx, &snapshot, query, companyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get admin snapshot: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get admin snapshot: %w", err)
	}

	return &snapshot, nil
}

func (r *snapshotRepository) Create(
	ctx context.Context,
	snapshot *AdminSnapshot,
) error {
	query := `
		INSERT INTO admin_snapshots (
			id, company_id, invested_amount, investment_year,
			valuation_at_investment, equity_pct, status, board_seat,
			lead_partner, last_contact_date, update_frequency, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, snapshot, query,
		snapshot.ID,
		snapshot.CompanyID,
		snapshot.InvestedAmount,
		snapshot.InvestmentYear,
		snapshot.ValuationAtInvestment,
		snapshot.EquityPct,
		snapshot.Status,
		snapshot.BoardSeat,
		snapshot.LeadPartner,
		snapshot.LastContactDate,
		snapshot.UpdateFrequency,
		snapshot.Notes,
	)
	if err != nil {
		return fmt.Errorf("create admin snapshot: %w", err)
	}

	return nil
}

func (r *snapshotRepository) Update(
	ctx context.Context,
	snapshot *AdminSnapshot,
) error {
	query := `
		UPDATE admin_snapshots
		SET invested_amount = $2, investment_year = $3,
		    valuation_at_investment = $4, equity_pct = $5, status = $6,
		    board_seat = $7, lead_partner = $8, last_contact_date = $9,
		    update_frequency = $10, notes = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &snapshot.UpdatedAt, query,
		snapshot.ID,
		snapshot.InvestedAmount,
		snapshot.InvestmentYear,
		snapshot.ValuationAtInvestment,
		snapshot.EquityPct,
		snapshot.Status,
		snapshot.BoardSeat,
		snapshot.LeadPartner,
		snapshot.LastContactDate,
		snapshot.UpdateFrequency,
		snapshot.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update admin snapshot: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update admin snapshot: %w", err)
	}

	return nil
}
