// AngelaMos | 2026
// fundraising_repository.go

package portfolio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/venturedesk/internal/core"
)

type RoundRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]FundraisingRound, error)
	GetByID(ctx context.Context, id string) (*FundraisingRound, error)
	Create(ctx context.Context, round *FundraisingRound) error
	Update(ctx context.Context, round *FundraisingRound) error
	Delete(ctx context.Context, id string) error
}

type roundRepository struct {
	db core.DBTX
}

const roundColumns = `
	id, company_id, round_year, amount, round_type, co_investors,
	notes, created_at, updated_at`

func (r *roundRepository) ListByCompany(
	ctx context.Context,
	companyID string,
) ([]FundraisingRound, error) {
	query := `
		SELECT ` + roundColumns + `
		FROM fundraising_rounds
		WHERE company_id = $1
		ORDER BY round_year, created_at`

	var rounds []FundraisingRound
	if err := r.db.SelectContext(ctx, &rounds, query, companyID); err != nil {
		return nil, fmt.Errorf("list fundraising rounds: %w", err)
	}

	return rounds, nil
}

func (r *roundRepository) GetByID(
	ctx context.Context,
	id string,
) (*FundraisingRound, error) {
	query := `
		SELECT ` + roundColumns + `
		FROM fundraising_rounds
		WHERE id = $1`

	var round FundraisingRound
	err := r.db.GetContext(ctx, &round, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get fundraising round: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get fundraising round: %w", err)
	}

	return &round, nil
}

func (r *roundRepository) Create(
	ctx context.Context,
	round *FundraisingRound,
) error {
	query := `
		INSERT INTO fundraising_rounds (
			id, company_id, round_year, amount, round_type,
			co_investors, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, round, query,
		round.ID,
		round.CompanyID,
		round.RoundYear,
		round.Amount,
		round.RoundType,
		round.CoInvestors,
		round.Notes,
	)
	if err != nil {
		return fmt.Errorf("create fundraising round: %w", err)
	}

	return nil
}

func (r *roundRepository) Update(
	ctx context.Context,
	round *FundraisingRound,
) error {
	query := `
		UPDATE fundraising_rounds
		SET round_year = $2, amount = $3, round_type = $4,
		    co_investors = $5, notes = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &round.UpdatedAt, query,
		round.ID,
		round.RoundYear,
		round.Amount,
		round.RoundType,
		round.CoInvestors,
		round.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update fundraising round: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update fundraising round: %w", err)
	}

	return nil
}

func (r *roundRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM fundraising_rounds WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete fundraising round: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete fundraising round: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete fundraising round: %w", core.ErrNotFound)
	}

	return nil
}
