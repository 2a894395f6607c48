// AngelaMos | 2026
// founder_repository.go

package portfolio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/venturedesk/internal/core"
)

type FounderRepository interface {
	GetByID(ctx context.Context, id string) (*Founder, error)

	// FirstByCompany returns the oldest founder linked to the company,
	// or core.ErrNotFound. Storage allows many founders per company;
	// the application treats the first as "the" founder.
	FirstByCompany(ctx context.Context, companyID string) (*Founder, error)

	Create(ctx context.Context, founder *Founder) error
	Update(ctx context.Context, founder *Founder) error
}

type founderRepository struct {
	db core.DBTX
}

const founderColumns = `
	id, first_name, last_name, phone, linkedin_url, woman_founder,
	company_id, created_at, updated_at`

func (r *founderRepository) GetByID(
	ctx context.Context,
	id string,
) (*Founder, error) {
	query := `
		SELECT ` + founderColumns + `
		FROM founders
		WHERE id = $1`

	var founder Founder
	err := r.db.GetContext(ctx, &founder, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get founder: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get founder: %w", err)
	}

	return &founder, nil
}

func (r *founderRepository) FirstByCompany(
	ctx context.Context,
	companyID string,
) (*Founder, error) {
	query := `
		SELECT ` + founderColumns + `
		FROM founders
		WHERE company_id = $1
		ORDER BY created_at
		LIMIT 1`

	var founder Founder
	err := r.db.GetContext(ctx, &founder, query, companyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("first founder for company: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("first founder for company: %w", err)
	}

	return &founder, nil
}

func (r *founderRepository) Create(
	ctx context.Context,
	founder *Founder,
) error {
	query := `
		INSERT INTO founders (
			id, first_name, last_name, phone, linkedin_url,
			woman_founder, company_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, founder, query,
		founder.ID,
		founder.FirstName,
		founder.LastName,
		founder.Phone,
		founder.LinkedInURL,
		founder.WomanFounder,
		founder.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("create founder: %w", err)
	}

	return nil
}

func (r *founderRepository) Update(
	ctx context.Context,
	founder *Founder,
) error {
	query := `
		UPDATE founders
		SET first_name = $2, last_name = $3, phone = $4,
		    linkedin_url = $5, woman_founder = $6, company_id = $7,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &founder.UpdatedAt, query,
		founder.ID,
		founder.FirstName,
		founder.LastName,
		founder.Phone,
		founder.LinkedInURL,
		founder.WomanFounder,
		founder.CompanyID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update founder: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update founder: %w", err)
	}

	return nil
}
