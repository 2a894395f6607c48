// AngelaMos | 2026
// repository.go

package mentor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/venturedesk/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Mentor, error)
	GetByID(ctx context.Context, id string) (*Mentor, error)
	Create(ctx context.Context, m *Mentor) error
	Update(ctx context.Context, m *Mentor) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const mentorColumns = `
	id, name, headshot_url, phone, linkedin_url, description,
	created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]Mentor, error) {
	query := `
		SELECT ` + mentorColumns + `
		FROM brain_trust_mentors
		ORDER BY name`

	var mentors []Mentor
	if err := r.db.SelectContext(ctx, &mentors, query); err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}

	return mentors, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Mentor, error) {
	query := `
		SELECT ` + mentorColumns + `
		FROM brain_trust_mentors
		WHERE id = $1`

	var m Mentor
	err := r.db.GetContext(ctx, &m, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get mentor: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get mentor: %w", err)
	}

	return &m, nil
}

func (r *repository) Create(ctx context.Context, m *Mentor) error {
	query := `
		INSERT INTO brain_trust_mentors (
			id, name, headshot_url, phone, linkedin_url, description
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, m, query,
		m.ID,
		m.Name,
		m.HeadshotURL,
		m.Phone,
		m.LinkedInURL,
		m.Description,
	)
	if err != nil {
		return fmt.Errorf("create mentor: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, m *Mentor) error {
	query := `
		UPDATE brain_trust_mentors
		SET name = $2, headshot_url = $3, phone = $4,
		    linkedin_url = $5, description = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &m.UpdatedAt, query,
		m.ID,
		m.Name,
		m.HeadshotURL,
		m.Phone,
		m.LinkedInURL,
		m.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update mentor: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update mentor: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM brain_trust_mentors WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete mentor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete mentor: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete mentor: %w", core.ErrNotFound)
	}

	return nil
}
