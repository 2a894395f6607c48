// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/angelamos/venturedesk/internal/core"
)

type StatsRepository interface {
	PortfolioCounts(ctx context.Context) (*PortfolioCounts, error)
}

type PortfolioCounts struct {
	Companies         int `db:"companies"          json:"companies"`
	Founders          int `db:"founders"           json:"founders"`
	FundraisingRounds int `db:"fundraising_rounds" json:"fundraisingRounds"`
	RevenueRecords    int `db:"revenue_records"    json:"revenueRecords"`
	AdminSnapshots    int `db:"admin_snapshots"    json:"adminSnapshots"`
	Mentors           int `db:"mentors"            json:"mentors"`
}

type statsRepository struct {
	db core.DBTX
}

func NewStatsRepository(db core.DBTX) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) PortfolioCounts(
	ctx context.Context,
) (*PortfolioCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM companies)           AS companies,
			(SELECT COUNT(*) FROM founders)            AS founders,
			(SELECT COUNT(*) FROM fundraising_rounds)  AS fundraising_rounds,
			(SELECT COUNT(*) FROM revenue_records)     AS revenue_records,
			(SELECT COUNT(*) FROM admin_snapshots)     AS admin_snapshots,
			(SELECT COUNT(*) FROM brain_trust_mentors) AS mentors`

	var counts PortfolioCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("portfolio counts: %w", err)
	}

	return &counts, nil
}
