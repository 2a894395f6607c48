// AngelaMos | 2026
// store.go

package portfolio

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/angelamos/venturedesk/internal/core"
)

// Store bundles the per-entity repositories behind one transaction
// boundary. The nested-update reconciler runs all of its sub-part
// writes through InTx so a failing sub-part rolls everything back.
type Store interface {
	Companies() CompanyRepository
	Founders() FounderRepository
	Rounds() RoundRepository
	Revenue() RevenueRepository
	Snapshots() SnapshotRepository

	InTx(ctx context.Context, fn func(Store) error) error
}

type sqlStore struct {
	db *sqlx.DB // nil when the store is already transaction-scoped
	q  core.DBTX
}

func NewStore(db *sqlx.DB) Store {
	return &sqlStore{db: db, q: db}
}

func (s *sqlStore) Companies() CompanyRepository {
	return &companyRepository{db: s.q}
}

func (s *sqlStore) Founders() FounderRepository {
	return &founderRepository{db: s.q}
}

func (s *sqlStore) Rounds() RoundRepository {
	return &roundRepository{db: s.q}
}

func (s *sqlStore) Revenue() RevenueRepository {
	return &revenueRepository{db: s.q}
}

func (s *sqlStore) Snapshots() SnapshotRepository {
	return &snapshotRepository{db: s.q}
}

func (s *sqlStore) InTx(ctx context.Context, fn func(Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	return core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		return fn(&sqlStore{q: tx})
	})
}
