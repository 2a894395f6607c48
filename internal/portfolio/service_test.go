// AngelaMos | 2026
// service_test.go

package portfolio

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/angelamos/venturedesk/internal/core"
)

// ---------------------------------------------------------------------------
// In-memory stub store with snapshot/restore transaction semantics
// ---------------------------------------------------------------------------

type stubStore struct {
	companies []*Company
	founders  []*Founder
	rounds    []*FundraisingRound
	revenue   []*RevenueRecord
	snapshots []*AdminSnapshot

	roundCreateErr    error
	snapshotCreateErr error
}

func newStubStore() *stubStore {
	return &stubStore{}
}

func (s *stubStore) Companies() CompanyRepository  { return &stubCompanies{s} }
func (s *stubStore) Founders() FounderRepository   { return &stubFounders{s} }
func (s *stubStore) Rounds() RoundRepository       { return &stubRounds{s} }
func (s *stubStore) Revenue() RevenueRepository    { return &stubRevenue{s} }
func (s *stubStore) Snapshots() SnapshotRepository { return &stubSnapshots{s} }

// InTx clones all tables up front and restores them when fn fails,
// mirroring a rollback.
func (s *stubStore) InTx(_ context.Context, fn func(Store) error) error {
	companies := cloneSlice(s.companies)
	founders := cloneSlice(s.founders)
	rounds := cloneSlice(s.rounds)
	revenue := cloneSlice(s.revenue)
	snapshots := cloneSlice(s.snapshots)

	if err := fn(s); err != nil {
		s.companies = companies
		s.founders = founders
		s.rounds = rounds
		s.revenue = revenue
		s.snapshots = snapshots
		return err
	}

	return nil
}

func cloneSlice[T any](in []*T) []*T {
	out := make([]*T, len(in))
	for i, v := range in {
		clone := *v
		out[i] = &clone
	}
	return out
}

type stubCompanies struct{ s *stubStore }

func (r *stubCompanies) List(_ context.Context) ([]Company, error) {
	out := make([]Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCompanies) GetByID(_ context.Context, id string) (*Company, error) {
	for _, c := range r.s.companies {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("get company: %w", core.ErrNotFound)
}

func (r *stubCompanies) Create(_ context.Context, c *Company) error {
	clone := *c
	r.s.companies = append(r.s.companies, &clone)
	return nil
}

func (r *stubCompanies) Update(_ context.Context, c *Company) error {
	for i, existing := range r.s.companies {
		if existing.ID == c.ID {
			clone := *c
			r.s.companies[i] = &clone
			return nil
		}
	}
	return fmt.Errorf("update company: %w", core.ErrNotFound)
}

func (r *stubCompanies) Delete(_ context.Context, id string) error {
	for i, c := range r.s.companies {
		if c.ID == id {
			r.s.companies = append(r.s.companies[:i], r.s.companies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete company: %w", core.ErrNotFound)
}

type stubFounders struct{ s *stubStore }

func (r *stubFounders) GetByID(_ context.Context, id string) (*Founder, error) {
	for _, f := range r.s.founders {
		if f.ID == id {
			clone := *f
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("get founder: %w", core.ErrNotFound)
}

func (r *stubFounders) FirstByCompany(_ context.Context, companyID string) (*Founder, error) {
	for _, f := range r.s.founders {
		if f.CompanyID != nil && *f.CompanyID == companyID {
			clone := *f
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("first founder: %w", core.ErrNotFound)
}

func (r *stubFounders) Create(_ context.Context, f *Founder) error {
	clone := *f
	r.s.founders = append(r.s.founders, &clone)
	return nil
}

func (r *stubFounders) Update(_ context.Context, f *Founder) error {
	for i, existing := range r.s.founders {
		if existing.ID == f.ID {
			clone := *f
			r.s.founders[i] = &clone
			return nil
		}
	}
	return fmt.Errorf("update founder: %w", core.ErrNotFound)
}

type stubRounds struct{ s *stubStore }

func (r *stubRounds) ListByCompany(_ context.Context, companyID string) ([]FundraisingRound, error) {
	var out []FundraisingRound
	for _, round := range r.s.rounds {
		if round.CompanyID == companyID {
			out = append(out, *round)
		}
	}
	return out, nil
}

func (r *stubRounds) GetByID(_ context.Context, id string) (*FundraisingRound, error) {
	for _, round := range r.s.rounds {
		if round.ID == id {
			clone := *round
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("get round: %w", core.ErrNotFound)
}

func (r *stubRounds) Create(_ context.Context, round *FundraisingRound) error {
	if r.s.roundCreateErr != nil {
		return r.s.roundCreateErr
	}
	clone := *round
	r.s.rounds = append(r.s.rounds, &clone)
	return nil
}

func (r *stubRounds) Update(_ context.Context, round *FundraisingRound) error {
	for i, existing := range r.s.rounds {
		if existing.ID == round.ID {
			clone := *round
			r.s.rounds[i] = &clone
			return nil
		}
	}
	return fmt.Errorf("update round: %w", core.ErrNotFound)
}

func (r *stubRounds) Delete(_ context.Context, id string) error {
	for i, round := range r.s.rounds {
		if round.ID == id {
			r.s.rounds = append(r.s.rounds[:i], r.s.rounds[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete round: %w", core.ErrNotFound)
}

type stubRevenue struct{ s *stubStore }

func (r *stubRevenue) ListByCompany(_ context.Context, companyID string) ([]RevenueRecord, error) {
	var out []RevenueRecord
	for _, rec := range r.s.revenue {
		if rec.CompanyID == companyID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubRevenue) GetByID(_ context.Context, id string) (*RevenueRecord, error) {
	for _, rec := range r.s.revenue {
		if rec.ID == id {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("get revenue: %w", core.ErrNotFound)
}

func (r *stubRevenue) Create(_ context.Context, rec *RevenueRecord) error {
	clone := *rec
	r.s.revenue = append(r.s.revenue, &clone)
	return nil
}

func (r *stubRevenue) Update(_ context.Context, rec *RevenueRecord) error {
	for i, existing := range r.s.revenue {
		if existing.ID == rec.ID {
			clone := *rec
			r.s.revenue[i] = &clone
			return nil
		}
	}
	return fmt.Errorf("update revenue: %w", core.ErrNotFound)
}

func (r *stubRevenue) Delete(_ context.Context, id string) error {
	for i, rec := range r.s.revenue {
		if rec.ID == id {
			r.s.revenue = append(r.s.revenue[:i], r.s.revenue[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete revenue: %w", core.ErrNotFound)
}

type stubSnapshots struct{ s *stubStore }

func (r *stubSnapshots) GetByCompany(_ context.Context, companyID string) (*AdminSnapshot, error) {
	for _, snap := range r.s.snapshots {
		if snap.CompanyID == companyID {
			clone := *snap
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("get snapshot: %w", core.ErrNotFound)
}

func (r *stubSnapshots) Create(_ context.Context, snap *AdminSnapshot) error {
	if r.s.snapshotCreateErr != nil {
		return r.s.snapshotCreateErr
	}
	clone := *snap
	r.s.snapshots = append(r.s.snapshots, &clone)
	return nil
}

func (r *stubSnapshots) Update(_ context.Context, snap *AdminSnapshot) error {
	for i, existing := range r.s.snapshots {
		if existing.ID == snap.ID {
			clone := *snap
			r.s.snapshots[i] = &clone
			return nil
		}
	}
	return fmt.Errorf("update snapshot: %w", core.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func seedCompany(store *stubStore, id string) *Company {
	c := &Company{
		ID:           id,
		LegalName:    "Acme Robotics Inc",
		CountryReg:   "US",
		IndustryType: IndustryHardware,
		VintageYear:  2022,
	}
	store.companies = append(store.companies, c)
	return c
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCreateWithFounder(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)

	resp, err := svc.Create(context.Background(), CreateCompanyRequest{
		LegalName:    "Acme Robotics Inc",
		CountryReg:   "US",
		IndustryType: "HARDWARE",
		VintageYear:  2022,
		Founder: &FounderPayload{
			FirstName: "Ada",
			LastName:  "Nguyen",
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if resp.Founder == nil {
		t.Fatalf("expected a founder in the response")
	}
	if resp.Founder.CompanyID == nil || *resp.Founder.CompanyID != resp.ID {
		t.Fatalf("founder must link to the new company")
	}
	if len(store.founders) != 1 || len(store.companies) != 1 {
		t.Fatalf("store: %d companies, %d founders", len(store.companies), len(store.founders))
	}
}

func TestGetComposite(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)

	seedCompany(store, "company-a")
	store.founders = append(store.founders, &Founder{
		ID:        "founder-1",
		FirstName: "Ada",
		LastName:  "Nguyen",
		CompanyID: strPtr("company-a"),
	})
	store.rounds = append(store.rounds, &FundraisingRound{
		ID:        "round-1",
		CompanyID: "company-a",
		RoundYear: 2023,
		RoundType: RoundSafe,
	})
	store.snapshots = append(store.snapshots, &AdminSnapshot{
		ID:        "snap-1",
		CompanyID: "company-a",
		Status:    StatusActive,
	})

	t.Run("admin sees snapshot", func(t *testing.T) {
		resp, err := svc.GetComposite(context.Background(), "company-a", true)
		if err != nil {
			t.Fatalf("composite: %v", err)
		}
		if resp.Founder == nil || resp.Founder.ID != "founder-1" {
			t.Fatalf("founder missing from composite")
		}
		if len(resp.Fundraising) != 1 {
			t.Fatalf("fundraising = %d rows, want 1", len(resp.Fundraising))
		}
		if resp.AdminSnapshot == nil || resp.AdminSnapshot.ID != "snap-1" {
			t.Fatalf("snapshot missing from admin composite")
		}
	})

	t.Run("portfolio company never sees snapshot", func(t *testing.T) {
		resp, err := svc.GetComposite(context.Background(), "company-a", false)
		if err != nil {
			t.Fatalf("composite: %v", err)
		}
		if resp.AdminSnapshot != nil {
			t.Fatalf("snapshot leaked to non-admin composite")
		}
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := svc.GetComposite(context.Background(), "company-x", true)
		if !errors.Is(err, core.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestPatchFounderUpdateOrCreate(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	seedCompany(store, "company-a")

	// No founder yet: patch creates one.
	_, err := svc.Patch(context.Background(), "company-a", PatchCompanyRequest{
		Founder: &FounderPayload{FirstName: "Ada", LastName: "Nguyen"},
	}, true)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if len(store.founders) != 1 {
		t.Fatalf("founders = %d, want 1", len(store.founders))
	}
	createdID := store.founders[0].ID

	// Founder exists: patch updates in place, keeps the id.
	_, err = svc.Patch(context.Background(), "company-a", PatchCompanyRequest{
		Founder: &FounderPayload{FirstName: "Grace", LastName: "Nguyen"},
	}, true)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if len(store.founders) != 1 {
		t.Fatalf("founders = %d, want 1 after update", len(store.founders))
	}
	if store.founders[0].ID != createdID {
		t.Fatalf("founder id changed on update")
	}
	if store.founders[0].FirstName != "Grace" {
		t.Fatalf("FirstName = %q, want Grace", store.founders[0].FirstName)
	}
}

func TestPatchIDLessArraysAppend(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	seedCompany(store, "company-a")

	payload := PatchCompanyRequest{
		Fundraising: []RoundPayload{
			{RoundYear: 2023, RoundType: "SAFE", Amount: decPtr("500000")},
		},
		Revenue: []RevenuePayload{
			{FiscalYear: 2023, ARR: decPtr("120000")},
		},
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.Patch(context.Background(), "company-a", payload, true); err != nil {
			t.Fatalf("patch %d: %v", i, err)
		}
	}

	// Resubmitting the same id-less arrays appends again.
	if len(store.rounds) != 2 {
		t.Fatalf("rounds = %d, want 2 (append on resubmit)", len(store.rounds))
	}
	if len(store.revenue) != 2 {
		t.Fatalf("revenue = %d, want 2 (append on resubmit)", len(store.revenue))
	}
}

func TestPatchIDCarryingElementUpdatesInPlace(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	seedCompany(store, "company-a")
	store.rounds = append(store.rounds, &FundraisingRound{
		ID:        "round-1",
		CompanyID: "company-a",
		RoundYear: 2023,
		RoundType: RoundSafe,
		Amount:    decimal.RequireFromString("500000"),
	})

	_, err := svc.Patch(context.Background(), "company-a", PatchCompanyRequest{
		Fundraising: []RoundPayload{
			{
				ID:        strPtr("round-1"),
				RoundYear: 2024,
				RoundType: "EQUITY",
				Amount:    decPtr("2000000"),
			},
		},
	}, true)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}

	if len(store.rounds) != 1 {
		t.Fatalf("rounds = %d, want 1 (update-in-place)", len(store.rounds))
	}
	got := store.rounds[0]
	if got.RoundYear != 2024 || got.RoundType != RoundEquity {
		t.Fatalf("round not updated: %+v", got)
	}
	if !got.Amount.Equal(decimal.RequireFromString("2000000")) {
		t.Fatalf("Amount = %s, want 2000000", got.Amount)
	}
}

func TestPatchRejectsForeignRoundID(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	seedCompany(store, "company-a")
	seedCompany(store, "company-b")
	store.rounds = append(store.rounds, &FundraisingRound{
		ID:        "round-b",
		CompanyID: "company-b",
		RoundYear: 2023,
		RoundType: RoundSafe,
	})

	_, err := svc.Patch(context.Background(), "company-a", PatchCompanyRequest{
		Fundraising: []RoundPayload{
			{ID: strPtr("round-b"), RoundYear: 2024, RoundType: "SAFE"},
		},
	}, true)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("foreign round id must read as not found, got %v", err)
	}

	// The foreign row must be untouched.
	if store.rounds[0].RoundYear != 2023 {
		t.Fatalf("foreign round was modified")
	}
}

func TestPatchSnapshotIDStability(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	seedCompany(store, "company-a")

	_, err := svc.Patch(context.Background(), "company-a", PatchCompanyRequest{
		AdminSnapshot: &SnapshotPayload{
			InvestedAmount: decPtr("1000000"),
			InvestmentYear: intPtr(2022),
		},
	}, true)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if len(store.snapshots) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(store.snapshots))
	}
	createdID := store.snapshots[0].ID
	if store.snapshots[0].Status != StatusActive {
		t.Fatalf("new snapshot must default to ACTIVE")
	}

	_, err = svc.Patch(context.Background(), "company-a", PatchCompanyRequest{
		AdminSnapshot: &SnapshotPayload{
			Status: strPtr("EXITED"),
		},
	}, true)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}

	if len(store.snapshots) != 1 {
		t.Fatalf("snapshots = %d, want 1 after second patch", len(store.snapshots))
	}
	snap := store.snapshots[0]
	if snap.ID != createdID {
		t.Fatalf("snapshot id changed across patches")
	}
	if snap.Status != StatusExited {
		t.Fatalf("Status = %q, want EXITED", snap.Status)
	}
	// Fields omitted from the second patch keep their values.
	if !snap.InvestedAmount.Equal(decimal.RequireFromString("1000000")) {
		t.Fatalf("InvestedAmount = %s, want 1000000", snap.InvestedAmount)
	}
}

func TestPatchRollsBackOnSubPartFailure(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	seedCompany(store, "company-a")
	store.roundCreateErr = errors.New("storage unavailable")

	_, err := svc.Patch(context.Background(), "company-a", PatchCompanyRequest{
		UpdateCompanyRequest: UpdateCompanyRequest{
			LegalName: strPtr("Renamed Robotics Inc"),
		},
		Founder: &FounderPayload{FirstName: "Ada", LastName: "Nguyen"},
		Fundraising: []RoundPayload{
			{RoundYear: 2024, RoundType: "SAFE"},
		},
	}, true)
	if err == nil {
		t.Fatalf("expected the round failure to surface")
	}

	// Every sub-part that ran before the failure must be rolled back.
	if store.companies[0].LegalName != "Acme Robotics Inc" {
		t.Fatalf("company rename survived rollback")
	}
	if len(store.founders) != 0 {
		t.Fatalf("founder create survived rollback")
	}
	if len(store.rounds) != 0 {
		t.Fatalf("unexpected round row")
	}
}

func TestUpdateCompanyPartial(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	seedCompany(store, "company-a")

	resp, err := svc.Update(context.Background(), "company-a", UpdateCompanyRequest{
		TeamSize:    intPtr(12),
		MonthlyBurn: decPtr("45000"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if resp.TeamSize != 12 {
		t.Fatalf("TeamSize = %d, want 12", resp.TeamSize)
	}
	// Untouched fields survive.
	if resp.LegalName != "Acme Robotics Inc" {
		t.Fatalf("LegalName = %q, want original", resp.LegalName)
	}
	if !store.companies[0].MonthlyBurn.Equal(decimal.RequireFromString("45000")) {
		t.Fatalf("MonthlyBurn not persisted")
	}
}

func TestRoundCRUDAgainstCompany(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	seedCompany(store, "company-a")

	created, err := svc.CreateRound(context.Background(), "company-a", RoundPayload{
		RoundYear: 2024,
		RoundType: "CONVERTIBLE",
		Amount:    decPtr("750000"),
	})
	if err != nil {
		t.Fatalf("create round: %v", err)
	}
	if created.CompanyID != "company-a" {
		t.Fatalf("CompanyID = %q", created.CompanyID)
	}

	// Creating against a missing company fails up front.
	_, err = svc.CreateRound(context.Background(), "company-x", RoundPayload{
		RoundYear: 2024,
		RoundType: "SAFE",
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := svc.DeleteRound(context.Background(), created.ID); err != nil {
		t.Fatalf("delete round: %v", err)
	}
	if len(store.rounds) != 0 {
		t.Fatalf("round not deleted")
	}
}
