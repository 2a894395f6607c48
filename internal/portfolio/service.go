// AngelaMos | 2026
// service.go

package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelamos/venturedesk/internal/core"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.store.Companies().List(ctx)
	if err != nil {
		return nil, err
	}

	return toCompanyResponseList(companies), nil
}

// Create inserts a company and, when present, its nested founder in one
// transaction. The response carries founder.companyId == company.id.
func (s *Service) Create(
	ctx context.Context,
	req CreateCompanyRequest,
) (*CompositeResponse, error) {
	company := &Company{
		ID:               uuid.New().String(),
		LegalName:        req.LegalName,
		AKA:              req.AKA,
		CountryReg:       req.CountryReg,
		CountyOps:        req.CountyOps,
		Website:          req.Website,
		IndustryType:     Industry(req.IndustryType),
		IndustryDetail:   req.IndustryDetail,
		VintageYear:      req.VintageYear,
		CurrentValuation: decOrZero(req.CurrentValuation),
		CashInflow:       decOrZero(req.CashInflow),
		CashOutflow:      decOrZero(req.CashOutflow),
		MonthlyBurn:      decOrZero(req.MonthlyBurn),
		RunwayMonths:     req.RunwayMonths,
		TeamSize:         req.TeamSize,
	}

	var founder *Founder

	err := s.store.InTx(ctx, func(tx Store) error {
		if err := tx.Companies().Create(ctx, company); err != nil {
			return err
		}

		if req.Founder != nil {
			founder = &Founder{
				ID:           uuid.New().String(),
				FirstName:    req.Founder.FirstName,
				LastName:     req.Founder.LastName,
				Phone:        req.Founder.Phone,
				LinkedInURL:  req.Founder.LinkedInURL,
				WomanFounder: req.Founder.WomanFounder,
				CompanyID:    &company.ID,
			}
			if err := tx.Founders().Create(ctx, founder); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CompositeResponse{
		CompanyResponse: toCompanyResponse(company),
		Founder:         toFounderResponse(founder),
		Fundraising:     []RoundResponse{},
		Revenue:         []RevenueResponse{},
	}, nil
}

// GetComposite assembles a company with its first founder, fundraising
// list, revenue list and snapshot. Four sequential lookups; this
// function owns the consistency of the assembled view. The snapshot is
// withheld from portfolio-company callers.
func (s *Service) GetComposite(
	ctx context.Context,
	id string,
	includeSnapshot bool,
) (*CompositeResponse, error) {
	company, err := s.store.Companies().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	founder, err := s.store.Founders().FirstByCompany(ctx, id)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	rounds, err := s.store.Rounds().ListByCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := s.store.Revenue().ListByCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &CompositeResponse{
		CompanyResponse: toCompanyResponse(company),
		Founder:         toFounderResponse(founder),
		Fundraising:     toRoundResponseList(rounds),
		Revenue:         toRevenueResponseList(records),
	}

	if includeSnapshot {
		snapshot, err := s.store.Snapshots().GetByCompany(ctx, id)
		if err != nil && !errors.Is(err, core.ErrNotFound) {
			return nil, err
		}
		resp.AdminSnapshot = toSnapshotResponse(snapshot)
	}

	return resp, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateCompanyRequest,
) (*CompanyResponse, error) {
	company, err := s.store.Companies().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyCompanyUpdate(company, &req)

	if err := s.store.Companies().Update(ctx, company); err != nil {
		return nil, err
	}

	resp := toCompanyResponse(company)
	return &resp, nil
}

// Patch is the nested-update reconciler. Every sub-part runs inside a
// single transaction: a failing sub-part (say, an invalid fundraising
// entry) rolls back the founder and snapshot writes that preceded it.
// Sub-part policy:
//   - company fields: partial update of the company row
//   - founder: update the first founder found, else create one
//   - fundraising/revenue: id-less elements append new rows (repeating
//     an id-less array duplicates rows); id-carrying elements update
//     that row in place and must belong to this company
//   - adminSnapshot: partial-update the existing row, else create one
func (s *Service) Patch(
	ctx context.Context,
	id string,
	req PatchCompanyRequest,
	includeSnapshot bool,
) (*CompositeResponse, error) {
	err := s.store.InTx(ctx, func(tx Store) error {
		company, err := tx.Companies().GetByID(ctx, id)
		if err != nil {
			return err
		}

		applyCompanyUpdate(company, &req.UpdateCompanyRequest)
		if err := tx.Companies().Update(ctx, company); err != nil {
			return err
		}

		if req.Founder != nil {
			if err := s.reconcileFounder(ctx, tx, id, req.Founder); err != nil {
				return err
			}
		}

		for i := range req.Fundraising {
			if err := s.reconcileRound(ctx, tx, id, &req.Fundraising[i]); err != nil {
				return err
			}
		}

		for i := range req.Revenue {
			if err := s.reconcileRevenue(ctx, tx, id, &req.Revenue[i]); err != nil {
				return err
			}
		}

		if req.AdminSnapshot != nil {
			if err := s.reconcileSnapshot(ctx, tx, id, req.AdminSnapshot); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetComposite(ctx, id, includeSnapshot)
}

func (s *Service) reconcileFounder(
	ctx context.Context,
	tx Store,
	companyID string,
	payload *FounderPayload,
) error {
	founder, err := tx.Founders().FirstByCompany(ctx, companyID)
	if errors.Is(err, core.ErrNotFound) {
		founder = &Founder{
			ID:        uuid.New().String(),
			CompanyID: &companyID,
		}
		applyFounderPayload(founder, payload)
		return tx.Founders().Create(ctx, founder)
	}
	if err != nil {
		return err
	}

	applyFounderPayload(founder, payload)
	return tx.Founders().Update(ctx, founder)
}

func (s *Service) reconcileRound(
	ctx context.Context,
	tx Store,
	companyID string,
	payload *RoundPayload,
) error {
	if payload.ID == nil {
		round := &FundraisingRound{
			ID:          uuid.New().String(),
			CompanyID:   companyID,
			RoundYear:   payload.RoundYear,
			Amount:      decOrZero(payload.Amount),
			RoundType:   RoundType(payload.RoundType),
			CoInvestors: payload.CoInvestors,
			Notes:       payload.Notes,
		}
		return tx.Rounds().Create(ctx, round)
	}

	round, err := tx.Rounds().GetByID(ctx, *payload.ID)
	if err != nil {
		return err
	}
	if round.CompanyID != companyID {
		return fmt.Errorf("fundraising round %s: %w", *payload.ID, core.ErrNotFound)
	}

	round.RoundYear = payload.RoundYear
	if payload.Amount != nil {
		round.Amount = *payload.Amount
	}
	round.RoundType = RoundType(payload.RoundType)
	round.CoInvestors = payload.CoInvestors
	round.Notes = payload.Notes

	return tx.Rounds().Update(ctx, round)
}

func (s *Service) reconcileRevenue(
	ctx context.Context,
	tx Store,
	companyID string,
	payload *RevenuePayload,
) error {
	if payload.ID == nil {
		record := &RevenueRecord{
			ID:               uuid.New().String(),
			CompanyID:        companyID,
			FiscalYear:       payload.FiscalYear,
			ARR:              decOrZero(payload.ARR),
			Q1Revenue:        decOrZero(payload.Q1Revenue),
			Q2Revenue:        decOrZero(payload.Q2Revenue),
			Q3Revenue:        decOrZero(payload.Q3Revenue),
			Q4Revenue:        decOrZero(payload.Q4Revenue),
			ProjectedRevenue: decOrZero(payload.ProjectedRevenue),
			ActualRevenue:    decOrZero(payload.ActualRevenue),
		}
		return tx.Revenue().Create(ctx, record)
	}

	record, err := tx.Revenue().GetByID(ctx, *payload.ID)
	if err != nil {
		return err
	}
	if record.CompanyID != companyID {
		return fmt.Errorf("revenue record %s: %w", *payload.ID, core.ErrNotFound)
	}

	applyRevenuePayload(record, payload)

	return tx.Revenue().Update(ctx, record)
}

func (s *Service) reconcileSnapshot(
	ctx context.Context,
	tx Store,
	companyID string,
	payload *SnapshotPayload,
) error {
	snapshot, err := tx.Snapshots().GetByCompany(ctx, companyID)
	if errors.Is(err, core.ErrNotFound) {
		snapshot = &AdminSnapshot{
			ID:              uuid.New().String(),
			CompanyID:       companyID,
			Status:          StatusActive,
			UpdateFrequency: FrequencyQuarterly,
		}
		applySnapshotPayload(snapshot, payload)
		return tx.Snapshots().Create(ctx, snapshot)
	}
	if err != nil {
		return err
	}

	applySnapshotPayload(snapshot, payload)
	return tx.Snapshots().Update(ctx, snapshot)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Companies().Delete(ctx, id)
}

func (s *Service) GetFounder(
	ctx context.Context,
	id string,
) (*Founder, error) {
	return s.store.Founders().GetByID(ctx, id)
}

func (s *Service) UpdateFounder(
	ctx context.Context,
	id string,
	req FounderUpdateRequest,
) (*FounderResponse, error) {
	founder, err := s.store.Founders().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		founder.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		founder.LastName = *req.LastName
	}
	if req.Phone != nil {
		founder.Phone = *req.Phone
	}
	if req.LinkedInURL != nil {
		founder.LinkedInURL = *req.LinkedInURL
	}
	if req.WomanFounder != nil {
		founder.WomanFounder = *req.WomanFounder
	}

	if err := s.store.Founders().Update(ctx, founder); err != nil {
		return nil, err
	}

	return toFounderResponse(founder), nil
}

func (s *Service) ListRounds(
	ctx context.Context,
	companyID string,
) ([]RoundResponse, error) {
	rounds, err := s.store.Rounds().ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toRoundResponseList(rounds), nil
}

func (s *Service) CreateRound(
	ctx context.Context,
	companyID string,
	payload RoundPayload,
) (*RoundResponse, error) {
	if _, err := s.store.Companies().GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	round := &FundraisingRound{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		RoundYear:   payload.RoundYear,
		Amount:      decOrZero(payload.Amount),
		RoundType:   RoundType(payload.RoundType),
		CoInvestors: payload.CoInvestors,
		Notes:       payload.Notes,
	}

	if err := s.store.Rounds().Create(ctx, round); err != nil {
		return nil, err
	}

	resp := toRoundResponse(round)
	return &resp, nil
}

// GetRound exposes the round so handlers can resolve the owning company
// for the access guard before mutating.
func (s *Service) GetRound(
	ctx context.Context,
	id string,
) (*FundraisingRound, error) {
	return s.store.Rounds().GetByID(ctx, id)
}

func (s *Service) UpdateRound(
	ctx context.Context,
	id string,
	payload RoundPayload,
) (*RoundResponse, error) {
	round, err := s.store.Rounds().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	round.RoundYear = payload.RoundYear
	if payload.Amount != nil {
		round.Amount = *payload.Amount
	}
	round.RoundType = RoundType(payload.RoundType)
	round.CoInvestors = payload.CoInvestors
	round.Notes = payload.Notes

	if err := s.store.Rounds().Update(ctx, round); err != nil {
		return nil, err
	}

	resp := toRoundResponse(round)
	return &resp, nil
}

func (s *Service) DeleteRound(ctx context.Context, id string) error {
	return s.store.Rounds().Delete(ctx, id)
}

func (s *Service) ListRevenue(
	ctx context.Context,
	companyID string,
) ([]RevenueResponse, error) {
	records, err := s.store.Revenue().ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toRevenueResponseList(records), nil
}

func (s *Service) CreateRevenue(
	ctx context.Context,
	companyID string,
	payload RevenuePayload,
) (*RevenueResponse, error) {
	if _, err := s.store.Companies().GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	record := &RevenueRecord{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		FiscalYear:       payload.FiscalYear,
		ARR:              decOrZero(payload.ARR),
		Q1Revenue:        decOrZero(payload.Q1Revenue),
		Q2Revenue:        decOrZero(payload.Q2Revenue),
		Q3Revenue:        decOrZero(payload.Q3Revenue),
		Q4Revenue:        decOrZero(payload.Q4Revenue),
		ProjectedRevenue: decOrZero(payload.ProjectedRevenue),
		ActualRevenue:    decOrZero(payload.ActualRevenue),
	}

	if err := s.store.Revenue().Create(ctx, record); err != nil {
		return nil, err
	}

	resp := toRevenueResponse(record)
	return &resp, nil
}

func (s *Service) GetRevenue(
	ctx context.Context,
	id string,
) (*RevenueRecord, error) {
	return s.store.Revenue().GetByID(ctx, id)
}

func (s *Service) UpdateRevenue(
	ctx context.Context,
	id string,
	payload RevenuePayload,
) (*RevenueResponse, error) {
	record, err := s.store.Revenue().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyRevenuePayload(record, &payload)

	if err := s.store.Revenue().Update(ctx, record); err != nil {
		return nil, err
	}

	resp := toRevenueResponse(record)
	return &resp, nil
}

func (s *Service) DeleteRevenue(ctx context.Context, id string) error {
	return s.store.Revenue().Delete(ctx, id)
}

func applyCompanyUpdate(company *Company, req *UpdateCompanyRequest) {
	if req.LegalName != nil {
		company.LegalName = *req.LegalName
	}
	if req.AKA != nil {
		company.AKA = *req.AKA
	}
	if req.CountryReg != nil {
		company.CountryReg = *req.CountryReg
	}
	if req.CountyOps != nil {
		company.CountyOps = *req.CountyOps
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	if req.IndustryType != nil {
		company.IndustryType = Industry(*req.IndustryType)
	}
	if req.IndustryDetail != nil {
		company.IndustryDetail = *req.IndustryDetail
	}
	if req.VintageYear != nil {
		company.VintageYear = *req.VintageYear
	}
	if req.CurrentValuation != nil {
		company.CurrentValuation = *req.CurrentValuation
	}
	if req.CashInflow != nil {
		company.CashInflow = *req.CashInflow
	}
	if req.CashOutflow != nil {
		company.CashOutflow = *req.CashOutflow
	}
	if req.MonthlyBurn != nil {
		company.MonthlyBurn = *req.MonthlyBurn
	}
	if req.RunwayMonths != nil {
		company.RunwayMonths = *req.RunwayMonths
	}
	if req.TeamSize != nil {
		company.TeamSize = *req.TeamSize
	}
}

func applyFounderPayload(founder *Founder, payload *FounderPayload) {
	founder.FirstName = payload.FirstName
	founder.LastName = payload.LastName
	founder.Phone = payload.Phone
	founder.LinkedInURL = payload.LinkedInURL
	founder.WomanFounder = payload.WomanFounder
}

func applyRevenuePayload(record *RevenueRecord, payload *RevenuePayload) {
	record.FiscalYear = payload.FiscalYear
	if payload.ARR != nil {
		record.ARR = *payload.ARR
	}
	if payload.Q1Revenue != nil {
		record.Q1Revenue = *payload.Q1Revenue
	}
	if payload.Q2Revenue != nil {
		record.Q2Revenue = *payload.Q2Revenue
	}
	if payload.Q3Revenue != nil {
		record.Q3Revenue = *payload.Q3Revenue
	}
	if payload.Q4Revenue != nil {
		record.Q4Revenue = *payload.Q4Revenue
	}
	if payload.ProjectedRevenue != nil {
		record.ProjectedRevenue = *payload.ProjectedRevenue
	}
	if payload.ActualRevenue != nil {
		record.ActualRevenue = *payload.ActualRevenue
	}
}

func applySnapshotPayload(snapshot *AdminSnapshot, payload *SnapshotPayload) {
	if payload.InvestedAmount != nil {
		snapshot.InvestedAmount = *payload.InvestedAmount
	}
	if payload.InvestmentYear != nil {
		snapshot.InvestmentYear = *payload.InvestmentYear
	}
	if payload.ValuationAtInvestment != nil {
		snapshot.ValuationAtInvestment = *payload.ValuationAtInvestment
	}
	if payload.EquityPct != nil {
		snapshot.EquityPct = *payload.EquityPct
	}
	if payload.Status != nil {
		snapshot.Status = SnapshotStatus(*payload.Status)
	}
	if payload.BoardSeat != nil {
		snapshot.BoardSeat = payload.BoardSeat
	}
	if payload.LeadPartner != nil {
		snapshot.LeadPartner = payload.LeadPartner
	}
	if payload.LastContactDate != nil {
		snapshot.LastContactDate = payload.LastContactDate
	}
	if payload.UpdateFrequency != nil {
		snapshot.UpdateFrequency = UpdateFrequency(*payload.UpdateFrequency)
	}
	if payload.Notes != nil {
		snapshot.Notes = payload.Notes
	}
}

func decOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
