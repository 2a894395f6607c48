// AngelaMos | 2026
// dto.go

package portfolio

import (
	"time"

	"github.com/shopspring/decimal"
)

type FounderPayload struct {
	FirstName    string `json:"firstName"    validate:"required,min=1,max=100"`
	LastName     string `json:"lastName"     validate:"required,min=1,max=100"`
	Phone        string `json:"phone"        validate:"omitempty,max=32"`
	LinkedInURL  string `json:"linkedinUrl"  validate:"omitempty,url,max=255"`
	WomanFounder bool   `json:"womanFounder"`
}

type CreateCompanyRequest struct {
	LegalName        string           `json:"legalName"        validate:"required,min=1,max=255"`
	AKA              string           `json:"aka"              validate:"omitempty,max=255"`
	CountryReg       string           `json:"countryReg"       validate:"required,min=2,max=64"`
	CountyOps        string           `json:"countyOps"        validate:"omitempty,max=64"`
	Website          string           `json:"website"          validate:"omitempty,url,max=255"`
	IndustryType     string           `json:"industryType"     validate:"required,oneof=SAAS HARDWARE BIOTECH FINTECH OTHER"`
	IndustryDetail   string           `json:"industryDetail"   validate:"omitempty,max=255"`
	VintageYear      int              `json:"vintageYear"      validate:"required,min=1900,max=2100"`
	CurrentValuation *decimal.Decimal `json:"currentValuation" validate:"omitempty"`
	CashInflow       *decimal.Decimal `json:"cashInflow"       validate:"omitempty"`
	CashOutflow      *decimal.Decimal `json:"cashOutflow"      validate:"omitempty"`
	MonthlyBurn      *decimal.Decimal `json:"monthlyBurn"      validate:"omitempty"`
	RunwayMonths     int              `json:"runwayMonths"     validate:"omitempty,min=0"`
	TeamSize         int              `json:"teamSize"         validate:"omitempty,min=0"`
	Founder          *FounderPayload  `json:"founder"          validate:"omitempty"`
}

// UpdateCompanyRequest covers the PUT route: simple top-level fields
// only, pointers for partial updates.
type UpdateCompanyRequest struct {
	LegalName        *string          `json:"legalName"        validate:"omitempty,min=1,max=255"`
	AKA              *string          `json:"aka"              validate:"omitempty,max=255"`
	CountryReg       *string          `json:"countryReg"       validate:"omitempty,min=2,max=64"`
	CountyOps        *string          `json:"countyOps"        validate:"omitempty,max=64"`
	Website          *string          `json:"website"          validate:"omitempty,url,max=255"`
	IndustryType     *string          `json:"industryType"     validate:"omitempty,oneof=SAAS HARDWARE BIOTECH FINTECH OTHER"`
	IndustryDetail   *string          `json:"industryDetail"   validate:"omitempty,max=255"`
	VintageYear      *int             `json:"vintageYear"      validate:"omitempty,min=1900,max=2100"`
	CurrentValuation *decimal.Decimal `json:"currentValuation" validate:"omitempty"`
	CashInflow       *decimal.Decimal `json:"cashInflow"       validate:"omitempty"`
	CashOutflow      *decimal.Decimal `json:"cashOutflow"      validate:"omitempty"`
	MonthlyBurn      *decimal.Decimal `json:"monthlyBurn"      validate:"omitempty"`
	RunwayMonths     *int             `json:"runwayMonths"     validate:"omitempty,min=0"`
	TeamSize         *int             `json:"teamSize"         validate:"omitempty,min=0"`
}

// RoundPayload is one element of a PATCH fundraising array or the body
// of the round CRUD routes. An element without an id appends a new
// round; an element with an id updates that round in place.
type RoundPayload struct {
	ID          *string          `json:"id"          validate:"omitempty,uuid"`
	RoundYear   int              `json:"roundYear"   validate:"required,min=1900,max=2100"`
	Amount      *decimal.Decimal `json:"amount"      validate:"omitempty"`
	RoundType   string           `json:"roundType"   validate:"required,oneof=SAFE CONVERTIBLE EQUITY"`
	CoInvestors string           `json:"coInvestors" validate:"omitempty,max=1024"`
	Notes       string           `json:"notes"       validate:"omitempty,max=4096"`
}

type RevenuePayload struct {
	ID               *string          `json:"id"               validate:"omitempty,uuid"`
	FiscalYear       int              `json:"fiscalYear"       validate:"required,min=1900,max=2100"`
	ARR              *decimal.Decimal `json:"arr"              validate:"omitempty"`
	Q1Revenue        *decimal.Decimal `json:"q1Revenue"        validate:"omitempty"`
	Q2Revenue        *decimal.Decimal `json:"q2Revenue"        validate:"omitempty"`
	Q3Revenue        *decimal.Decimal `json:"q3Revenue"        validate:"omitempty"`
	Q4Revenue        *decimal.Decimal `json:"q4Revenue"        validate:"omitempty"`
	ProjectedRevenue *decimal.Decimal `json:"projectedRevenue" validate:"omitempty"`
	ActualRevenue    *decimal.Decimal `json:"actualRevenue"    validate:"omitempty"`
}

type SnapshotPayload struct {
	InvestedAmount        *decimal.Decimal `json:"investedAmount"        validate:"omitempty"`
	InvestmentYear        *int             `json:"investmentYear"        validate:"omitempty,min=1900,max=2100"`
	ValuationAtInvestment *decimal.Decimal `json:"valuationAtInvestment" validate:"omitempty"`
	EquityPct             *decimal.Decimal `json:"equityPct"             validate:"omitempty"`
	Status                *string          `json:"status"                validate:"omitempty,oneof=ACTIVE EXITED ON_HOLD"`
	BoardSeat             *string          `json:"boardSeat"             validate:"omitempty,max=255"`
	LeadPartner           *string          `json:"leadPartner"           validate:"omitempty,max=255"`
	LastContactDate       *time.Time       `json:"lastContactDate"       validate:"omitempty"`
	UpdateFrequency       *string          `json:"updateFrequency"       validate:"omitempty,oneof=MONTHLY QUARTERLY ANNUAL"`
	Notes                 *string          `json:"notes"                 validate:"omitempty,max=8192"`
}

// PatchCompanyRequest is the nested-update payload: any subset of
// top-level company fields plus the founder, fundraising, revenue and
// adminSnapshot sub-parts.
type PatchCompanyRequest struct {
	UpdateCompanyRequest

	Founder       *FounderPayload  `json:"founder"       validate:"omitempty"`
	Fundraising   []RoundPayload   `json:"fundraising"   validate:"omitempty,dive"`
	Revenue       []RevenuePayload `json:"revenue"       validate:"omitempty,dive"`
	AdminSnapshot *SnapshotPayload `json:"adminSnapshot" validate:"omitempty"`
}

type FounderUpdateRequest struct {
	FirstName    *string `json:"firstName"    validate:"omitempty,min=1,max=100"`
	LastName     *string `json:"lastName"     validate:"omitempty,min=1,max=100"`
	Phone        *string `json:"phone"        validate:"omitempty,max=32"`
	LinkedInURL  *string `json:"linkedinUrl"  validate:"omitempty,url,max=255"`
	WomanFounder *bool   `json:"womanFounder"`
}

type CompanyResponse struct {
	ID               string          `json:"id"`
	LegalName        string          `json:"legalName"`
	AKA              string          `json:"aka,omitempty"`
	CountryReg       string          `json:"countryReg"`
	CountyOps        string          `json:"countyOps,omitempty"`
	Website          string          `json:"website,omitempty"`
	IndustryType     Industry        `json:"industryType"`
	IndustryDetail   string          `json:"industryDetail,omitempty"`
	VintageYear      int             `json:"vintageYear"`
	CurrentValuation decimal.Decimal `json:"currentValuation"`
	CashInflow       decimal.Decimal `json:"cashInflow"`
	CashOutflow      decimal.Decimal `json:"cashOutflow"`
	MonthlyBurn      decimal.Decimal `json:"monthlyBurn"`
	RunwayMonths     int             `json:"runwayMonths"`
	TeamSize         int             `json:"teamSize"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type FounderResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone,omitempty"`
	LinkedInURL  string    `json:"linkedinUrl,omitempty"`
	WomanFounder bool      `json:"womanFounder"`
	CompanyID    *string   `json:"companyId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type RoundResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	RoundYear   int             `json:"roundYear"`
	Amount      decimal.Decimal `json:"amount"`
	RoundType   RoundType       `json:"roundType"`
	CoInvestors string          `json:"coInvestors,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type RevenueResponse struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"companyId"`
	FiscalYear       int             `json:"fiscalYear"`
	ARR              decimal.Decimal `json:"arr"`
	Q1Revenue        decimal.Decimal `json:"q1Revenue"`
	Q2Revenue        decimal.Decimal `json:"q2Revenue"`
	Q3Revenue        decimal.Decimal `json:"q3Revenue"`
	Q4Revenue        decimal.Decimal `json:"q4Revenue"`
	ProjectedRevenue decimal.Decimal `json:"projectedRevenue"`
	ActualRevenue    decimal.Decimal `json:"actualRevenue"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type SnapshotResponse struct {
	ID                    string          `json:"id"`
	CompanyID             string          `json:"companyId"`
	InvestedAmount        decimal.Decimal `json:"investedAmount"`
	InvestmentYear        int             `json:"investmentYear"`
	ValuationAtInvestment decimal.Decimal `json:"valuationAtInvestment"`
	EquityPct             decimal.Decimal `json:"equityPct"`
	Status                SnapshotStatus  `json:"status"`
	BoardSeat             *string         `json:"boardSeat,omitempty"`
	LeadPartner           *string         `json:"leadPartner,omitempty"`
	LastContactDate       *time.Time      `json:"lastContactDate,omitempty"`
	UpdateFrequency       UpdateFrequency `json:"updateFrequency"`
	Notes                 *string         `json:"notes,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// CompositeResponse is the company merged with its founder, fundraising
// list, revenue list and (for admins only) the admin snapshot.
type CompositeResponse struct {
	CompanyResponse

	Founder       *FounderResponse  `json:"founder"`
	Fundraising   []RoundResponse   `json:"fundraising"`
	Revenue       []RevenueResponse `json:"revenue"`
	AdminSnapshot *SnapshotResponse `json:"adminSnapshot,omitempty"`
}

type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

type RoundListResponse struct {
	Fundraising []RoundResponse `json:"fundraising"`
}

type RevenueListResponse struct {
	Revenue []RevenueResponse `json:"revenue"`
}

func toCompanyResponse(c *Company) CompanyResponse {
	return CompanyResponse{
		ID:               c.ID,
		LegalName:        c.LegalName,
		AKA:              c.AKA,
		CountryReg:       c.CountryReg,
		CountyOps:        c.CountyOps,
		Website:          c.Website,
		IndustryType:     c.IndustryType,
		IndustryDetail:   c.IndustryDetail,
		VintageYear:      c.VintageYear,
		CurrentValuation: c.CurrentValuation,
		CashInflow:       c.CashInflow,
		CashOutflow:      c.CashOutflow,
		MonthlyBurn:      c.MonthlyBurn,
		RunwayMonths:     c.RunwayMonths,
		TeamSize:         c.TeamSize,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func toFounderResponse(f *Founder) *FounderResponse {
	if f == nil {
		return nil
	}
	return &FounderResponse{
		ID:           f.ID,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Phone:        f.Phone,
		LinkedInURL:  f.LinkedInURL,
		WomanFounder: f.WomanFounder,
		CompanyID:    f.CompanyID,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func toRoundResponse(r *FundraisingRound) RoundResponse {
	return RoundResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		RoundYear:   r.RoundYear,
		Amount:      r.Amount,
		RoundType:   r.RoundType,
		CoInvestors: r.CoInvestors,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toRoundResponseList(rounds []FundraisingRound) []RoundResponse {
	responses := make([]RoundResponse, 0, len(rounds))
	for i := range rounds {
		responses = append(responses, toRoundResponse(&rounds[i]))
	}
	return responses
}

func toRevenueResponse(r *RevenueRecord) RevenueResponse {
	return RevenueResponse{
		ID:               r.ID,
		CompanyID:        r.CompanyID,
		FiscalYear:       r.FiscalYear,
		ARR:              r.ARR,
		Q1Revenue:        r.Q1Revenue,
		Q2Revenue:        r.Q2Revenue,
		Q3Revenue:        r.Q3Revenue,
		Q4Revenue:        r.Q4Revenue,
		ProjectedRevenue: r.ProjectedRevenue,
		ActualRevenue:    r.ActualRevenue,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toRevenueResponseList(records []RevenueRecord) []RevenueResponse {
	responses := make([]RevenueResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toRevenueResponse(&records[i]))
	}
	return responses
}

func toSnapshotResponse(s *AdminSnapshot) *SnapshotResponse {
	if s == nil {
		return nil
	}
	return &SnapshotResponse{
		ID:                    s.ID,
		CompanyID:             s.CompanyID,
		InvestedAmount:        s.InvestedAmount,
		InvestmentYear:        s.InvestmentYear,
		ValuationAtInvestment: s.ValuationAtInvestment,
		EquityPct:             s.EquityPct,
		Status:                s.Status,
		BoardSeat:             s.BoardSeat,
		LeadPartner:           s.LeadPartner,
		LastContactDate:       s.LastContactDate,
		UpdateFrequency:       s.UpdateFrequency,
		Notes:                 s.Notes,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func toCompanyResponseList(companies []Company) []CompanyResponse {
	responses := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		responses = append(responses, toCompanyResponse(&companies[i]))
	}
	return responses
}
