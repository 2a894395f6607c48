// AngelaMos | 2026
// entity.go

package portfolio

import (
	"time"

	"github.com/shopspring/decimal"
)

type Industry string

const (
	IndustrySaaS     Industry = "SAAS"
	IndustryHardware Industry = "HARDWARE"
	IndustryBiotech  Industry = "BIOTECH"
	IndustryFintech  Industry = "FINTECH"
	IndustryOther    Industry = "OTHER"
)

type RoundType string

const (
	RoundSafe        RoundType = "SAFE"
	RoundConvertible RoundType = "CONVERTIBLE"
	RoundEquity      RoundType = "EQUITY"
)

type SnapshotStatus string

const (
	StatusActive SnapshotStatus = "ACTIVE"
	StatusExited SnapshotStatus = "EXITED"
	StatusOnHold SnapshotStatus = "ON_HOLD"
)

type UpdateFrequency string

const (
	FrequencyMonthly   UpdateFrequency = "MONTHLY"
	FrequencyQuarterly UpdateFrequency = "QUARTERLY"
	FrequencyAnnual    UpdateFrequency = "ANNUAL"
)

// Company is the aggregate root: it owns zero-or-one founder (one by
// convention), any number of fundraising rounds and revenue records,
// and at most one admin snapshot.
type Company struct {
	ID               string          `db:"id"`
	LegalName        string          `db:"legal_name"`
	AKA              string          `db:"aka"`
	CountryReg       string          `db:"country_reg"`
	CountyOps        string          `db:"county_ops"`
	Website          string          `db:"website"`
	IndustryType     Industry        `db:"industry_type"`
	IndustryDetail   string          `db:"industry_detail"`
	VintageYear      int             `db:"vintage_year"`
	CurrentValuation decimal.Decimal `db:"current_valuation"`
	CashInflow       decimal.Decimal `db:"cash_inflow"`
	CashOutflow      decimal.Decimal `db:"cash_outflow"`
	MonthlyBurn      decimal.Decimal `db:"monthly_burn"`
	RunwayMonths     int             `db:"runway_months"`
	TeamSize         int             `db:"team_size"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type Founder struct {
	ID           string    `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Phone        string    `db:"phone"`
	LinkedInURL  string    `db:"linkedin_url"`
	WomanFounder bool      `db:"woman_founder"`
	CompanyID    *string   `db:"company_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type FundraisingRound struct {
	ID          string          `db:"id"`
	CompanyID   string          `db:"company_id"`
	RoundYear   int             `db:"round_year"`
	Amount      decimal.Decimal `db:"amount"`
	RoundType   RoundType       `db:"round_type"`
	CoInvestors string          `db:"co_investors"`
	Notes       string          `db:"notes"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// RevenueRecord carries one fiscal year of figures. Uniqueness per
// (company, year) is deliberately not enforced; duplicate years can
// coexist.
type RevenueRecord struct {
	ID               string          `db:"id"`
	CompanyID        string          `db:"company_id"`
	FiscalYear       int             `db:"fiscal_year"`
	ARR              decimal.Decimal `db:"arr"`
	Q1Revenue        decimal.Decimal `db:"q1_revenue"`
	Q2Revenue        decimal.Decimal `db:"q2_revenue"`
	Q3Revenue        decimal.Decimal `db:"q3_revenue"`
	Q4Revenue        decimal.Decimal `db:"q4_revenue"`
	ProjectedRevenue decimal.Decimal `db:"projected_revenue"`
	ActualRevenue    decimal.Decimal `db:"actual_revenue"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// AdminSnapshot is the internal-only administrative record layered onto
// a company. One per company, enforced by update-vs-create logic rather
// than a uniqueness constraint.
type AdminSnapshot struct {
	ID                    string          `db:"id"`
	CompanyID             string          `db:"company_id"`
	InvestedAmount        decimal.Decimal `db:"invested_amount"`
	InvestmentYear        int             `db:"investment_year"`
	ValuationAtInvestment decimal.Decimal `db:"valuation_at_investment"`
	EquityPct             decimal.Decimal `db:"equity_pct"`
	Status                SnapshotStatus  `db:"status"`
	BoardSeat             *string         `db:"board_seat"`
	LeadPartner           *string         `db:"lead_partner"`
	LastContactDate       *time.Time      `db:"last_contact_date"`
	UpdateFrequency       UpdateFrequency `db:"update_frequency"`
	Notes                 *string         `db:"notes"`
	CreatedAt             time.Time       `db:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at"`
}
