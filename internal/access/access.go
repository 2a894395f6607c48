// AngelaMos | 2026
// access.go

// Package access decides whether an authenticated identity may touch a
// company-scoped resource. The decision is a pure function of the
// identity's role, the company it belongs to, and the company the
// request targets; it is re-evaluated on every request and never
// cached.
package access

import (
	"context"
	"fmt"

	"github.com/angelamos/venturedesk/internal/core"
)

type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RolePortfolioCompany Role = "PORTFOLIO_COMPANY"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RolePortfolioCompany
}

// Identity is the decoded caller as established by the authenticator.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}

type Decision struct {
	Admit  bool
	Reason string
}

func admit() Decision {
	return Decision{Admit: true}
}

func deny(reason string) Decision {
	return Decision{Admit: false, Reason: reason}
}

// Decide is the admin-or-own-company rule. Admins are admitted
// unconditionally. A portfolio-company identity is admitted only when
// the company resolved through its founder matches the target.
// ownCompanyID is empty when the identity has no founder or the founder
// is not linked to a company.
func Decide(role Role, ownCompanyID, targetCompanyID string) Decision {
	switch role {
	case RoleAdmin:
		return admit()
	case RolePortfolioCompany:
		if ownCompanyID == "" {
			return deny("no company associated with caller")
		}
		if targetCompanyID == "" {
			return deny("no target company")
		}
		if ownCompanyID != targetCompanyID {
			return deny("company mismatch")
		}
		return admit()
	default:
		return deny(fmt.Sprintf("unknown role %q", role))
	}
}

// CompanyResolver maps a user to the company owned through its founder
// record. Implementations must return core.ErrNotFound wrapped errors
// when the user has no founder ("no associated founder") and an empty
// id when the founder exists but is not linked to a company.
type CompanyResolver interface {
	CompanyIDForUser(ctx context.Context, userID string) (string, error)
}

type Guard struct {
	resolver CompanyResolver
}

func NewGuard(resolver CompanyResolver) *Guard {
	return &Guard{resolver: resolver}
}

// RequireCompany returns nil when the identity may act on
// targetCompanyID, core.ErrForbidden otherwise. The founder-to-company
// lookup runs on every call; the result is never cached.
func (g *Guard) RequireCompany(
	ctx context.Context,
	identity Identity,
	targetCompanyID string,
) error {
	if identity.Role == RoleAdmin {
		return nil
	}

	ownCompanyID, err := g.resolver.CompanyIDForUser(ctx, identity.UserID)
	if err != nil {
		return fmt.Errorf("resolve caller company: %w", core.ErrForbidden)
	}

	decision := Decide(identity.Role, ownCompanyID, targetCompanyID)
	if !decision.Admit {
		return fmt.Errorf("%s: %w", decision.Reason, core.ErrForbidden)
	}

	return nil
}

// OwnCompanyID resolves the caller's own company. Used by the
// my-company endpoint, where the caller names no target.
func (g *Guard) OwnCompanyID(
	ctx context.Context,
	identity Identity,
) (string, error) {
	return g.resolver.CompanyIDForUser(ctx, identity.UserID)
}
