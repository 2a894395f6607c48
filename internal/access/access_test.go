// AngelaMos | 2026
// access_test.go

package access

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/angelamos/venturedesk/internal/core"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		role      Role
		ownID     string
		targetID  string
		wantAdmit bool
	}{
		{
			name:      "admin is admitted to any company",
			role:      RoleAdmin,
			ownID:     "",
			targetID:  "company-a",
			wantAdmit: true,
		},
		{
			name:      "admin is admitted with no target",
			role:      RoleAdmin,
			ownID:     "",
			targetID:  "",
			wantAdmit: true,
		},
		{
			name:      "portfolio company admitted to own company",
			role:      RolePortfolioCompany,
			ownID:     "company-a",
			targetID:  "company-a",
			wantAdmit: true,
		},
		{
			name:      "portfolio company denied on other company",
			role:      RolePortfolioCompany,
			ownID:     "company-a",
			targetID:  "company-b",
			wantAdmit: false,
		},
		{
			name:      "portfolio company denied without own company",
			role:      RolePortfolioCompany,
			ownID:     "",
			targetID:  "company-a",
			wantAdmit: false,
		},
		{
			name:      "portfolio company denied without target",
			role:      RolePortfolioCompany,
			ownID:     "company-a",
			targetID:  "",
			wantAdmit: false,
		},
		{
			name:      "unknown role is denied",
			role:      Role("SUPERUSER"),
			ownID:     "company-a",
			targetID:  "company-a",
			wantAdmit: false,
		},
		{
			name:      "empty role is denied",
			role:      Role(""),
			ownID:     "company-a",
			targetID:  "company-a",
			wantAdmit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.role, tt.ownID, tt.targetID)
			if got.Admit != tt.wantAdmit {
				t.Fatalf("Decide(%q, %q, %q).Admit = %v, want %v (reason: %q)",
					tt.role, tt.ownID, tt.targetID, got.Admit, tt.wantAdmit, got.Reason)
			}
			if !got.Admit && got.Reason == "" {
				t.Fatalf("denial must carry a reason")
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || !RolePortfolioCompany.Valid() {
		t.Fatalf("built-in roles must be valid")
	}
	if Role("admin").Valid() {
		t.Fatalf("role comparison must be case-sensitive")
	}
	if Role("").Valid() {
		t.Fatalf("empty role must be invalid")
	}
}

// ---------------------------------------------------------------------------
// Guard with a stub resolver
// ---------------------------------------------------------------------------

type stubResolver struct {
	companyByUser map[string]string
	err           error
	calls         int
}

func (r *stubResolver) CompanyIDForUser(
	_ context.Context,
	userID string,
) (string, error) {
	r.calls++
	if r.err != nil {
		return "", r.err
	}
	return r.companyByUser[userID], nil
}

func TestGuardRequireCompany(t *testing.T) {
	resolver := &stubResolver{
		companyByUser: map[string]string{"user-1": "company-a"},
	}
	guard := NewGuard(resolver)

	admin := Identity{UserID: "admin-1", Role: RoleAdmin}
	member := Identity{UserID: "user-1", Role: RolePortfolioCompany}

	if err := guard.RequireCompany(context.Background(), admin, "company-b"); err != nil {
		t.Fatalf("admin must be admitted: %v", err)
	}
	if resolver.calls != 0 {
		t.Fatalf("admin path must not hit the resolver, got %d calls", resolver.calls)
	}

	if err := guard.RequireCompany(context.Background(), member, "company-a"); err != nil {
		t.Fatalf("own company must be admitted: %v", err)
	}

	err := guard.RequireCompany(context.Background(), member, "company-b")
	if !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("foreign company must be forbidden, got %v", err)
	}
}

func TestGuardResolvesOnEveryCall(t *testing.T) {
	resolver := &stubResolver{
		companyByUser: map[string]string{"user-1": "company-a"},
	}
	guard := NewGuard(resolver)
	member := Identity{UserID: "user-1", Role: RolePortfolioCompany}

	for i := 0; i < 3; i++ {
		if err := guard.RequireCompany(context.Background(), member, "company-a"); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	if resolver.calls != 3 {
		t.Fatalf("expected 3 resolver calls, got %d", resolver.calls)
	}

	// Revoking the founder link must take effect immediately.
	resolver.companyByUser["user-1"] = ""
	if err := guard.RequireCompany(context.Background(), member, "company-a"); err == nil {
		t.Fatalf("revoked link must deny access")
	}
}

func TestGuardResolverFailureDenies(t *testing.T) {
	resolver := &stubResolver{
		err: fmt.Errorf("lookup: %w", core.ErrNotFound),
	}
	guard := NewGuard(resolver)
	member := Identity{UserID: "user-1", Role: RolePortfolioCompany}

	err := guard.RequireCompany(context.Background(), member, "company-a")
	if !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("resolver failure must map to forbidden, got %v", err)
	}
}
