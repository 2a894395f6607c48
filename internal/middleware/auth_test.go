// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/venturedesk/internal/access"
	"github.com/angelamos/venturedesk/internal/core"
)

type stubVerifier struct {
	identities map[string]*access.Identity
}

func (v *stubVerifier) VerifyAccessToken(
	_ context.Context,
	token string,
) (*access.Identity, error) {
	identity, ok := v.identities[token]
	if !ok {
		return nil, fmt.Errorf("verify: %w", core.ErrTokenInvalid)
	}
	return identity, nil
}

type stubResolver struct {
	companyByUser map[string]string
}

func (r *stubResolver) CompanyIDForUser(
	_ context.Context,
	userID string,
) (string, error) {
	id, ok := r.companyByUser[userID]
	if !ok {
		return "", fmt.Errorf("resolve: %w", core.ErrNotFound)
	}
	return id, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticator(t *testing.T) {
	verifier := &stubVerifier{
		identities: map[string]*access.Identity{
			"good-token": {
				UserID: "user-1",
				Email:  "founder@example.com",
				Role:   access.RolePortfolioCompany,
			},
		},
	}

	var captured *access.Identity
	handler := Authenticator(verifier)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			captured = GetIdentity(r.Context())
			w.WriteHeader(http.StatusOK)
		},
	))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "good-token", http.StatusUnauthorized},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized},
		{"bad token", "Bearer bad-token", http.StatusUnauthorized},
		{"valid token", "Bearer good-token", http.StatusOK},
		{"case-insensitive scheme", "bearer good-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured = nil

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				if captured == nil || captured.UserID != "user-1" {
					t.Fatalf("identity not propagated: %+v", captured)
				}
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(okHandler())

	t.Run("no identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("portfolio company", func(t *testing.T) {
		identity := &access.Identity{UserID: "user-1", Role: access.RolePortfolioCompany}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(
			context.WithValue(req.Context(), IdentityKey, identity),
		)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("admin", func(t *testing.T) {
		identity := &access.Identity{UserID: "admin-1", Role: access.RoleAdmin}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(
			context.WithValue(req.Context(), IdentityKey, identity),
		)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})
}

func TestRequireAdminOrOwnCompany(t *testing.T) {
	guard := access.NewGuard(&stubResolver{
		companyByUser: map[string]string{"user-1": "company-a"},
	})

	router := chi.NewRouter()
	router.With(RequireAdminOrOwnCompany(guard)).
		Get("/companies/{companyID}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

	do := func(identity *access.Identity, companyID string) int {
		req := httptest.NewRequest(http.MethodGet, "/companies/"+companyID, nil)
		if identity != nil {
			req = req.WithContext(
				context.WithValue(req.Context(), IdentityKey, identity),
			)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	admin := &access.Identity{UserID: "admin-1", Role: access.RoleAdmin}
	member := &access.Identity{UserID: "user-1", Role: access.RolePortfolioCompany}
	orphan := &access.Identity{UserID: "user-2", Role: access.RolePortfolioCompany}

	if code := do(nil, "company-a"); code != http.StatusUnauthorized {
		t.Fatalf("anonymous: status = %d, want 401", code)
	}
	if code := do(admin, "company-b"); code != http.StatusOK {
		t.Fatalf("admin: status = %d, want 200", code)
	}
	if code := do(member, "company-a"); code != http.StatusOK {
		t.Fatalf("own company: status = %d, want 200", code)
	}
	if code := do(member, "company-b"); code != http.StatusForbidden {
		t.Fatalf("foreign company: status = %d, want 403", code)
	}
	if code := do(orphan, "company-a"); code != http.StatusForbidden {
		t.Fatalf("no founder: status = %d, want 403", code)
	}
}
