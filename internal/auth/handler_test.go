// AngelaMos | 2026
// handler_test.go

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/venturedesk/internal/access"
	"github.com/angelamos/venturedesk/internal/middleware"
)

func testRouter(t *testing.T) (*chi.Mux, *stubUserRepo) {
	t.Helper()

	svc, repo := newTestService(t)
	handler := NewHandler(svc)

	router := chi.NewRouter()
	handler.RegisterRoutes(
		router,
		middleware.Authenticator(svc),
		middleware.RequireAdmin,
	)
	return router, repo
}

func postJSON(router *chi.Mux, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint(t *testing.T) {
	router, repo := testRouter(t)
	seedUser(t, repo, "admin@fund.vc", "correct-horse-battery", access.RoleAdmin)

	t.Run("success", func(t *testing.T) {
		rec := postJSON(router, "/auth/login",
			`{"email":"admin@fund.vc","password":"correct-horse-battery"}`, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}

		var resp AuthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Tokens.AccessToken == "" {
			t.Fatalf("expected an access token")
		}
		if resp.Tokens.TokenType != "Bearer" {
			t.Fatalf("TokenType = %q", resp.Tokens.TokenType)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := postJSON(router, "/auth/login",
			`{"email":"admin@fund.vc","password":"wrong-password-here"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}

		var resp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Message != "Invalid credentials" {
			t.Fatalf("message = %q, want %q", resp.Message, "Invalid credentials")
		}
	})

	t.Run("unknown email uses the same message", func(t *testing.T) {
		rec := postJSON(router, "/auth/login",
			`{"email":"nobody@fund.vc","password":"whatever-password"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Invalid credentials") {
			t.Fatalf("body = %s", rec.Body.String())
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		rec := postJSON(router, "/auth/login",
			`{"email":"not-an-email","password":"short"}`, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestRegisterEndpointIsAdminGated(t *testing.T) {
	router, repo := testRouter(t)
	seedUser(t, repo, "admin@fund.vc", "correct-horse-battery", access.RoleAdmin)
	seedUser(t, repo, "founder@a.io", "correct-horse-battery", access.RolePortfolioCompany)

	login := func(email string) string {
		rec := postJSON(router, "/auth/login",
			`{"email":"`+email+`","password":"correct-horse-battery"}`, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("login %s: status = %d", email, rec.Code)
		}
		var resp AuthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return resp.Tokens.AccessToken
	}

	body := `{"email":"new@fund.vc","password":"a-long-enough-password","role":"ADMIN"}`

	t.Run("anonymous", func(t *testing.T) {
		if rec := postJSON(router, "/auth/register", body, ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("portfolio company", func(t *testing.T) {
		token := login("founder@a.io")
		if rec := postJSON(router, "/auth/register", body, token); rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("admin", func(t *testing.T) {
		token := login("admin@fund.vc")
		if rec := postJSON(router, "/auth/register", body, token); rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		token := login("admin@fund.vc")
		if rec := postJSON(router, "/auth/register", body, token); rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", rec.Code)
		}
	})
}
