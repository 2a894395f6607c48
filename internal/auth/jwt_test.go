// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwk"

	"github.com/angelamos/venturedesk/internal/access"
	"github.com/angelamos/venturedesk/internal/config"
	"github.com/angelamos/venturedesk/internal/core"
)

func newTestManager(t *testing.T, cfg config.JWTConfig) *JWTManager {
	t.Helper()

	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	privateKey, err := jwk.Import(ecKey)
	if err != nil {
		t.Fatalf("import key: %v", err)
	}

	manager, err := NewJWTManagerFromKey(privateKey, cfg)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	return manager
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		AccessTokenExpire: 24 * time.Hour,
		Issuer:            "venturedesk",
		Audience:          "venturedesk-api",
	}
}

func TestCreateAndVerifyAccessToken(t *testing.T) {
	manager := newTestManager(t, testJWTConfig())

	identity := access.Identity{
		UserID: "user-1",
		Email:  "founder@example.com",
		Role:   access.RolePortfolioCompany,
	}

	token, err := manager.CreateAccessToken(identity)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	got, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}

	if got.UserID != identity.UserID {
		t.Fatalf("UserID = %q, want %q", got.UserID, identity.UserID)
	}
	if got.Email != identity.Email {
		t.Fatalf("Email = %q, want %q", got.Email, identity.Email)
	}
	if got.Role != identity.Role {
		t.Fatalf("Role = %q, want %q", got.Role, identity.Role)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenExpire = -time.Minute

	manager := newTestManager(t, cfg)

	token, err := manager.CreateAccessToken(access.Identity{
		UserID: "user-1",
		Email:  "founder@example.com",
		Role:   access.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	_, err = manager.Verify(token)
	if !errors.Is(err, core.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuing := newTestManager(t, testJWTConfig())
	verifying := newTestManager(t, testJWTConfig())

	token, err := issuing.CreateAccessToken(access.Identity{
		UserID: "user-1",
		Email:  "founder@example.com",
		Role:   access.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	_, err = verifying.Verify(token)
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Issuer = "someone-else"

	issuing := newTestManager(t, testJWTConfig())
	token, err := issuing.CreateAccessToken(access.Identity{
		UserID: "user-1",
		Email:  "founder@example.com",
		Role:   access.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	// Same key, different expected issuer.
	wrongIssuer, err := NewJWTManagerFromKey(issuing.privateKey, cfg)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	_, err = wrongIssuer.Verify(token)
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Audience = "some-other-api"

	issuing := newTestManager(t, testJWTConfig())
	token, err := issuing.CreateAccessToken(access.Identity{
		UserID: "user-1",
		Email:  "founder@example.com",
		Role:   access.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	// Same key, different expected audience.
	wrongAudience, err := NewJWTManagerFromKey(issuing.privateKey, cfg)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	_, err = wrongAudience.Verify(token)
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := newTestManager(t, testJWTConfig())

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := manager.Verify(token); !errors.Is(err, core.ErrTokenInvalid) {
			t.Fatalf("Verify(%q): expected ErrTokenInvalid, got %v", token, err)
		}
	}
}

func TestVerifyRejectsUnknownRole(t *testing.T) {
	manager := newTestManager(t, testJWTConfig())

	token, err := manager.CreateAccessToken(access.Identity{
		UserID: "user-1",
		Email:  "founder@example.com",
		Role:   access.Role("SUPERUSER"),
	})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	_, err = manager.Verify(token)
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for unknown role, got %v", err)
	}
}
