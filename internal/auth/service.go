// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angelamos/venturedesk/internal/access"
	"github.com/angelamos/venturedesk/internal/core"
	"github.com/angelamos/venturedesk/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

type Service struct {
	users user.Repository
	jwt   *JWTManager
}

func NewService(users user.Repository, jwt *JWTManager) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&u.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		// Transparent parameter upgrade. Login already succeeded, so a
		// failed write just means the next login rehashes again.
		//nolint:errcheck
		_ = s.users.UpdatePassword(ctx, u.ID, newHash)
	}

	return s.issueTokens(u)
}

// Register creates a credential record. The route is admin-gated; the
// service only enforces shape.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	role := access.Role(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf(
			"register: invalid role %q: %w",
			req.Role,
			core.ErrInvalidInput,
		)
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(req.Email),
		PasswordHash: passwordHash,
		Role:         role,
		FounderID:    req.FounderID,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issueTokens(u)
}

// VerifyAccessToken satisfies middleware.TokenVerifier: it checks the
// token cryptographically, then resolves the subject against the users
// table so a token surviving its owner is rejected.
func (s *Service) VerifyAccessToken(
	ctx context.Context,
	tokenString string,
) (*access.Identity, error) {
	identity, err := s.jwt.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, identity.UserID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf(
				"verify token: user no longer exists: %w",
				core.ErrTokenInvalid,
			)
		}
		return nil, fmt.Errorf("verify token: %w", err)
	}

	return identity, nil
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	userID string,
) (*UserResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		FounderID: u.FounderID,
	}, nil
}

func (s *Service) issueTokens(u *user.User) (*AuthResponse, error) {
	identity := access.Identity{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	}

	accessToken, err := s.jwt.CreateAccessToken(identity)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	ttl := s.jwt.AccessTokenTTL()

	return &AuthResponse{
		User: UserResponse{
			ID:        u.ID,
			Email:     u.Email,
			Role:      string(u.Role),
			FounderID: u.FounderID,
		},
		Tokens: TokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   int(ttl / time.Second),
			ExpiresAt:   time.Now().Add(ttl),
		},
	}, nil
}
