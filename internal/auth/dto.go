// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// RegisterRequest creates a credential record. Admin-only; there is no
// self-signup. A PORTFOLIO_COMPANY account should carry the founder id
// that anchors it to its company.
type RegisterRequest struct {
	Email     string  `json:"email"     validate:"required,email,max=255"`
	Password  string  `json:"password"  validate:"required,min=8,max=128"`
	Role      string  `json:"role"      validate:"required,oneof=ADMIN PORTFOLIO_COMPANY"`
	FounderID *string `json:"founderId" validate:"omitempty,uuid"`
}

type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresIn   int       `json:"expiresIn"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FounderID *string `json:"founderId,omitempty"`
}

type AuthResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}
