// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/angelamos/venturedesk/internal/access"
)

// User is a login credential record. Accounts are created by admins
// through registration only; there is no self-signup. A
// PORTFOLIO_COMPANY user resolves "my company" through its founder
// reference.
type User struct {
	ID           string      `db:"id"`
	Email        string      `db:"email"`
	PasswordHash string      `db:"password_hash"`
	Role         access.Role `db:"role"`
	FounderID    *string     `db:"founder_id"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == access.RoleAdmin
}
