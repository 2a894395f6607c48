// AngelaMos | 2026
// entity.go

// Package mentor manages the brain trust: advisors and operators the
// firm makes available to its portfolio companies.
package mentor

import "time"

type Mentor struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	HeadshotURL string    `db:"headshot_url"`
	Phone       string    `db:"phone"`
	LinkedInURL string    `db:"linkedin_url"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
