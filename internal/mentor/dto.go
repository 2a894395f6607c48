// AngelaMos | 2026
// dto.go

package mentor

import "time"

type CreateMentorRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=255"`
	HeadshotURL string `json:"headshotUrl" validate:"omitempty,url,max=512"`
	Phone       string `json:"phone"       validate:"omitempty,max=32"`
	LinkedInURL string `json:"linkedinUrl" validate:"omitempty,url,max=255"`
	Description string `json:"description" validate:"omitempty,max=4096"`
}

type UpdateMentorRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=255"`
	HeadshotURL *string `json:"headshotUrl" validate:"omitempty,url,max=512"`
	Phone       *string `json:"phone"       validate:"omitempty,max=32"`
	LinkedInURL *string `json:"linkedinUrl" validate:"omitempty,url,max=255"`
	Description *string `json:"description" validate:"omitempty,max=4096"`
}

type MentorResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	HeadshotURL string    `json:"headshotUrl,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	LinkedInURL string    `json:"linkedinUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MentorListResponse struct {
	Mentors []MentorResponse `json:"mentors"`
}

func toMentorResponse(m *Mentor) MentorResponse {
	return MentorResponse{
		ID:          m.ID,
		Name:        m.Name,
		HeadshotURL: m.HeadshotURL,
		Phone:       m.Phone,
		LinkedInURL: m.LinkedInURL,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
