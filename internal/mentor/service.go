// AngelaMos | 2026
// service.go

package mentor

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	mentors Repository
}

func NewService(mentors Repository) *Service {
	return &Service{mentors: mentors}
}

func (s *Service) List(ctx context.Context) ([]MentorResponse, error) {
	mentors, err := s.mentors.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]MentorResponse, 0, len(mentors))
	for i := range mentors {
		responses = append(responses, toMentorResponse(&mentors[i]))
	}

	return responses, nil
}

func (s *Service) Get(ctx context.Context, id string) (*MentorResponse, error) {
	m, err := s.mentors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toMentorResponse(m)
	return &resp, nil
}

func (s *Service) Create(
	ctx context.Context,
	req CreateMentorRequest,
) (*MentorResponse, error) {
	m := &Mentor{
		ID:          uuid.New().String(),
		Name:        req.Name,
		HeadshotURL: req.HeadshotURL,
		Phone:       req.Phone,
		LinkedInURL: req.LinkedInURL,
		Description: req.Description,
	}

	if err := s.mentors.Create(ctx, m); err != nil {
		return nil, err
	}

	resp := toMentorResponse(m)
	return &resp, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateMentorRequest,
) (*MentorResponse, error) {
	m, err := s.mentors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.HeadshotURL != nil {
		m.HeadshotURL = *req.HeadshotURL
	}
	if req.Phone != nil {
		m.Phone = *req.Phone
	}
	if req.LinkedInURL != nil {
		m.LinkedInURL = *req.LinkedInURL
	}
	if req.Description != nil {
		m.Description = *req.Description
	}

	if err := s.mentors.Update(ctx, m); err != nil {
		return nil, err
	}

	resp := toMentorResponse(m)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.mentors.Delete(ctx, id)
}
