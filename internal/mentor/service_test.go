// AngelaMos | 2026
// service_test.go

package mentor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/angelamos/venturedesk/internal/core"
)

type stubRepo struct {
	mentors []*Mentor
}

func (r *stubRepo) List(_ context.Context) ([]Mentor, error) {
	out := make([]Mentor, 0, len(r.mentors))
	for _, m := range r.mentors {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*Mentor, error) {
	for _, m := range r.mentors {
		if m.ID == id {
			clone := *m
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("get mentor: %w", core.ErrNotFound)
}

func (r *stubRepo) Create(_ context.Context, m *Mentor) error {
	clone := *m
	r.mentors = append(r.mentors, &clone)
	return nil
}

func (r *stubRepo) Update(_ context.Context, m *Mentor) error {
	for i, existing := range r.mentors {
		if existing.ID == m.ID {
			clone := *m
			r.mentors[i] = &clone
			return nil
		}
	}
	return fmt.Errorf("update mentor: %w", core.ErrNotFound)
}

func (r *stubRepo) Delete(_ context.Context, id string) error {
	for i, m := range r.mentors {
		if m.ID == id {
			r.mentors = append(r.mentors[:i], r.mentors[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete mentor: %w", core.ErrNotFound)
}

func TestMentorLifecycle(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateMentorRequest{
		Name:        "Dana Whitfield",
		Description: "Three-time hardware founder, supply chain operator.",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}

	newPhone := "+1-555-0100"
	updated, err := svc.Update(context.Background(), created.ID, UpdateMentorRequest{
		Phone: &newPhone,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone != newPhone {
		t.Fatalf("Phone = %q, want %q", updated.Phone, newPhone)
	}
	if updated.Name != "Dana Whitfield" {
		t.Fatalf("untouched field changed: Name = %q", updated.Name)
	}

	mentors, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mentors) != 1 {
		t.Fatalf("list = %d mentors, want 1", len(mentors))
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
