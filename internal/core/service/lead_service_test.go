package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

type stubLeadRepo struct {
	leads  map[string]*domain.Lead
	nextID int
}

func newStubLeadRepo() *stubLeadRepo {
	return &stubLeadRepo{leads: make(map[string]*domain.Lead)}
}

func cloneLead(l *domain.Lead) *domain.Lead {
	if l == nil {
		return nil
	}
	clone := *l
	return &clone
}

func (r *stubLeadRepo) Create(_ context.Context, l *domain.Lead) (*domain.Lead, error) {
	r.nextID++
	copy := cloneLead(l)
	copy.ID = fmt.Sprintf("lead_%d", r.nextID)
	r.leads[copy.ID] = cloneLead(copy)
	return cloneLead(copy), nil
}

func (r *stubLeadRepo) FindByID(_ context.Context, id string) (*domain.Lead, error) {
	if l, ok := r.leads[id]; ok {
		return cloneLead(l), nil
	}
	return nil, domain.ErrLeadNotFound
}

func (r *stubLeadRepo) List(_ context.Context, filter ports.LeadFilter) ([]*domain.Lead, int64, error) {
	var out []*domain.Lead
	for _, l := range r.leads {
		if filter.AssignedEmployeeID != "" && l.AssignedEmployeeID != filter.AssignedEmployeeID {
			continue
		}
		if filter.Status != "" && string(l.Status) != filter.Status {
			continue
		}
		out = append(out, cloneLead(l))
	}
	return out, int64(len(out)), nil
}

func (r *stubLeadRepo) Update(_ context.Context, l *domain.Lead) error {
	if _, ok := r.leads[l.ID]; !ok {
		return domain.ErrLeadNotFound
	}
	r.leads[l.ID] = cloneLead(l)
	return nil
}

func (r *stubLeadRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.leads[id]; !ok {
		return domain.ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

var (
	actorP1    = &domain.Employee{ID: "emp_1", Role: domain.RoleEmployee, IsActive: true}
	actorP2    = &domain.Employee{ID: "emp_2", Role: domain.RoleEmployee, IsActive: true}
	actorAdmin = &domain.Employee{ID: "emp_9", Role: domain.RoleAdmin, IsActive: true}
)

func seedLead(t *testing.T, svc *LeadService, owner *domain.Employee) *domain.Lead {
	t.Helper()
	lead, err := svc.Create(context.Background(), owner, &domain.Lead{Name: "Acme"})
	if err != nil {
		t.Fatalf("seed lead: %v", err)
	}
	return lead
}

func TestLeadService_Create_AutoAssignsOwner(t *testing.T) {
	svc := NewLeadService(newStubLeadRepo(), zerolog.Nop())

	lead := seedLead(t, svc, actorP1)
	if lead.AssignedEmployeeID != actorP1.ID {
		t.Fatalf("creator must own the lead, got %q", lead.AssignedEmployeeID)
	}
	if lead.Status != domain.LeadNew || lead.Source != domain.SourceWebsite {
		t.Fatalf("defaults not applied: %+v", lead)
	}
	if !lead.IsActive || lead.CreatedAt.IsZero() {
		t.Fatalf("lifecycle fields not set: %+v", lead)
	}
}

func TestLeadService_OwnershipMatrix(t *testing.T) {
	// P1 owns the lead. P1 and the admin may read, update, and delete it;
	// P2 is rejected on all three.
	ops := []struct {
		name string
		run  func(svc *LeadService, actor *domain.Employee, id string) error
	}{
		{"get", func(svc *LeadService, actor *domain.Employee, id string) error {
			_, err := svc.Get(context.Background(), actor, id)
			return err
		}},
		{"update", func(svc *LeadService, actor *domain.Employee, id string) error {
			name := "Updated"
			_, err := svc.Update(context.Background(), actor, id, ports.LeadUpdate{Name: &name})
			return err
		}},
		{"delete", func(svc *LeadService, actor *domain.Employee, id string) error {
			return svc.Delete(context.Background(), actor, id)
		}},
	}

	for _, op := range ops {
		for actorName, tc := range map[string]struct {
			actor   *domain.Employee
			allowed bool
		}{
			"owner":    {actorP1, true},
			"stranger": {actorP2, false},
			"admin":    {actorAdmin, true},
		} {
			svc := NewLeadService(newStubLeadRepo(), zerolog.Nop())
			lead := seedLead(t, svc, actorP1)

			err := op.run(svc, tc.actor, lead.ID)
			if tc.allowed && err != nil {
				t.Fatalf("%s by %s: unexpected error %v", op.name, actorName, err)
			}
			if !tc.allowed && !errors.Is(err, domain.ErrForbidden) {
				t.Fatalf("%s by %s: expected ErrForbidden, got %v", op.name, actorName, err)
			}
		}
	}
}

func TestLeadService_List_ScopesNonAdmins(t *testing.T) {
	repo := newStubLeadRepo()
	svc := NewLeadService(repo, zerolog.Nop())

	seedLead(t, svc, actorP1)
	seedLead(t, svc, actorP1)
	seedLead(t, svc, actorP2)

	mine, total, err := svc.List(context.Background(), actorP1, ports.LeadFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 2 || len(mine) != 2 {
		t.Fatalf("P1 must only see own leads, got %d", len(mine))
	}
	for _, l := range mine {
		if l.AssignedEmployeeID != actorP1.ID {
			t.Fatalf("foreign lead leaked into P1's list: %+v", l)
		}
	}

	all, total, err := svc.List(context.Background(), actorAdmin, ports.LeadFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("admin must see every lead, got %d", len(all))
	}
}

func TestLeadService_NotFound(t *testing.T) {
	svc := NewLeadService(newStubLeadRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), actorAdmin, "missing"); !errors.Is(err, domain.ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}
