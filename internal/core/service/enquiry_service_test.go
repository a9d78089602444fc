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

type stubEnquiryRepo struct {
	enquiries map[string]*domain.Enquiry
	nextID    int
}

func newStubEnquiryRepo() *stubEnquiryRepo {
	return &stubEnquiryRepo{enquiries: make(map[string]*domain.Enquiry)}
}

func cloneEnquiry(e *domain.Enquiry) *domain.Enquiry {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEnquiryRepo) Create(_ context.Context, e *domain.Enquiry) (*domain.Enquiry, error) {
	r.nextID++
	copy := cloneEnquiry(e)
	copy.ID = fmt.Sprintf("enq_%d", r.nextID)
	r.enquiries[copy.ID] = cloneEnquiry(copy)
	return cloneEnquiry(copy), nil
}

func (r *stubEnquiryRepo) FindByID(_ context.Context, id string) (*domain.Enquiry, error) {
	if e, ok := r.enquiries[id]; ok {
		return cloneEnquiry(e), nil
	}
	return nil, domain.ErrEnquiryNotFound
}

func (r *stubEnquiryRepo) List(_ context.Context, filter ports.EnquiryFilter) ([]*domain.Enquiry, int64, error) {
	var out []*domain.Enquiry
	for _, e := range r.enquiries {
		if filter.AssignedEmployeeID != "" && e.AssignedEmployeeID != filter.AssignedEmployeeID {
			continue
		}
		out = append(out, cloneEnquiry(e))
	}
	return out, int64(len(out)), nil
}

func (r *stubEnquiryRepo) Update(_ context.Context, e *domain.Enquiry) error {
	if _, ok := r.enquiries[e.ID]; !ok {
		return domain.ErrEnquiryNotFound
	}
	r.enquiries[e.ID] = cloneEnquiry(e)
	return nil
}

func (r *stubEnquiryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.enquiries[id]; !ok {
		return domain.ErrEnquiryNotFound
	}
	delete(r.enquiries, id)
	return nil
}

func TestEnquiryService_Create_Defaults(t *testing.T) {
	svc := NewEnquiryService(newStubEnquiryRepo(), zerolog.Nop())

	enq, err := svc.Create(context.Background(), actorP1, &domain.Enquiry{Subject: "3BHK in Pune"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if enq.AssignedEmployeeID != actorP1.ID {
		t.Fatalf("creator must own the enquiry, got %q", enq.AssignedEmployeeID)
	}
	if enq.Status != domain.EnquiryOpen || enq.EnquiryType != domain.EnquiryGeneral {
		t.Fatalf("defaults not applied: %+v", enq)
	}
}

func TestEnquiryService_OwnershipOnUpdate(t *testing.T) {
	svc := NewEnquiryService(newStubEnquiryRepo(), zerolog.Nop())
	ctx := context.Background()

	enq, err := svc.Create(ctx, actorP1, &domain.Enquiry{Subject: "3BHK in Pune"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	resp := "Called back"
	if _, err := svc.Update(ctx, actorP2, enq.ID, ports.EnquiryUpdate{Response: &resp}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	updated, err := svc.Update(ctx, actorAdmin, enq.ID, ports.EnquiryUpdate{Response: &resp})
	if err != nil {
		t.Fatalf("admin update returned error: %v", err)
	}
	if updated.Response != resp {
		t.Fatalf("response not applied: %+v", updated)
	}
}

func TestEnquiryService_List_ScopesNonAdmins(t *testing.T) {
	svc := NewEnquiryService(newStubEnquiryRepo(), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, actorP1, &domain.Enquiry{Subject: "one"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(ctx, actorP2, &domain.Enquiry{Subject: "two"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	mine, total, err := svc.List(ctx, actorP2, ports.EnquiryFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 1 || len(mine) != 1 || mine[0].AssignedEmployeeID != actorP2.ID {
		t.Fatalf("P2 must only see own enquiries: total=%d", total)
	}
}
