package mongo

import (
	"testing"
	"time"

	"github.com/estateops/crm-backend/internal/core/domain"
)

// The credential strategies depend on the auth fields surviving the document
// mapping: the local store reads PasswordHash, the delegated store resolves
// through AuthID. A dropped field here would silently break login.
func TestEmployeeDocMapping(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	emp := &domain.Employee{
		ID:           "emp_1",
		AuthID:       "ext-uuid-1",
		Username:     "jdoe",
		Email:        "jdoe@realestate.com",
		FullName:     "Jane Doe",
		PasswordHash: "$2a$10$hash",
		Role:         domain.RoleEmployee,
		Phone:        "555-0100",
		Department:   "sales",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	got := toEmployeeDoc(emp).toDomain()

	if *got != *emp {
		t.Fatalf("round trip altered the employee:\n got  %+v\n want %+v", got, emp)
	}
	if got.AuthID != "ext-uuid-1" {
		t.Fatalf("AuthID lost in mapping: %q", got.AuthID)
	}
	if got.PasswordHash != emp.PasswordHash {
		t.Fatalf("PasswordHash lost in mapping: %q", got.PasswordHash)
	}
}
