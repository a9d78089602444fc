package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// ValidRole reports whether role is one of the two supported roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}

// Employee models an authenticated actor in the system. ID is the opaque
// record identifier; AuthID is only populated under the delegated identity
// strategy and holds the external provider's subject identifier.
type Employee struct {
	ID           string    `json:"id"`
	AuthID       string    `json:"-"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Department   string    `json:"department,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the employee holds the administrator role.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// CanAccess reports whether the employee may act on a record assigned to
// ownerID. Admins may act on any record; everyone else only on their own.
func (e *Employee) CanAccess(ownerID string) bool {
	return e.IsAdmin() || (ownerID != "" && ownerID == e.ID)
}
