package domain

import "time"

// UserRole enumerates the fixed roles a user can hold within a tenant.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleAgent    UserRole = "agent"
	RoleCustomer UserRole = "customer"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleCustomer:
		return true
	}
	return false
}

// IsStaff reports whether the role may perform staff-only actions such as
// raising escalations or logging communications.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleAgent
}

// User belongs to a tenant and acts as customer, agent or admin.
type User struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
