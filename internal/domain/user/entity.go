package user

import "time"

type Role string

const (
	RoleContractor Role = "CONTRACTOR"
	RoleLabour     Role = "LABOUR"
)

// IsValid reports whether the role is one the app knows about.
func (r Role) IsValid() bool {
	return r == RoleContractor || r == RoleLabour
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Phone        string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
