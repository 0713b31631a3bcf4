package domain

import "time"

// Admin roles. No permission differences are enforced between them.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleEditor  = "editor"
)

// AdminUser is a back-office operator record. The login credential is a
// single global password stored separately from these records.
type AdminUser struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (u *AdminUser) GetID() string   { return u.ID }
func (u *AdminUser) SetID(id string) { u.ID = id }
