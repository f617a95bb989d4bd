package domain

import (
	"time"
)

// Actor is the resolved caller of an operation, as produced by the auth
// middleware. It carries no session mechanics, only identity and role.
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// IsAdmin reports whether the actor holds administrative privilege.
func (a Actor) IsAdmin() bool {
	return a.Role == "admin" || a.Role == "superadmin"
}

// AdminUser represents a back-office user allowed to adjust stock
type AdminUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
