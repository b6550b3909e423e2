package user

import (
	"fmt"
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// UserStatus represents the status of a system user
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusArchived  UserStatus = "ARCHIVED"
)

// Usuario is a staff member of the platform (administrator, coordinator or
// analista). Permissions come from the assigned Perfil.
type Usuario struct {
	ID           kernel.UserID   `db:"id" json:"id"`
	Email        kernel.Email    `db:"email" json:"email"`
	FirstName    kernel.FirstName `db:"first_name" json:"first_name"`
	LastName     kernel.LastName `db:"last_name" json:"last_name"`
	PasswordHash string          `db:"password_hash" json:"-"`
	PerfilID     kernel.PerfilID `db:"perfil_id" json:"perfil_id"`
	Status       UserStatus      `db:"status" json:"status"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// Perfil is a named permission profile granting a set of scopes.
type Perfil struct {
	ID          kernel.PerfilID `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Scopes      []string        `db:"-" json:"scopes"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the user can log in and operate.
func (u *Usuario) IsActive() bool {
	return u.Status == UserStatusActive
}

// GetFullName returns the user's full name.
func (u *Usuario) GetFullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// Suspend marks the user as suspended.
func (u *Usuario) Suspend() {
	u.Status = UserStatusSuspended
	u.UpdatedAt = time.Now()
}

// Activate marks the user as active.
func (u *Usuario) Activate() {
	u.Status = UserStatusActive
	u.UpdatedAt = time.Now()
}

// HasScope reports whether the profile grants the required scope, given the
// resolved scope list.
func (p *Perfil) HasScope(required string) bool {
	for _, granted := range p.Scopes {
		if kernel.ScopeMatches(granted, required) {
			return true
		}
	}
	return false
}

// GrantsReview reports whether the perfil can own solicitudes as analista.
func (p *Perfil) GrantsReview() bool {
	return p.HasScope(kernel.ScopeSolicitudesWrite)
}
