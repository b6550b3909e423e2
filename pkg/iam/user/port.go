package user

import (
	"context"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

type Repository interface {
	// Create creates a new usuario
	Create(ctx context.Context, usuario *Usuario) error

	// Update updates an existing usuario
	Update(ctx context.Context, id kernel.UserID, usuario *Usuario) error

	// GetByID retrieves a usuario by ID
	GetByID(ctx context.Context, id kernel.UserID) (*Usuario, error)

	// GetByEmail retrieves a usuario by email
	GetByEmail(ctx context.Context, email kernel.Email) (*Usuario, error)

	// List retrieves usuarios with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Usuario], error)

	// Exists checks if a usuario exists by ID
	Exists(ctx context.Context, id kernel.UserID) (bool, error)

	// UpdatePassword replaces the stored password hash
	UpdatePassword(ctx context.Context, id kernel.UserID, passwordHash string) error
}

type PerfilRepository interface {
	// Create creates a new perfil
	Create(ctx context.Context, perfil *Perfil) error

	// Update updates an existing perfil and its scopes
	Update(ctx context.Context, id kernel.PerfilID, perfil *Perfil) error

	// GetByID retrieves a perfil with its scopes
	GetByID(ctx context.Context, id kernel.PerfilID) (*Perfil, error)

	// List retrieves all perfiles with their scopes
	List(ctx context.Context) ([]Perfil, error)

	// Delete removes a perfil; fails if any usuario references it
	Delete(ctx context.Context, id kernel.PerfilID) error
}
