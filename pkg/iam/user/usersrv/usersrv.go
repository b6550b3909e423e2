package usersrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vinculohr/vinculo/pkg/errx"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/iam/user"
	"github.com/vinculohr/vinculo/pkg/kernel"
)

// UserService provides business operations for usuarios and perfiles
type UserService struct {
	userRepo    user.Repository
	perfilRepo  user.PerfilRepository
	passwordSvc auth.PasswordService
}

// NewUserService creates a new instance of the user service
func NewUserService(userRepo user.Repository, perfilRepo user.PerfilRepository, passwordSvc auth.PasswordService) *UserService {
	return &UserService{
		userRepo:    userRepo,
		perfilRepo:  perfilRepo,
		passwordSvc: passwordSvc,
	}
}

// CreateUserRequest - DTO for creating a usuario
type CreateUserRequest struct {
	Email     kernel.Email     `json:"email" validate:"required"`
	FirstName kernel.FirstName `json:"first_name" validate:"required"`
	LastName  kernel.LastName  `json:"last_name" validate:"required"`
	Password  string           `json:"password" validate:"required"`
	PerfilID  kernel.PerfilID  `json:"perfil_id" validate:"required"`
}

// UpdateUserRequest - DTO for updating a usuario
type UpdateUserRequest struct {
	FirstName *kernel.FirstName `json:"first_name,omitempty"`
	LastName  *kernel.LastName  `json:"last_name,omitempty"`
	PerfilID  *kernel.PerfilID  `json:"perfil_id,omitempty"`
}

// CreateUser registers a new staff usuario with a hashed password.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*user.Usuario, error) {
	if req.Email.IsEmpty() {
		return nil, user.ErrInvalidRequest().WithDetail("email", "required")
	}
	if len(req.Password) < 8 {
		return nil, user.ErrWeakPassword().WithDetail("min_length", 8)
	}

	if _, err := s.perfilRepo.GetByID(ctx, req.PerfilID); err != nil {
		return nil, err
	}

	hash, err := s.passwordSvc.Hash(req.Password)
	if err != nil {
		return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	now := time.Now()
	usuario := &user.Usuario{
		ID:           kernel.NewUserID(uuid.NewString()),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		PerfilID:     req.PerfilID,
		Status:       user.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, usuario); err != nil {
		return nil, err
	}

	return usuario, nil
}

// UpdateUser updates usuario data and perfil assignment.
func (s *UserService) UpdateUser(ctx context.Context, id kernel.UserID, req UpdateUserRequest) (*user.Usuario, error) {
	usuario, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		usuario.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		usuario.LastName = *req.LastName
	}
	if req.PerfilID != nil {
		if _, err := s.perfilRepo.GetByID(ctx, *req.PerfilID); err != nil {
			return nil, err
		}
		usuario.PerfilID = *req.PerfilID
	}
	usuario.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, id, usuario); err != nil {
		return nil, err
	}

	return usuario, nil
}

// GetUser retrieves a usuario by ID.
func (s *UserService) GetUser(ctx context.Context, id kernel.UserID) (*user.Usuario, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves usuarios with pagination.
func (s *UserService) ListUsers(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[user.Usuario], error) {
	return s.userRepo.List(ctx, pagination)
}

// SuspendUser marks a usuario as suspended.
func (s *UserService) SuspendUser(ctx context.Context, id kernel.UserID) error {
	usuario, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	usuario.Suspend()
	return s.userRepo.Update(ctx, id, usuario)
}

// ActivateUser marks a usuario as active.
func (s *UserService) ActivateUser(ctx context.Context, id kernel.UserID) error {
	usuario, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	usuario.Activate()
	return s.userRepo.Update(ctx, id, usuario)
}

// ResolveScopes returns the scope list granted by the usuario's perfil.
func (s *UserService) ResolveScopes(ctx context.Context, usuario *user.Usuario) ([]string, error) {
	perfil, err := s.perfilRepo.GetByID(ctx, usuario.PerfilID)
	if err != nil {
		return nil, err
	}
	return perfil.Scopes, nil
}

// ValidateAnalista verifies the usuario exists, is active, and holds a perfil
// allowed to own solicitudes.
func (s *UserService) ValidateAnalista(ctx context.Context, id kernel.UserID) (*user.Usuario, error) {
	usuario, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !usuario.IsActive() {
		return nil, user.ErrUserSuspended().WithDetail("user_id", id.String())
	}

	perfil, err := s.perfilRepo.GetByID(ctx, usuario.PerfilID)
	if err != nil {
		return nil, err
	}
	if !perfil.GrantsReview() {
		return nil, user.ErrNotAnalista().WithDetail("perfil", perfil.Name)
	}

	return usuario, nil
}

// CreatePerfil registers a new permission profile.
func (s *UserService) CreatePerfil(ctx context.Context, name, description string, scopes []string) (*user.Perfil, error) {
	if name == "" {
		return nil, user.ErrInvalidRequest().WithDetail("name", "required")
	}

	now := time.Now()
	perfil := &user.Perfil{
		ID:          kernel.NewPerfilID(uuid.NewString()),
		Name:        name,
		Description: description,
		Scopes:      scopes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.perfilRepo.Create(ctx, perfil); err != nil {
		return nil, err
	}

	return perfil, nil
}

// ListPerfiles retrieves all perfiles.
func (s *UserService) ListPerfiles(ctx context.Context) ([]user.Perfil, error) {
	return s.perfilRepo.List(ctx)
}

// UpdatePerfil updates a perfil and its scope grants.
func (s *UserService) UpdatePerfil(ctx context.Context, id kernel.PerfilID, name, description string, scopes []string) (*user.Perfil, error) {
	perfil, err := s.perfilRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		perfil.Name = name
	}
	perfil.Description = description
	perfil.Scopes = scopes
	perfil.UpdatedAt = time.Now()

	if err := s.perfilRepo.Update(ctx, id, perfil); err != nil {
		return nil, err
	}

	return perfil, nil
}

// DeletePerfil removes an unused perfil.
func (s *UserService) DeletePerfil(ctx context.Context, id kernel.PerfilID) error {
	return s.perfilRepo.Delete(ctx, id)
}
