package empresasrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vinculohr/vinculo/pkg/errx"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/empresa"
)

// EmpresaService manages empresa accounts
type EmpresaService struct {
	repo        empresa.Repository
	passwordSvc auth.PasswordService
}

// NewEmpresaService creates a new empresa service
func NewEmpresaService(repo empresa.Repository, passwordSvc auth.PasswordService) *EmpresaService {
	return &EmpresaService{
		repo:        repo,
		passwordSvc: passwordSvc,
	}
}

// Create registers a new empresa
func (s *EmpresaService) Create(ctx context.Context, req empresa.CreateEmpresaRequest) (*empresa.Empresa, error) {
	nit := kernel.Documento{Type: kernel.DocumentoTypeNIT, Number: req.NIT}
	if !nit.IsValid() {
		return nil, empresa.ErrInvalidNIT().WithDetail("nit", req.NIT)
	}
	if req.RazonSocial == "" || req.Email == "" {
		return nil, empresa.ErrInvalidRequest().
			WithDetail("message", "razon_social y email son obligatorios")
	}

	var passwordHash string
	if req.Password != "" {
		hash, err := s.passwordSvc.Hash(req.Password)
		if err != nil {
			return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
		}
		passwordHash = hash
	}

	now := time.Now()
	entity := &empresa.Empresa{
		ID:                 kernel.EmpresaID(uuid.NewString()),
		NIT:                req.NIT,
		RazonSocial:        req.RazonSocial,
		Email:              req.Email,
		Phone:              req.Phone,
		CiudadID:           req.CiudadID,
		PasswordHash:       passwordHash,
		RequiereAprobacion: req.RequiereAprobacion,
		Status:             empresa.EmpresaStatusActiva,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// Get retrieves an empresa
func (s *EmpresaService) Get(ctx context.Context, id kernel.EmpresaID) (*empresa.Empresa, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves empresas with pagination
func (s *EmpresaService) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[empresa.Empresa], error) {
	return s.repo.List(ctx, pagination)
}

// Update modifies an empresa
func (s *EmpresaService) Update(ctx context.Context, id kernel.EmpresaID, req empresa.UpdateEmpresaRequest) (*empresa.Empresa, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RazonSocial != nil {
		entity.RazonSocial = *req.RazonSocial
	}
	if req.Email != nil {
		entity.Email = *req.Email
	}
	if req.Phone != nil {
		entity.Phone = *req.Phone
	}
	if req.CiudadID != nil {
		entity.CiudadID = *req.CiudadID
	}
	if req.RequiereAprobacion != nil {
		entity.RequiereAprobacion = *req.RequiereAprobacion
	}
	entity.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// Archive archives an empresa
func (s *EmpresaService) Archive(ctx context.Context, id kernel.EmpresaID) error {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := entity.Archive(); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, entity)
}
