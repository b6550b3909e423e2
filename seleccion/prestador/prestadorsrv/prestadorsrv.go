package prestadorsrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/prestador"
)

// PrestadorService manages the catalog of external exam providers
type PrestadorService struct {
	repo prestador.Repository
}

// NewPrestadorService creates a new prestador service
func NewPrestadorService(repo prestador.Repository) *PrestadorService {
	return &PrestadorService{
		repo: repo,
	}
}

// Create registers a new prestador
func (s *PrestadorService) Create(ctx context.Context, req prestador.CreatePrestadorRequest) (*prestador.Prestador, error) {
	nit := strings.TrimSpace(req.NIT)
	doc := kernel.Documento{Type: kernel.DocumentoTypeNIT, Number: nit}
	if !doc.IsValid() {
		return nil, prestador.ErrInvalidNIT(nit)
	}

	now := time.Now()
	entity := &prestador.Prestador{
		ID:        kernel.PrestadorID(uuid.New().String()),
		Nombre:    strings.TrimSpace(req.Nombre),
		NIT:       nit,
		Email:     req.Email,
		Phone:     req.Phone,
		Direccion: strings.TrimSpace(req.Direccion),
		CiudadID:  req.CiudadID,
		Servicios: prestador.Servicios(req.Servicios),
		Status:    prestador.PrestadorStatusActivo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// Get retrieves a prestador by ID
func (s *PrestadorService) Get(ctx context.Context, id kernel.PrestadorID) (*prestador.Prestador, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves prestadores with pagination
func (s *PrestadorService) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[prestador.Prestador], error) {
	return s.repo.List(ctx, pagination)
}

// ListByCiudad retrieves the active prestadores covering a ciudad
func (s *PrestadorService) ListByCiudad(ctx context.Context, ciudadID kernel.CiudadID) ([]prestador.Prestador, error) {
	return s.repo.ListByCiudad(ctx, ciudadID)
}

// Update modifies a prestador's data
func (s *PrestadorService) Update(ctx context.Context, id kernel.PrestadorID, req prestador.UpdatePrestadorRequest) (*prestador.Prestador, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		entity.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Email != nil {
		entity.Email = *req.Email
	}
	if req.Phone != nil {
		entity.Phone = *req.Phone
	}
	if req.Direccion != nil {
		entity.Direccion = strings.TrimSpace(*req.Direccion)
	}
	if req.CiudadID != nil {
		entity.CiudadID = *req.CiudadID
	}
	if req.Servicios != nil {
		entity.Servicios = prestador.Servicios(req.Servicios)
	}
	entity.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// Activate marks a prestador as available for scheduling
func (s *PrestadorService) Activate(ctx context.Context, id kernel.PrestadorID) (*prestador.Prestador, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Activate()

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// Deactivate removes a prestador from scheduling
func (s *PrestadorService) Deactivate(ctx context.Context, id kernel.PrestadorID) (*prestador.Prestador, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Deactivate()

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// HasCoverage answers whether any active prestador serves the ciudad
func (s *PrestadorService) HasCoverage(ctx context.Context, ciudadID kernel.CiudadID) (bool, error) {
	count, err := s.repo.CountActiveByCiudad(ctx, ciudadID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
