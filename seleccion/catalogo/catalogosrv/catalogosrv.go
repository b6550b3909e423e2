package catalogosrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vinculohr/vinculo/seleccion/catalogo"
	"github.com/vinculohr/vinculo/seleccion/catalogo/catalogoinfra"
)

// CatalogoService manages reference data
type CatalogoService struct {
	repo     catalogo.Repository
	resolver *catalogoinfra.RedisResolver
}

// NewCatalogoService creates a new catalogo service
func NewCatalogoService(repo catalogo.Repository, resolver *catalogoinfra.RedisResolver) *CatalogoService {
	return &CatalogoService{
		repo:     repo,
		resolver: resolver,
	}
}

// Create adds a catalog entry
func (s *CatalogoService) Create(ctx context.Context, kind catalogo.Kind, req catalogo.CreateItemRequest) (*catalogo.Item, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, catalogo.ErrInvalidRequest().WithDetail("nombre", "must not be empty")
	}

	now := time.Now()
	item := &catalogo.Item{
		ID:        uuid.NewString(),
		Nombre:    nombre,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, kind, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Update renames or toggles a catalog entry and drops the cached nombre
func (s *CatalogoService) Update(ctx context.Context, kind catalogo.Kind, id string, req catalogo.UpdateItemRequest) (*catalogo.Item, error) {
	item, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, catalogo.ErrInvalidRequest().WithDetail("nombre", "must not be empty")
		}
		item.Nombre = nombre
	}
	if req.Activo != nil {
		item.Activo = *req.Activo
	}
	item.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, kind, item); err != nil {
		return nil, err
	}

	s.resolver.Invalidate(ctx, kind, id)
	return item, nil
}

// Get retrieves one catalog entry
func (s *CatalogoService) Get(ctx context.Context, kind catalogo.Kind, id string) (*catalogo.Item, error) {
	return s.repo.GetByID(ctx, kind, id)
}

// List retrieves all entries of a catalog
func (s *CatalogoService) List(ctx context.Context, kind catalogo.Kind) ([]catalogo.Item, error) {
	return s.repo.List(ctx, kind)
}

// Resolve answers an id → nombre lookup through the cache
func (s *CatalogoService) Resolve(ctx context.Context, kind catalogo.Kind, id string) (string, error) {
	return s.resolver.Resolve(ctx, kind, id)
}
