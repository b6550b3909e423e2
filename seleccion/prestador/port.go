package prestador

import (
	"context"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// Repository defines the interface for prestador persistence
type Repository interface {
	Create(ctx context.Context, p *Prestador) error
	Update(ctx context.Context, id kernel.PrestadorID, p *Prestador) error
	GetByID(ctx context.Context, id kernel.PrestadorID) (*Prestador, error)
	GetByNIT(ctx context.Context, nit string) (*Prestador, error)
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Prestador], error)
	ListByCiudad(ctx context.Context, ciudadID kernel.CiudadID) ([]Prestador, error)
	CountActiveByCiudad(ctx context.Context, ciudadID kernel.CiudadID) (int, error)
}
