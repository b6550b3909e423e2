package empresa

import (
	"context"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

type Repository interface {
	// Create creates a new empresa
	Create(ctx context.Context, empresa *Empresa) error

	// Update updates an existing empresa
	Update(ctx context.Context, id kernel.EmpresaID, empresa *Empresa) error

	// GetByID retrieves an empresa by ID
	GetByID(ctx context.Context, id kernel.EmpresaID) (*Empresa, error)

	// GetByNIT retrieves an empresa by NIT
	GetByNIT(ctx context.Context, nit string) (*Empresa, error)

	// GetByEmail retrieves an empresa by the portal email
	GetByEmail(ctx context.Context, email kernel.Email) (*Empresa, error)

	// List retrieves empresas with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Empresa], error)

	// Exists checks if an empresa exists by ID
	Exists(ctx context.Context, id kernel.EmpresaID) (bool, error)
}
