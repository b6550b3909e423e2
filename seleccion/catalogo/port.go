package catalogo

import "context"

type Repository interface {
	// Create adds a catalog entry
	Create(ctx context.Context, kind Kind, item *Item) error

	// Update renames or toggles a catalog entry
	Update(ctx context.Context, kind Kind, item *Item) error

	// GetByID retrieves one catalog entry
	GetByID(ctx context.Context, kind Kind, id string) (*Item, error)

	// List retrieves all entries of a catalog, active first
	List(ctx context.Context, kind Kind) ([]Item, error)
}

// Resolver answers id → nombre lookups. The cached implementation backs
// spreadsheet export and cita scheduling.
type Resolver interface {
	Resolve(ctx context.Context, kind Kind, id string) (string, error)
}
