package cita

import (
	"context"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// Repository defines the interface for cita persistence
type Repository interface {
	Create(ctx context.Context, c *Cita) error
	Update(ctx context.Context, id kernel.CitaID, c *Cita) error
	GetByID(ctx context.Context, id kernel.CitaID) (*Cita, error)
	ListBySolicitud(ctx context.Context, solicitudID kernel.SolicitudID) ([]Cita, error)
	ListByPrestador(ctx context.Context, prestadorID kernel.PrestadorID, pagination kernel.PaginationOptions) (*kernel.Paginated[Cita], error)
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Cita], error)
}

// PrestadorPicker selects an active prestador covering a ciudad
type PrestadorPicker interface {
	PickForCiudad(ctx context.Context, ciudadID kernel.CiudadID) (kernel.PrestadorID, error)
}
