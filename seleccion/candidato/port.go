package candidato

import (
	"context"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

type Repository interface {
	// Create creates a new candidato
	Create(ctx context.Context, candidato *Candidato) error

	// Update updates an existing candidato
	Update(ctx context.Context, id kernel.CandidatoID, candidato *Candidato) error

	// GetByID retrieves a candidato by ID
	GetByID(ctx context.Context, id kernel.CandidatoID) (*Candidato, error)

	// GetByDocumento retrieves a candidato by document number
	GetByDocumento(ctx context.Context, numero string) (*Candidato, error)

	// GetByEmail retrieves a candidato by email
	GetByEmail(ctx context.Context, email kernel.Email) (*Candidato, error)

	// GetBySolicitud retrieves the candidato linked to a solicitud
	GetBySolicitud(ctx context.Context, solicitudID kernel.SolicitudID) (*Candidato, error)

	// List retrieves candidatos with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Candidato], error)

	// Exists checks if a candidato exists by ID
	Exists(ctx context.Context, id kernel.CandidatoID) (bool, error)

	// UpdatePassword replaces the stored password hash
	UpdatePassword(ctx context.Context, id kernel.CandidatoID, passwordHash string) error

	// SaveEntrega records one submitted document
	SaveEntrega(ctx context.Context, entrega *DocumentoEntrega) error

	// ListEntregas retrieves the documents submitted for a solicitud
	ListEntregas(ctx context.Context, solicitudID kernel.SolicitudID) ([]DocumentoEntrega, error)
}

// SolicitudReceiver is the slice of the solicitud lifecycle the portal
// drives when the candidato (re)submits documents.
type SolicitudReceiver interface {
	RegistrarEntregaDocumentos(ctx context.Context, solicitudID kernel.SolicitudID, candidatoID kernel.CandidatoID) error
}
