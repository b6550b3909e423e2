package solicitud

import (
	"context"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

type Repository interface {
	// Create creates a new solicitud
	Create(ctx context.Context, solicitud *Solicitud) error

	// Update updates an existing solicitud
	Update(ctx context.Context, id kernel.SolicitudID, solicitud *Solicitud) error

	// GetByID retrieves a solicitud by ID
	GetByID(ctx context.Context, id kernel.SolicitudID) (*Solicitud, error)

	// Delete deletes a solicitud by ID
	Delete(ctx context.Context, id kernel.SolicitudID) error

	// List retrieves solicitudes matching a normalized filter
	List(ctx context.Context, filter ListFilter) (*kernel.Paginated[Solicitud], error)

	// ListForExport retrieves every solicitud matching the filter, unpaginated,
	// joined with the empresa / analista columns the spreadsheet needs
	ListForExport(ctx context.Context, filter ListFilter) ([]ExportRow, error)

	// Exists checks if a solicitud exists by ID
	Exists(ctx context.Context, id kernel.SolicitudID) (bool, error)

	// AppendObservacion appends an audit entry
	AppendObservacion(ctx context.Context, obs *Observacion) error

	// ListObservaciones retrieves the audit trail, newest first
	ListObservaciones(ctx context.Context, id kernel.SolicitudID) ([]Observacion, error)

	// CountByEstado aggregates solicitudes per estado in a date range
	CountByEstado(ctx context.Context, desde, hasta string) (map[Estado]int64, error)

	// CountByEmpresa aggregates solicitudes per empresa in a date range
	CountByEmpresa(ctx context.Context, desde, hasta string) (map[string]int64, error)
}

// CandidatoInfo is the slice of candidato data the lifecycle needs
type CandidatoInfo struct {
	ID       kernel.CandidatoID
	Nombre   string
	Email    kernel.Email
	CiudadID kernel.CiudadID
}

// CandidatoDirectory resolves candidatos for document validation and citas
type CandidatoDirectory interface {
	GetBySolicitud(ctx context.Context, solicitudID kernel.SolicitudID) (*CandidatoInfo, error)
}

// AnalistaValidator checks that a usuario can take solicitud assignments
type AnalistaValidator interface {
	ValidateAnalista(ctx context.Context, userID kernel.UserID) error
}

// PrestadorCoverage answers whether any prestador serves a ciudad
type PrestadorCoverage interface {
	HasCoverage(ctx context.Context, ciudadID kernel.CiudadID) (bool, error)
}

// CitaScheduler creates the exam appointment produced by citarExamenes
type CitaScheduler interface {
	ScheduleExamen(ctx context.Context, req ScheduleExamenRequest) (kernel.CitaID, error)
}

// ScheduleExamenRequest carries what the cita module needs to book exams
type ScheduleExamenRequest struct {
	SolicitudID kernel.SolicitudID
	CandidatoID kernel.CandidatoID
	CiudadID    kernel.CiudadID
	Fecha       string
}
