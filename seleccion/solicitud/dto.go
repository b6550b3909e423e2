package solicitud

import (
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// CreateSolicitudRequest - DTO for the intake of a new solicitud
type CreateSolicitudRequest struct {
	EmpresaID          kernel.EmpresaID `json:"empresa_id" validate:"required"`
	NumeroDocumento    string           `json:"numero_documento" validate:"required"`
	NombreCandidato    string           `json:"nombre_candidato" validate:"required"`
	EstructuraDatos    EstructuraDatos  `json:"estructura_datos"`
	RequiereAprobacion bool             `json:"requiere_aprobacion"`
	CreatedBy          *kernel.UserID   `json:"created_by,omitempty"`
}

// ActionRequest - DTO shared by the action endpoints
type ActionRequest struct {
	Observacion string `json:"observacion,omitempty"`
}

// AsignarRequest - DTO for the asignar action
type AsignarRequest struct {
	AnalistaID  kernel.UserID `json:"analista_id" validate:"required"`
	Observacion string        `json:"observacion,omitempty"`
}

// CitarExamenesRequest - DTO for citarExamenes; CiudadID overrides the
// candidato's ciudad on retry after a coverage failure
type CitarExamenesRequest struct {
	CiudadID    kernel.CiudadID `json:"ciudad_id,omitempty"`
	Fecha       string          `json:"fecha" validate:"required"`
	Observacion string          `json:"observacion,omitempty"`
}

// UpdateEstadoRequest - DTO for the generic estado PATCH
type UpdateEstadoRequest struct {
	Estado      Estado `json:"estado" validate:"required"`
	Observacion string `json:"observacion,omitempty"`
}

// SolicitudResponse - DTO for returning solicitud data
type SolicitudResponse struct {
	ID              kernel.SolicitudID  `json:"id"`
	Consecutivo     int64               `json:"consecutivo"`
	EmpresaID       kernel.EmpresaID    `json:"empresa_id"`
	CandidatoID     *kernel.CandidatoID `json:"candidato_id,omitempty"`
	NumeroDocumento string              `json:"numero_documento"`
	NombreCandidato string              `json:"nombre_candidato"`
	AnalistaID      *kernel.UserID      `json:"analista_id,omitempty"`
	EstructuraDatos EstructuraDatos     `json:"estructura_datos"`
	Estado          Estado              `json:"estado"`
	EstadoAnterior  *Estado             `json:"estado_anterior,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func toResponse(s *Solicitud) SolicitudResponse {
	return SolicitudResponse{
		ID:              s.ID,
		Consecutivo:     s.Consecutivo,
		EmpresaID:       s.EmpresaID,
		CandidatoID:     s.CandidatoID,
		NumeroDocumento: s.NumeroDocumento,
		NombreCandidato: s.NombreCandidato,
		AnalistaID:      s.AnalistaID,
		EstructuraDatos: s.EstructuraDatos,
		Estado:          s.Estado,
		EstadoAnterior:  s.EstadoAnterior,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ToResponse converts the entity for API output
func (s *Solicitud) ToResponse() SolicitudResponse {
	return toResponse(s)
}

// Response type alias for paginated solicitudes
type PaginatedSolicitudesResponse = kernel.Paginated[SolicitudResponse]

// ExportRow is one solicitud flattened with the lookups the export needs
type ExportRow struct {
	Consecutivo     int64           `db:"consecutivo"`
	NumeroDocumento string          `db:"numero_documento"`
	CandidatoEmail  string          `db:"candidato_email"`
	EmpresaNombre   string          `db:"empresa_nombre"`
	EmpresaCiudad   string          `db:"empresa_ciudad"`
	AnalistaNombre  string          `db:"analista_nombre"`
	AnalistaEmail   string          `db:"analista_email"`
	Estado          Estado          `db:"estado"`
	EstructuraDatos EstructuraDatos `db:"estructura_datos"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
