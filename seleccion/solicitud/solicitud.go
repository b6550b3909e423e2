package solicitud

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// Estado represents the lifecycle state of a solicitud
type Estado string

const (
	EstadoValidacionCliente    Estado = "validacion cliente"
	EstadoPendiente            Estado = "pendiente"
	EstadoPendienteAsignacion  Estado = "pendiente asignacion"
	EstadoAsignado             Estado = "asignado"
	EstadoEnProceso            Estado = "en_proceso"
	EstadoPendienteDocumentos  Estado = "pendiente documentos"
	EstadoDocumentosDevueltos  Estado = "documentos devueltos"
	EstadoDocumentosEntregados Estado = "documentos entregados"
	EstadoCitadoExamenes       Estado = "citado examenes"
	EstadoFirmaContrato        Estado = "firma contrato"
	EstadoStandBy              Estado = "stand by"
	EstadoAprobada             Estado = "aprobada"
	EstadoRechazada            Estado = "rechazada"
	EstadoDeserto              Estado = "deserto"
	EstadoCancelada            Estado = "cancelada"
	EstadoDescartado           Estado = "descartado"
	EstadoContratado           Estado = "contratado"
)

// AllEstados lists every known estado, used for input validation.
var AllEstados = []Estado{
	EstadoValidacionCliente,
	EstadoPendiente,
	EstadoPendienteAsignacion,
	EstadoAsignado,
	EstadoEnProceso,
	EstadoPendienteDocumentos,
	EstadoDocumentosDevueltos,
	EstadoDocumentosEntregados,
	EstadoCitadoExamenes,
	EstadoFirmaContrato,
	EstadoStandBy,
	EstadoAprobada,
	EstadoRechazada,
	EstadoDeserto,
	EstadoCancelada,
	EstadoDescartado,
	EstadoContratado,
}

// IsValid reports whether the estado is a known value
func (e Estado) IsValid() bool {
	return slices.Contains(AllEstados, e)
}

// IsTerminal reports whether no further transition leaves the estado
func (e Estado) IsTerminal() bool {
	switch e {
	case EstadoAprobada, EstadoRechazada, EstadoDeserto,
		EstadoCancelada, EstadoDescartado, EstadoContratado:
		return true
	}
	return false
}

// validTransitions is the single authoritative transition table. Every
// estado change, whether triggered by an action endpoint, the candidato
// portal or a generic PATCH, goes through it.
var validTransitions = map[Estado][]Estado{
	EstadoValidacionCliente: {
		EstadoPendiente,
		EstadoDescartado,
		EstadoCancelada,
	},
	EstadoPendiente: {
		EstadoPendienteAsignacion,
		EstadoStandBy,
		EstadoDescartado,
		EstadoCancelada,
	},
	EstadoPendienteAsignacion: {
		EstadoAsignado,
		EstadoStandBy,
		EstadoDescartado,
		EstadoCancelada,
	},
	EstadoAsignado: {
		EstadoEnProceso,
		EstadoStandBy,
		EstadoDeserto,
		EstadoCancelada,
	},
	EstadoEnProceso: {
		EstadoPendienteDocumentos,
		EstadoStandBy,
		EstadoDeserto,
		EstadoDescartado,
		EstadoCancelada,
	},
	EstadoPendienteDocumentos: {
		EstadoDocumentosEntregados,
		EstadoDocumentosDevueltos,
		EstadoStandBy,
		EstadoDeserto,
		EstadoCancelada,
	},
	EstadoDocumentosDevueltos: {
		EstadoPendienteDocumentos,
		EstadoStandBy,
		EstadoDeserto,
		EstadoCancelada,
	},
	EstadoDocumentosEntregados: {
		EstadoCitadoExamenes,
		EstadoDocumentosDevueltos,
		EstadoStandBy,
		EstadoDeserto,
		EstadoCancelada,
	},
	EstadoCitadoExamenes: {
		EstadoFirmaContrato,
		EstadoRechazada,
		EstadoStandBy,
		EstadoDeserto,
		EstadoCancelada,
	},
	EstadoFirmaContrato: {
		EstadoContratado,
		EstadoAprobada,
		EstadoDeserto,
		EstadoCancelada,
	},
	EstadoStandBy: {
		// Reactivar additionally allows returning to estado_anterior,
		// validated in CanTransitionTo against the stored value.
		EstadoDeserto,
		EstadoCancelada,
	},
}

// CampoTipo classifies a dynamic field so rendering and export can treat
// the value semantically instead of guessing from the field name.
type CampoTipo string

const (
	CampoTipoTexto       CampoTipo = "texto"
	CampoTipoNumero      CampoTipo = "numero"
	CampoTipoBooleano    CampoTipo = "booleano"
	CampoTipoFecha       CampoTipo = "fecha"
	CampoTipoCargoRef    CampoTipo = "cargo-ref"
	CampoTipoCiudadRef   CampoTipo = "ciudad-ref"
	CampoTipoSucursalRef CampoTipo = "sucursal-ref"
	CampoTipoCentroRef   CampoTipo = "centro-costo-ref"
	CampoTipoTelefono    CampoTipo = "telefono"
)

// Campo is a single dynamic field captured for the solicitud
type Campo struct {
	Nombre   string    `json:"nombre"`
	Etiqueta string    `json:"etiqueta"`
	Tipo     CampoTipo `json:"tipo"`
	Valor    any       `json:"valor"`
	Orden    int       `json:"orden"`
}

// Seccion groups related campos
type Seccion struct {
	Nombre string  `json:"nombre"`
	Orden  int     `json:"orden"`
	Campos []Campo `json:"campos"`
}

// EstructuraDatos is the dynamic per-empresa intake payload, stored as JSONB
type EstructuraDatos struct {
	Secciones []Seccion `json:"secciones"`
}

// Value implements driver.Valuer for JSONB storage
func (e EstructuraDatos) Value() (driver.Value, error) {
	return json.Marshal(e)
}

// Scan implements sql.Scanner for JSONB retrieval
func (e *EstructuraDatos) Scan(src any) error {
	if src == nil {
		*e = EstructuraDatos{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	}
	return fmt.Errorf("unsupported estructura_datos source: %T", src)
}

// Campos returns every campo across secciones, seccion orden first
func (e EstructuraDatos) Campos() []Campo {
	secciones := slices.Clone(e.Secciones)
	slices.SortStableFunc(secciones, func(a, b Seccion) int {
		return a.Orden - b.Orden
	})

	var campos []Campo
	for _, s := range secciones {
		cs := slices.Clone(s.Campos)
		slices.SortStableFunc(cs, func(a, b Campo) int {
			return a.Orden - b.Orden
		})
		campos = append(campos, cs...)
	}
	return campos
}

// Accion identifies an audited lifecycle action
type Accion string

const (
	AccionCrear              Accion = "crear"
	AccionAprobar            Accion = "aprobar"
	AccionContactar          Accion = "contactar"
	AccionStandBy            Accion = "standBy"
	AccionReactivar          Accion = "reactivar"
	AccionDeserto            Accion = "deserto"
	AccionDescartado         Accion = "descartado"
	AccionCancelar           Accion = "cancelar"
	AccionContratar          Accion = "contratar"
	AccionAsignar            Accion = "asignar"
	AccionValidarDocumentos  Accion = "validarDocumentos"
	AccionCitarExamenes      Accion = "citarExamenes"
	AccionDevolverDocumentos Accion = "devolverDocumentos"
	AccionEntregarDocumentos Accion = "entregarDocumentos"
	AccionCambiarEstado      Accion = "cambiarEstado"
)

// Observacion is one audit trail entry on a solicitud
type Observacion struct {
	ID          string             `db:"id" json:"id"`
	SolicitudID kernel.SolicitudID `db:"solicitud_id" json:"solicitud_id"`
	Accion      Accion             `db:"accion" json:"accion"`
	Observacion string             `db:"observacion" json:"observacion"`
	ActorID     *kernel.UserID     `db:"actor_id" json:"actor_id,omitempty"`
	ActorNombre string             `db:"actor_nombre" json:"actor_nombre"`
	CreatedAt   time.Time          `db:"created_at" json:"created_at"`
}

type Solicitud struct {
	ID              kernel.SolicitudID  `db:"id" json:"id"`
	Consecutivo     int64               `db:"consecutivo" json:"consecutivo"`
	EmpresaID       kernel.EmpresaID    `db:"empresa_id" json:"empresa_id"`
	CandidatoID     *kernel.CandidatoID `db:"candidato_id" json:"candidato_id,omitempty"`
	NumeroDocumento string              `db:"numero_documento" json:"numero_documento"`
	NombreCandidato string              `db:"nombre_candidato" json:"nombre_candidato"`
	AnalistaID      *kernel.UserID      `db:"analista_id" json:"analista_id,omitempty"`
	EstructuraDatos EstructuraDatos     `db:"estructura_datos" json:"estructura_datos"`
	Estado          Estado              `db:"estado" json:"estado"`
	EstadoAnterior  *Estado             `db:"estado_anterior" json:"estado_anterior,omitempty"`
	EstadoChangedAt *time.Time          `db:"estado_changed_at" json:"estado_changed_at,omitempty"`
	CreatedAt       time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsClosed checks if the solicitud reached a terminal estado
func (s *Solicitud) IsClosed() bool {
	return s.Estado.IsTerminal()
}

// HasAnalista checks if an analista is assigned
func (s *Solicitud) HasAnalista() bool {
	return s.AnalistaID != nil
}

// CanTransitionTo checks the transition table for the requested estado.
// From stand by, the estado captured on entry is also a legal target.
func (s *Solicitud) CanTransitionTo(newEstado Estado) bool {
	if s.IsClosed() {
		return false
	}

	if s.Estado == EstadoStandBy && s.EstadoAnterior != nil && newEstado == *s.EstadoAnterior {
		return true
	}

	allowed, ok := validTransitions[s.Estado]
	if !ok {
		return false
	}

	return slices.Contains(allowed, newEstado)
}

// CambiarEstado moves the solicitud to newEstado, enforcing the table
func (s *Solicitud) CambiarEstado(newEstado Estado) error {
	if !newEstado.IsValid() {
		return ErrInvalidEstado(string(newEstado))
	}
	if !s.CanTransitionTo(newEstado) {
		return ErrInvalidStateTransition().
			WithDetail("estado_actual", string(s.Estado)).
			WithDetail("estado_nuevo", string(newEstado))
	}

	now := time.Now()
	if newEstado == EstadoStandBy {
		anterior := s.Estado
		s.EstadoAnterior = &anterior
	} else if s.Estado != EstadoStandBy {
		// Leaving any live estado invalidates a stale snapshot.
		s.EstadoAnterior = nil
	}

	s.Estado = newEstado
	s.EstadoChangedAt = &now
	s.UpdatedAt = now
	return nil
}

// Reactivar restores the estado captured when entering stand by
func (s *Solicitud) Reactivar() error {
	if s.Estado != EstadoStandBy {
		return ErrNotStandBy().WithDetail("estado_actual", string(s.Estado))
	}
	if s.EstadoAnterior == nil {
		return ErrInvalidStateTransition().
			WithDetail("estado_actual", string(s.Estado)).
			WithDetail("message", "no hay estado anterior registrado")
	}

	anterior := *s.EstadoAnterior
	now := time.Now()
	s.Estado = anterior
	s.EstadoAnterior = nil
	s.EstadoChangedAt = &now
	s.UpdatedAt = now
	return nil
}

// AsignarAnalista assigns the analista and advances to asignado
func (s *Solicitud) AsignarAnalista(analistaID kernel.UserID) error {
	if err := s.CambiarEstado(EstadoAsignado); err != nil {
		return err
	}
	s.AnalistaID = &analistaID
	return nil
}
