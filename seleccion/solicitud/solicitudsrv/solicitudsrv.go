package solicitudsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vinculohr/vinculo/pkg/errx"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/pkg/logx"
	"github.com/vinculohr/vinculo/seleccion/solicitud"
)

// Actor identifies who performed an action, for the audit trail.
type Actor struct {
	ID     *kernel.UserID
	Nombre string
}

// SolicitudService coordinates the solicitud lifecycle
type SolicitudService struct {
	repo       solicitud.Repository
	candidatos solicitud.CandidatoDirectory
	analistas  solicitud.AnalistaValidator
	coverage   solicitud.PrestadorCoverage
	citas      solicitud.CitaScheduler
}

// NewSolicitudService creates a new solicitud service
func NewSolicitudService(
	repo solicitud.Repository,
	candidatos solicitud.CandidatoDirectory,
	analistas solicitud.AnalistaValidator,
	coverage solicitud.PrestadorCoverage,
	citas solicitud.CitaScheduler,
) *SolicitudService {
	return &SolicitudService{
		repo:       repo,
		candidatos: candidatos,
		analistas:  analistas,
		coverage:   coverage,
		citas:      citas,
	}
}

// Create registers a new solicitud from the empresa intake
func (s *SolicitudService) Create(ctx context.Context, req solicitud.CreateSolicitudRequest) (*solicitud.Solicitud, error) {
	if req.EmpresaID == "" || req.NumeroDocumento == "" || req.NombreCandidato == "" {
		return nil, solicitud.ErrInvalidRequest().
			WithDetail("message", "empresa_id, numero_documento y nombre_candidato son obligatorios")
	}

	estado := solicitud.EstadoPendiente
	if req.RequiereAprobacion {
		estado = solicitud.EstadoValidacionCliente
	}

	now := time.Now()
	entity := &solicitud.Solicitud{
		ID:              kernel.SolicitudID(uuid.NewString()),
		EmpresaID:       req.EmpresaID,
		NumeroDocumento: req.NumeroDocumento,
		NombreCandidato: req.NombreCandidato,
		EstructuraDatos: req.EstructuraDatos,
		Estado:          estado,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	s.audit(ctx, entity.ID, solicitud.AccionCrear, "Solicitud creada", Actor{ID: req.CreatedBy})
	return entity, nil
}

// Get retrieves a solicitud
func (s *SolicitudService) Get(ctx context.Context, id kernel.SolicitudID) (*solicitud.Solicitud, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves solicitudes after normalizing the filter
func (s *SolicitudService) List(ctx context.Context, filter solicitud.ListFilter) (*kernel.Paginated[solicitud.Solicitud], error) {
	return s.repo.List(ctx, filter.Normalize())
}

// Observaciones retrieves the audit trail of a solicitud
func (s *SolicitudService) Observaciones(ctx context.Context, id kernel.SolicitudID) ([]solicitud.Observacion, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListObservaciones(ctx, id)
}

// Delete removes a solicitud and its audit trail
func (s *SolicitudService) Delete(ctx context.Context, id kernel.SolicitudID, actor Actor) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logx.Infof("solicitud %s eliminada por %s", id, actor.Nombre)
	return nil
}

// ============================================================================
// Lifecycle Actions
// ============================================================================

// transition loads the solicitud, applies the estado change and persists it
// together with the audit entry.
func (s *SolicitudService) transition(
	ctx context.Context,
	id kernel.SolicitudID,
	target solicitud.Estado,
	accion solicitud.Accion,
	observacion string,
	actor Actor,
) (*solicitud.Solicitud, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.CambiarEstado(target); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}

	s.audit(ctx, id, accion, observacion, actor)
	return entity, nil
}

// Aprobar advances validacion cliente → pendiente, or pendiente → pendiente asignacion
func (s *SolicitudService) Aprobar(ctx context.Context, id kernel.SolicitudID, observacion string, actor Actor) (*solicitud.Solicitud, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target := solicitud.EstadoPendienteAsignacion
	if entity.Estado == solicitud.EstadoValidacionCliente {
		target = solicitud.EstadoPendiente
	}

	return s.transition(ctx, id, target, solicitud.AccionAprobar, observacion, actor)
}

// Contactar marks the candidato as contacted, asignado → en_proceso
func (s *SolicitudService) Contactar(ctx context.Context, id kernel.SolicitudID, observacion string, actor Actor) (*solicitud.Solicitud, error) {
	return s.transition(ctx, id, solicitud.EstadoEnProceso, solicitud.AccionContactar, observacion, actor)
}

// StandBy freezes the solicitud, capturing the current estado for reactivation
func (s *SolicitudService) StandBy(ctx context.Context, id kernel.SolicitudID, observacion string, actor Actor) (*solicitud.Solicitud, error) {
	if observacion == "" {
		return nil, solicitud.ErrObservacionRequired().WithDetail("accion", string(solicitud.AccionStandBy))
	}
	return s.transition(ctx, id, solicitud.EstadoStandBy, solicitud.AccionStandBy, observacion, actor)
}

// Reactivar restores the estado captured when entering stand by
func (s *SolicitudService) Reactivar(ctx context.Context, id kernel.SolicitudID, observacion string, actor Actor) (*solicitud.Solicitud, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.Reactivar(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}

	s.audit(ctx, id, solicitud.AccionReactivar, observacion, actor)
	return entity, nil
}

// Deserto closes the solicitud because the candidato walked away
func (s *SolicitudService) Deserto(ctx context.Context, id kernel.SolicitudID, observacion string, actor Actor) (*solicitud.Solicitud, error) {
	if observacion == "" {
		return nil, solicitud.ErrObservacionRequired().WithDetail("accion", string(solicitud.AccionDeserto))
	}
	return s.transition(ctx, id, solicitud.EstadoDeserto, solicitud.AccionDeserto, observacion, actor)
}

// Descartado discards the solicitud before it progressed
func (s *SolicitudService) Descartado(ctx context.Context, id kernel.SolicitudID, observacion string, actor Actor) (*solicitud.Solicitud, error) {
	if observacion == "" {
		return nil, solicitud.ErrObservacionRequired().WithDetail("accion", string(solicitud.AccionDescartado))
	}
	return s.transition(ctx, id, solicitud.EstadoDescartado, solicitud.AccionDescartado, observacion, actor)
}

// Cancelar closes the solicitud at the empresa's request
func (s *SolicitudService) Cancelar(ctx context.Context, id kernel.SolicitudID, observacion string, actor Actor) (*solicitud.Solicitud, error) {
	if observacion == "" {
		return nil, solicitud.ErrObservacionRequired().WithDetail("accion", string(solicitud.AccionCancelar))
	}
	return s.transition(ctx, id, solicitud.EstadoCancelada, solicitud.AccionCancelar, observacion, actor)
}

// Contratar moves citado examenes → firma contrato
func (s *SolicitudService) Contratar(ctx context.Context, id kernel.SolicitudID, observacion string, actor Actor) (*solicitud.Solicitud, error) {
	if observacion == "" {
		return nil, solicitud.ErrObservacionRequired().WithDetail("accion", string(solicitud.AccionContratar))
	}
	return s.transition(ctx, id, solicitud.EstadoFirmaContrato, solicitud.AccionContratar, observacion, actor)
}

// Asignar validates the analista and assigns the solicitud
func (s *SolicitudService) Asignar(ctx context.Context, id kernel.SolicitudID, req solicitud.AsignarRequest, actor Actor) (*solicitud.Solicitud, error) {
	if req.AnalistaID == "" {
		return nil, solicitud.ErrInvalidRequest().WithDetail("message", "analista_id es obligatorio")
	}

	if err := s.analistas.ValidateAnalista(ctx, req.AnalistaID); err != nil {
		return nil, solicitud.ErrAnalistaInvalid().WithCause(err)
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.AsignarAnalista(req.AnalistaID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}

	s.audit(ctx, id, solicitud.AccionAsignar, req.Observacion, actor)
	return entity, nil
}

// ValidarDocumentos accepts submitted documents. The candidato must exist
// and have an email so the acceptance notice can reach them.
func (s *SolicitudService) ValidarDocumentos(ctx context.Context, id kernel.SolicitudID, observacion string, actor Actor) (*solicitud.Solicitud, error) {
	if _, err := s.requireCandidatoConEmail(ctx, id); err != nil {
		return nil, err
	}
	return s.transition(ctx, id, solicitud.EstadoDocumentosEntregados, solicitud.AccionValidarDocumentos, observacion, actor)
}

// CitarExamenes books the exam appointment. A coverage failure in the
// candidato's ciudad is retryable with an explicit ciudad override.
func (s *SolicitudService) CitarExamenes(ctx context.Context, id kernel.SolicitudID, req solicitud.CitarExamenesRequest, actor Actor) (*solicitud.Solicitud, error) {
	candidato, err := s.requireCandidatoConEmail(ctx, id)
	if err != nil {
		return nil, err
	}

	ciudadID := candidato.CiudadID
	if req.CiudadID != "" {
		ciudadID = req.CiudadID
	}

	covered, err := s.coverage.HasCoverage(ctx, ciudadID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to resolve prestador coverage", errx.TypeInternal)
	}
	if !covered {
		return nil, solicitud.ErrNoPrestadores(string(ciudadID))
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := entity.CambiarEstado(solicitud.EstadoCitadoExamenes); err != nil {
		return nil, err
	}

	// Book the cita before persisting the estado, so a bad fecha or a
	// scheduling failure leaves the solicitud untouched.
	citaID, err := s.citas.ScheduleExamen(ctx, solicitud.ScheduleExamenRequest{
		SolicitudID: id,
		CandidatoID: candidato.ID,
		CiudadID:    ciudadID,
		Fecha:       req.Fecha,
	})
	if err != nil {
		if e, ok := err.(*errx.Error); ok {
			return nil, e
		}
		return nil, errx.Wrap(err, "failed to schedule examen", errx.TypeInternal)
	}

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}

	s.audit(ctx, id, solicitud.AccionCitarExamenes, req.Observacion, actor)
	logx.Infof("cita %s programada para solicitud %s en ciudad %s", citaID, id, ciudadID)
	return entity, nil
}

// DevolverDocumentos returns documents to the candidato for correction
func (s *SolicitudService) DevolverDocumentos(ctx context.Context, id kernel.SolicitudID, observacion string, actor Actor) (*solicitud.Solicitud, error) {
	return s.transition(ctx, id, solicitud.EstadoDocumentosDevueltos, solicitud.AccionDevolverDocumentos, observacion, actor)
}

// RegistrarEntregaDocumentos is invoked from the candidato portal when
// documents are (re)submitted, moving the solicitud to pendiente documentos
func (s *SolicitudService) RegistrarEntregaDocumentos(ctx context.Context, id kernel.SolicitudID, actor Actor) (*solicitud.Solicitud, error) {
	return s.transition(ctx, id, solicitud.EstadoPendienteDocumentos, solicitud.AccionEntregarDocumentos, "Documentos entregados por el candidato", actor)
}

// UpdateEstado is the generic estado PATCH used for the closing estados
// the dedicated actions do not cover (rechazada, contratado, aprobada)
func (s *SolicitudService) UpdateEstado(ctx context.Context, id kernel.SolicitudID, req solicitud.UpdateEstadoRequest, actor Actor) (*solicitud.Solicitud, error) {
	if !req.Estado.IsValid() {
		return nil, solicitud.ErrInvalidEstado(string(req.Estado))
	}
	return s.transition(ctx, id, req.Estado, solicitud.AccionCambiarEstado, req.Observacion, actor)
}

// ============================================================================
// Helpers
// ============================================================================

func (s *SolicitudService) requireCandidatoConEmail(ctx context.Context, id kernel.SolicitudID) (*solicitud.CandidatoInfo, error) {
	candidato, err := s.candidatos.GetBySolicitud(ctx, id)
	if err != nil {
		return nil, solicitud.ErrCandidatoMissing().WithCause(err)
	}
	if candidato == nil {
		return nil, solicitud.ErrCandidatoMissing()
	}
	if candidato.Email == "" {
		return nil, solicitud.ErrCandidatoEmailMissing().
			WithDetail("candidato_id", string(candidato.ID))
	}
	return candidato, nil
}

func (s *SolicitudService) audit(ctx context.Context, id kernel.SolicitudID, accion solicitud.Accion, observacion string, actor Actor) {
	obs := &solicitud.Observacion{
		ID:          uuid.NewString(),
		SolicitudID: id,
		Accion:      accion,
		Observacion: observacion,
		ActorID:     actor.ID,
		ActorNombre: actor.Nombre,
		CreatedAt:   time.Now(),
	}

	// The action already committed; a failed audit write is logged, not fatal.
	if err := s.repo.AppendObservacion(ctx, obs); err != nil {
		logx.Errorf("failed to append observacion for solicitud %s: %v", id, err)
	}
}
