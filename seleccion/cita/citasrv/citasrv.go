package citasrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/pkg/logx"
	"github.com/vinculohr/vinculo/seleccion/cita"
	"github.com/vinculohr/vinculo/seleccion/solicitud"
)

// CitaService books and manages exam appointments
type CitaService struct {
	repo   cita.Repository
	picker cita.PrestadorPicker
}

// NewCitaService creates a new cita service
func NewCitaService(repo cita.Repository, picker cita.PrestadorPicker) *CitaService {
	return &CitaService{
		repo:   repo,
		picker: picker,
	}
}

// parseFecha accepts "2006-01-02 15:04" or a bare date
func parseFecha(raw string) (time.Time, error) {
	if t, err := time.Parse(cita.FechaLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, cita.ErrInvalidFecha(raw)
	}
	return t, nil
}

// ScheduleExamen books an exam cita for a solicitud. The prestador is
// picked from the active coverage of the requested ciudad.
func (s *CitaService) ScheduleExamen(ctx context.Context, req solicitud.ScheduleExamenRequest) (kernel.CitaID, error) {
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return "", err
	}

	prestadorID, err := s.picker.PickForCiudad(ctx, req.CiudadID)
	if err != nil {
		return "", err
	}

	now := time.Now()
	entity := &cita.Cita{
		ID:          kernel.CitaID(uuid.New().String()),
		SolicitudID: req.SolicitudID,
		CandidatoID: req.CandidatoID,
		PrestadorID: prestadorID,
		CiudadID:    req.CiudadID,
		Tipo:        cita.TipoCitaExamenes,
		Fecha:       fecha,
		Estado:      cita.CitaEstadoProgramada,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return "", err
	}

	logx.Infof("cita %s programada para solicitud %s con prestador %s",
		entity.ID, entity.SolicitudID, entity.PrestadorID)

	return entity.ID, nil
}

// Get retrieves a cita by ID
func (s *CitaService) Get(ctx context.Context, id kernel.CitaID) (*cita.Cita, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves citas with pagination
func (s *CitaService) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[cita.Cita], error) {
	return s.repo.List(ctx, pagination)
}

// ListBySolicitud retrieves the citas of a solicitud
func (s *CitaService) ListBySolicitud(ctx context.Context, solicitudID kernel.SolicitudID) ([]cita.Cita, error) {
	return s.repo.ListBySolicitud(ctx, solicitudID)
}

// Reprogramar moves a scheduled cita to another ciudad's coverage.
// A fresh prestador is picked for the target ciudad.
func (s *CitaService) Reprogramar(ctx context.Context, id kernel.CitaID, req cita.ReprogramarRequest) (*cita.Cita, error) {
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prestadorID, err := s.picker.PickForCiudad(ctx, req.CiudadID)
	if err != nil {
		return nil, err
	}

	if err := entity.Reprogramar(prestadorID, req.CiudadID, fecha); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// Cumplir marks a cita as attended
func (s *CitaService) Cumplir(ctx context.Context, id kernel.CitaID) (*cita.Cita, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.Cumplir(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// Cancelar cancels a scheduled cita
func (s *CitaService) Cancelar(ctx context.Context, id kernel.CitaID) (*cita.Cita, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.Cancelar(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}

	return entity, nil
}
