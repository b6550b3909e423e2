package solicitudsrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vinculohr/vinculo/pkg/errx"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/solicitud"
)

type fakeRepo struct {
	solicitudes   map[kernel.SolicitudID]*solicitud.Solicitud
	observaciones []solicitud.Observacion
	updates       int
}

func newFakeRepo(items ...*solicitud.Solicitud) *fakeRepo {
	r := &fakeRepo{solicitudes: map[kernel.SolicitudID]*solicitud.Solicitud{}}
	for _, s := range items {
		r.solicitudes[s.ID] = s
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, s *solicitud.Solicitud) error {
	r.solicitudes[s.ID] = s
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, id kernel.SolicitudID, s *solicitud.Solicitud) error {
	if _, ok := r.solicitudes[id]; !ok {
		return solicitud.ErrSolicitudNotFound()
	}
	r.solicitudes[id] = s
	r.updates++
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id kernel.SolicitudID) (*solicitud.Solicitud, error) {
	s, ok := r.solicitudes[id]
	if !ok {
		return nil, solicitud.ErrSolicitudNotFound()
	}
	copied := *s
	return &copied, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id kernel.SolicitudID) error {
	delete(r.solicitudes, id)
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter solicitud.ListFilter) (*kernel.Paginated[solicitud.Solicitud], error) {
	return nil, nil
}

func (r *fakeRepo) ListForExport(ctx context.Context, filter solicitud.ListFilter) ([]solicitud.ExportRow, error) {
	return nil, nil
}

func (r *fakeRepo) Exists(ctx context.Context, id kernel.SolicitudID) (bool, error) {
	_, ok := r.solicitudes[id]
	return ok, nil
}

func (r *fakeRepo) AppendObservacion(ctx context.Context, obs *solicitud.Observacion) error {
	r.observaciones = append(r.observaciones, *obs)
	return nil
}

func (r *fakeRepo) ListObservaciones(ctx context.Context, id kernel.SolicitudID) ([]solicitud.Observacion, error) {
	return r.observaciones, nil
}

func (r *fakeRepo) CountByEstado(ctx context.Context, desde, hasta string) (map[solicitud.Estado]int64, error) {
	return nil, nil
}

func (r *fakeRepo) CountByEmpresa(ctx context.Context, desde, hasta string) (map[string]int64, error) {
	return nil, nil
}

type fakeDirectory struct {
	info *solicitud.CandidatoInfo
	err  error
}

func (d *fakeDirectory) GetBySolicitud(ctx context.Context, solicitudID kernel.SolicitudID) (*solicitud.CandidatoInfo, error) {
	return d.info, d.err
}

type fakeValidator struct{ err error }

func (v *fakeValidator) ValidateAnalista(ctx context.Context, userID kernel.UserID) error {
	return v.err
}

type fakeCoverage struct{ covered bool }

func (c *fakeCoverage) HasCoverage(ctx context.Context, ciudadID kernel.CiudadID) (bool, error) {
	return c.covered, nil
}

type fakeScheduler struct {
	requests []solicitud.ScheduleExamenRequest
	err      error
}

func (s *fakeScheduler) ScheduleExamen(ctx context.Context, req solicitud.ScheduleExamenRequest) (kernel.CitaID, error) {
	if s.err != nil {
		return "", s.err
	}
	s.requests = append(s.requests, req)
	return kernel.CitaID("cita-1"), nil
}

func solicitudEn(estado solicitud.Estado) *solicitud.Solicitud {
	now := time.Now()
	return &solicitud.Solicitud{
		ID:              kernel.SolicitudID("sol-1"),
		EmpresaID:       kernel.EmpresaID("emp-1"),
		NumeroDocumento: "900123456",
		NombreCandidato: "Laura Gomez",
		Estado:          estado,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func newService(repo *fakeRepo, dir *fakeDirectory, cov *fakeCoverage, sched *fakeScheduler) *SolicitudService {
	if dir == nil {
		dir = &fakeDirectory{}
	}
	if cov == nil {
		cov = &fakeCoverage{covered: true}
	}
	if sched == nil {
		sched = &fakeScheduler{}
	}
	return NewSolicitudService(repo, dir, &fakeValidator{}, cov, sched)
}

func TestValidarDocumentosRequiresEmail(t *testing.T) {
	repo := newFakeRepo(solicitudEn(solicitud.EstadoPendienteDocumentos))
	dir := &fakeDirectory{info: &solicitud.CandidatoInfo{
		ID:       kernel.CandidatoID("cand-1"),
		Nombre:   "Laura Gomez",
		CiudadID: kernel.CiudadID("bogota"),
	}}
	svc := newService(repo, dir, nil, nil)

	_, err := svc.ValidarDocumentos(context.Background(), "sol-1", "ok", Actor{Nombre: "analista"})
	if !errx.HasCode(err, solicitud.ErrCandidatoEmailMissingCode) {
		t.Fatalf("expected CANDIDATO_EMAIL_MISSING, got %v", err)
	}
	if repo.updates != 0 {
		t.Errorf("solicitud must not change estado on a failed validation")
	}
	if got := repo.solicitudes["sol-1"].Estado; got != solicitud.EstadoPendienteDocumentos {
		t.Errorf("estado = %q, want pendiente documentos", got)
	}
}

func TestValidarDocumentosAdvances(t *testing.T) {
	repo := newFakeRepo(solicitudEn(solicitud.EstadoPendienteDocumentos))
	dir := &fakeDirectory{info: &solicitud.CandidatoInfo{
		ID:    kernel.CandidatoID("cand-1"),
		Email: kernel.Email("laura@example.com"),
	}}
	svc := newService(repo, dir, nil, nil)

	entity, err := svc.ValidarDocumentos(context.Background(), "sol-1", "todo en orden", Actor{Nombre: "analista"})
	if err != nil {
		t.Fatalf("ValidarDocumentos: %v", err)
	}
	if entity.Estado != solicitud.EstadoDocumentosEntregados {
		t.Errorf("estado = %q, want documentos entregados", entity.Estado)
	}
	if len(repo.observaciones) != 1 {
		t.Errorf("expected one audit entry, got %d", len(repo.observaciones))
	}
}

func TestCitarExamenesWithoutCoverage(t *testing.T) {
	repo := newFakeRepo(solicitudEn(solicitud.EstadoDocumentosEntregados))
	dir := &fakeDirectory{info: &solicitud.CandidatoInfo{
		ID:       kernel.CandidatoID("cand-1"),
		Email:    kernel.Email("laura@example.com"),
		CiudadID: kernel.CiudadID("leticia"),
	}}
	sched := &fakeScheduler{}
	svc := newService(repo, dir, &fakeCoverage{covered: false}, sched)

	_, err := svc.CitarExamenes(context.Background(), "sol-1", solicitud.CitarExamenesRequest{Fecha: "2026-09-15 08:00"}, Actor{Nombre: "analista"})
	if !errx.HasCode(err, solicitud.ErrNoPrestadoresCode) {
		t.Fatalf("expected NO_PRESTADORES, got %v", err)
	}
	if len(sched.requests) != 0 {
		t.Errorf("no cita should be scheduled without coverage")
	}
	if got := repo.solicitudes["sol-1"].Estado; got != solicitud.EstadoDocumentosEntregados {
		t.Errorf("estado = %q, want documentos entregados", got)
	}
}

func TestCitarExamenesCiudadOverride(t *testing.T) {
	repo := newFakeRepo(solicitudEn(solicitud.EstadoDocumentosEntregados))
	dir := &fakeDirectory{info: &solicitud.CandidatoInfo{
		ID:       kernel.CandidatoID("cand-1"),
		Email:    kernel.Email("laura@example.com"),
		CiudadID: kernel.CiudadID("leticia"),
	}}
	sched := &fakeScheduler{}
	svc := newService(repo, dir, &fakeCoverage{covered: true}, sched)

	req := solicitud.CitarExamenesRequest{CiudadID: kernel.CiudadID("bogota"), Fecha: "2026-09-15 08:00"}
	entity, err := svc.CitarExamenes(context.Background(), "sol-1", req, Actor{Nombre: "analista"})
	if err != nil {
		t.Fatalf("CitarExamenes: %v", err)
	}
	if entity.Estado != solicitud.EstadoCitadoExamenes {
		t.Errorf("estado = %q, want citado examenes", entity.Estado)
	}
	if len(sched.requests) != 1 || sched.requests[0].CiudadID != "bogota" {
		t.Errorf("cita should use the override ciudad, got %+v", sched.requests)
	}
}

func TestCitarExamenesSchedulerFailureLeavesEstado(t *testing.T) {
	repo := newFakeRepo(solicitudEn(solicitud.EstadoDocumentosEntregados))
	dir := &fakeDirectory{info: &solicitud.CandidatoInfo{
		ID:       kernel.CandidatoID("cand-1"),
		Email:    kernel.Email("laura@example.com"),
		CiudadID: kernel.CiudadID("bogota"),
	}}
	schedErr := errx.Wrap(errors.New("fecha fuera de rango"), "fecha inválida", errx.TypeValidation)
	sched := &fakeScheduler{err: schedErr}
	svc := newService(repo, dir, &fakeCoverage{covered: true}, sched)

	_, err := svc.CitarExamenes(context.Background(), "sol-1", solicitud.CitarExamenesRequest{Fecha: "no es fecha"}, Actor{Nombre: "analista"})
	if err != schedErr {
		t.Fatalf("scheduler error should pass through untranslated, got %v", err)
	}
	if repo.updates != 0 {
		t.Errorf("solicitud must not change estado when scheduling fails")
	}
	if got := repo.solicitudes["sol-1"].Estado; got != solicitud.EstadoDocumentosEntregados {
		t.Errorf("estado = %q, want documentos entregados", got)
	}
	if len(repo.observaciones) != 0 {
		t.Errorf("no audit entry expected for a failed citación, got %d", len(repo.observaciones))
	}
}

func TestAprobarTwoStage(t *testing.T) {
	repo := newFakeRepo(solicitudEn(solicitud.EstadoValidacionCliente))
	svc := newService(repo, nil, nil, nil)

	entity, err := svc.Aprobar(context.Background(), "sol-1", "", Actor{Nombre: "cliente"})
	if err != nil {
		t.Fatalf("Aprobar desde validacion cliente: %v", err)
	}
	if entity.Estado != solicitud.EstadoPendiente {
		t.Fatalf("estado = %q, want pendiente", entity.Estado)
	}

	entity, err = svc.Aprobar(context.Background(), "sol-1", "", Actor{Nombre: "coordinador"})
	if err != nil {
		t.Fatalf("Aprobar desde pendiente: %v", err)
	}
	if entity.Estado != solicitud.EstadoPendienteAsignacion {
		t.Errorf("estado = %q, want pendiente asignacion", entity.Estado)
	}
}

func TestStandByRequiresObservacion(t *testing.T) {
	repo := newFakeRepo(solicitudEn(solicitud.EstadoPendiente))
	svc := newService(repo, nil, nil, nil)

	_, err := svc.StandBy(context.Background(), "sol-1", "", Actor{Nombre: "analista"})
	if !errx.HasCode(err, solicitud.ErrObservacionRequiredCode) {
		t.Fatalf("expected OBSERVACION_REQUIRED, got %v", err)
	}
}
