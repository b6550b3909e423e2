package certificadosrv

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/vinculohr/vinculo/pkg/fsx"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/pkg/logx"
	"github.com/vinculohr/vinculo/seleccion/certificado"
)

// CertificadoService emits hiring certificates and drives their delivery
type CertificadoService struct {
	repo            certificado.Repository
	gate            certificado.SolicitudGate
	queue           certificado.JobQueue
	notifier        certificado.Notifier
	files           fsx.FileSystem
	verificationURL string
}

// NewCertificadoService creates a new certificado service. verificationURL
// is the public base the QR points at, e.g. https://vinculo.example.com/verificar
func NewCertificadoService(
	repo certificado.Repository,
	gate certificado.SolicitudGate,
	queue certificado.JobQueue,
	notifier certificado.Notifier,
	files fsx.FileSystem,
	verificationURL string,
) *CertificadoService {
	return &CertificadoService{
		repo:            repo,
		gate:            gate,
		queue:           queue,
		notifier:        notifier,
		files:           files,
		verificationURL: verificationURL,
	}
}

// Issue emits a certificado for a contratado solicitud: persists the
// record, renders the QR and enqueues the delivery job.
func (s *CertificadoService) Issue(ctx context.Context, req certificado.IssueRequest) (*certificado.Certificado, error) {
	if !req.Canal.IsValid() {
		return nil, certificado.ErrInvalidCanal(string(req.Canal))
	}

	info, err := s.gate.GetEstadoInfo(ctx, req.SolicitudID)
	if err != nil {
		return nil, err
	}
	if !info.Contratado {
		return nil, certificado.ErrSolicitudNotContratado(string(req.SolicitudID))
	}

	codigo := certificado.NewCodigo()
	qrPath := s.files.Join("certificados", string(req.SolicitudID), codigo+".png")

	// 256px is plenty for phone camera scans
	png, err := qrcode.Encode(fmt.Sprintf("%s/%s", s.verificationURL, codigo), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr: %w", err)
	}

	if err := s.files.WriteFile(ctx, qrPath, png); err != nil {
		return nil, fmt.Errorf("failed to store qr: %w", err)
	}

	now := time.Now()
	entity := &certificado.Certificado{
		ID:          kernel.CertificadoID(uuid.New().String()),
		SolicitudID: req.SolicitudID,
		Codigo:      codigo,
		QRPath:      qrPath,
		Estado:      certificado.CertificadoEstadoEmitido,
		EmitidoAt:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if info.CandidatoID != nil {
		entity.CandidatoID = *info.CandidatoID
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		// The QR object is orphaned on conflict; best effort cleanup
		if delErr := s.files.DeleteFile(ctx, qrPath); delErr != nil {
			logx.Warnf("failed to clean up qr %s: %v", qrPath, delErr)
		}
		return nil, err
	}

	job := certificado.NewDeliveryJob(entity.ID, req.Canal, req.Destino)
	if err := s.queue.Enqueue(ctx, job.ID, job); err != nil {
		// Issuance stands; delivery can be re-triggered
		logx.Errorf("failed to enqueue delivery for certificado %s: %v", entity.ID, err)
	}

	return entity, nil
}

// Get retrieves a certificado by ID
func (s *CertificadoService) Get(ctx context.Context, id kernel.CertificadoID) (*certificado.Certificado, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySolicitud retrieves the certificado issued for a solicitud
func (s *CertificadoService) GetBySolicitud(ctx context.Context, solicitudID kernel.SolicitudID) (*certificado.Certificado, error) {
	return s.repo.GetBySolicitud(ctx, solicitudID)
}

// List retrieves certificados with pagination
func (s *CertificadoService) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[certificado.Certificado], error) {
	return s.repo.List(ctx, pagination)
}

// Verify answers the public verification lookup for a code
func (s *CertificadoService) Verify(ctx context.Context, codigo string) (*certificado.VerificationResponse, error) {
	entity, err := s.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}

	return &certificado.VerificationResponse{
		Valido:    true,
		Codigo:    entity.Codigo,
		EmitidoAt: entity.EmitidoAt,
	}, nil
}

// QRStream opens the stored QR image of a certificado
func (s *CertificadoService) QRStream(ctx context.Context, id kernel.CertificadoID) (*certificado.Certificado, error) {
	return s.repo.GetByID(ctx, id)
}

// Redeliver enqueues a fresh delivery job for an already issued certificado
func (s *CertificadoService) Redeliver(ctx context.Context, id kernel.CertificadoID, canal certificado.Canal, destino string) error {
	if !canal.IsValid() {
		return certificado.ErrInvalidCanal(string(canal))
	}

	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	job := certificado.NewDeliveryJob(entity.ID, canal, destino)
	return s.queue.Enqueue(ctx, job.ID, job)
}

// ProcessDeliveryJob attempts one delivery. On failure the job goes back
// through the delayed queue until its retry budget runs out.
func (s *CertificadoService) ProcessDeliveryJob(ctx context.Context, job *certificado.DeliveryJob) error {
	entity, err := s.repo.GetByID(ctx, job.CertificadoID)
	if err != nil {
		return err
	}

	job.Attempts++

	if err := s.notifier.SendCertificado(ctx, job.Canal, job.Destino, entity); err != nil {
		if job.CanRetry() {
			logx.Warnf("delivery of certificado %s failed (attempt %d/%d), retrying: %v",
				entity.ID, job.Attempts, job.MaxAttempts, err)
			return s.queue.EnqueueDelayed(ctx, job.ID, job, job.NextDelay())
		}

		entity.MarkFallido()
		if updErr := s.repo.Update(ctx, entity.ID, entity); updErr != nil {
			logx.Errorf("failed to mark certificado %s fallido: %v", entity.ID, updErr)
		}
		return fmt.Errorf("delivery of certificado %s exhausted retries: %w", entity.ID, err)
	}

	entity.MarkEntregado()
	if err := s.repo.Update(ctx, entity.ID, entity); err != nil {
		return fmt.Errorf("failed to mark certificado %s entregado: %w", entity.ID, err)
	}

	return nil
}
