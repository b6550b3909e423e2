package certificado

import (
	"context"
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// Repository defines the interface for certificado persistence
type Repository interface {
	Create(ctx context.Context, c *Certificado) error
	Update(ctx context.Context, id kernel.CertificadoID, c *Certificado) error
	GetByID(ctx context.Context, id kernel.CertificadoID) (*Certificado, error)
	GetByCodigo(ctx context.Context, codigo string) (*Certificado, error)
	GetBySolicitud(ctx context.Context, solicitudID kernel.SolicitudID) (*Certificado, error)
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Certificado], error)
}

// JobQueue is the delivery queue for certificado distribution
type JobQueue interface {
	Enqueue(ctx context.Context, jobID string, payload any) error
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)
	EnqueueDelayed(ctx context.Context, jobID string, payload any, delay time.Duration) error
	MoveDelayedToReady(ctx context.Context) (int, error)
	GetQueueSize(ctx context.Context) (int64, error)
	GetDelayedQueueSize(ctx context.Context) (int64, error)
}

// Notifier delivers a certificado through a channel. The bundled
// implementation only logs; real transports plug in here.
type Notifier interface {
	SendCertificado(ctx context.Context, canal Canal, destino string, cert *Certificado) error
}

// SolicitudGate exposes the slice of solicitud state issuance depends on
type SolicitudGate interface {
	GetEstadoInfo(ctx context.Context, solicitudID kernel.SolicitudID) (EstadoInfo, error)
}

// EstadoInfo is what the gate reports about a solicitud
type EstadoInfo struct {
	Contratado  bool
	CandidatoID *kernel.CandidatoID
}
