package certificado

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vinculohr/vinculo/pkg/kernel"
)

// CertificadoEstado represents the delivery state of a certificado
type CertificadoEstado string

const (
	CertificadoEstadoEmitido   CertificadoEstado = "emitido"
	CertificadoEstadoEntregado CertificadoEstado = "entregado"
	CertificadoEstadoFallido   CertificadoEstado = "fallido"
)

// Canal is the channel a certificado is delivered through
type Canal string

const (
	CanalEmail    Canal = "email"
	CanalWhatsapp Canal = "whatsapp"
)

// IsValid checks the canal is a known delivery channel
func (c Canal) IsValid() bool {
	return c == CanalEmail || c == CanalWhatsapp
}

// Certificado records a hiring certificate issued for a contratado
// solicitud. The codigo is the public handle printed in the QR.
type Certificado struct {
	ID          kernel.CertificadoID `db:"id" json:"id"`
	SolicitudID kernel.SolicitudID   `db:"solicitud_id" json:"solicitud_id"`
	CandidatoID kernel.CandidatoID   `db:"candidato_id" json:"candidato_id"`
	Codigo      string               `db:"codigo" json:"codigo"`
	QRPath      string               `db:"qr_path" json:"qr_path"`
	Estado      CertificadoEstado    `db:"estado" json:"estado"`
	EmitidoAt   time.Time            `db:"emitido_at" json:"emitido_at"`
	EntregadoAt *time.Time           `db:"entregado_at" json:"entregado_at,omitempty"`
	CreatedAt   time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `db:"updated_at" json:"updated_at"`
}

// NewCodigo generates a verification code. Codes are short, uppercase
// and unambiguous enough to read over the phone.
func NewCodigo() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:12])
}

// ============================================================================
// Domain Methods
// ============================================================================

// MarkEntregado records a successful delivery
func (c *Certificado) MarkEntregado() {
	now := time.Now()
	c.Estado = CertificadoEstadoEntregado
	c.EntregadoAt = &now
	c.UpdatedAt = now
}

// MarkFallido records that every delivery attempt was exhausted
func (c *Certificado) MarkFallido() {
	c.Estado = CertificadoEstadoFallido
	c.UpdatedAt = time.Now()
}

// DeliveryJob is the queue payload for one certificado delivery attempt
type DeliveryJob struct {
	ID            string               `json:"id"`
	CertificadoID kernel.CertificadoID `json:"certificado_id"`
	Canal         Canal                `json:"canal"`
	Destino       string               `json:"destino"`
	Attempts      int                  `json:"attempts"`
	MaxAttempts   int                  `json:"max_attempts"`
}

// NewDeliveryJob creates a delivery job with the default retry budget
func NewDeliveryJob(certificadoID kernel.CertificadoID, canal Canal, destino string) *DeliveryJob {
	return &DeliveryJob{
		ID:            uuid.New().String(),
		CertificadoID: certificadoID,
		Canal:         canal,
		Destino:       destino,
		Attempts:      0,
		MaxAttempts:   3,
	}
}

// CanRetry checks if the job has attempts left
func (j *DeliveryJob) CanRetry() bool {
	return j.Attempts < j.MaxAttempts
}

// NextDelay returns the backoff before the next attempt
func (j *DeliveryJob) NextDelay() time.Duration {
	return time.Duration(j.Attempts) * 30 * time.Second
}
