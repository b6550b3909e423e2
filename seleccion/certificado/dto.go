package certificado

import (
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// IssueRequest asks for a certificado to be emitted and delivered
type IssueRequest struct {
	SolicitudID kernel.SolicitudID `json:"solicitudId" validate:"required"`
	Canal       Canal              `json:"canal" validate:"required"`
	Destino     string             `json:"destino" validate:"required"`
}

// CertificadoResponse is the API representation of a certificado
type CertificadoResponse struct {
	ID          kernel.CertificadoID `json:"id"`
	SolicitudID kernel.SolicitudID   `json:"solicitudId"`
	CandidatoID kernel.CandidatoID   `json:"candidatoId"`
	Codigo      string               `json:"codigo"`
	Estado      CertificadoEstado    `json:"estado"`
	EmitidoAt   time.Time            `json:"emitidoAt"`
	EntregadoAt *time.Time           `json:"entregadoAt,omitempty"`
}

// ToResponse converts a Certificado entity to its API representation
func (c *Certificado) ToResponse() CertificadoResponse {
	return CertificadoResponse{
		ID:          c.ID,
		SolicitudID: c.SolicitudID,
		CandidatoID: c.CandidatoID,
		Codigo:      c.Codigo,
		Estado:      c.Estado,
		EmitidoAt:   c.EmitidoAt,
		EntregadoAt: c.EntregadoAt,
	}
}

// PaginatedCertificadosResponse is one page of certificados
type PaginatedCertificadosResponse struct {
	Items []CertificadoResponse `json:"items"`
	Page  kernel.Page           `json:"page"`
	Empty bool                  `json:"empty"`
}

// VerificationResponse is the public answer for a verification code
type VerificationResponse struct {
	Valido    bool      `json:"valido"`
	Codigo    string    `json:"codigo"`
	EmitidoAt time.Time `json:"emitidoAt"`
}
