package candidato

import (
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// CreateCandidatoRequest - DTO for registering a candidato
type CreateCandidatoRequest struct {
	DocumentoTipo   kernel.DocumentoType `json:"documento_tipo" validate:"required"`
	DocumentoNumero string               `json:"documento_numero" validate:"required"`
	FirstName       kernel.FirstName     `json:"first_name" validate:"required"`
	LastName        kernel.LastName      `json:"last_name" validate:"required"`
	Email           kernel.Email         `json:"email"`
	Phone           kernel.Phone         `json:"phone"`
	CiudadID        kernel.CiudadID      `json:"ciudad_id"`
	Password        string               `json:"password"`
}

// UpdateCandidatoRequest - DTO for updating a candidato
type UpdateCandidatoRequest struct {
	FirstName *kernel.FirstName `json:"first_name,omitempty"`
	LastName  *kernel.LastName  `json:"last_name,omitempty"`
	Email     *kernel.Email     `json:"email,omitempty"`
	Phone     *kernel.Phone     `json:"phone,omitempty"`
	CiudadID  *kernel.CiudadID  `json:"ciudad_id,omitempty"`
}

// CandidatoResponse - DTO for returning candidato data
type CandidatoResponse struct {
	ID        kernel.CandidatoID `json:"id"`
	Documento kernel.Documento   `json:"documento"`
	FirstName kernel.FirstName   `json:"first_name"`
	LastName  kernel.LastName    `json:"last_name"`
	Email     kernel.Email       `json:"email"`
	Phone     kernel.Phone       `json:"phone"`
	CiudadID  kernel.CiudadID    `json:"ciudad_id"`
	Status    CandidatoStatus    `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ToResponse converts the entity for API output
func (c *Candidato) ToResponse() CandidatoResponse {
	return CandidatoResponse{
		ID:        c.ID,
		Documento: c.Documento,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		CiudadID:  c.CiudadID,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// Response type alias for paginated candidatos
type PaginatedCandidatosResponse = kernel.Paginated[CandidatoResponse]

// SubmitDocumentsRequest - one submission from the candidato portal.
// Files travel as multipart form data, not in this body.
type SubmitDocumentsRequest struct {
	SolicitudID kernel.SolicitudID `json:"solicitud_id" validate:"required"`
}

// DocumentFile is one uploaded file already read from the request
type DocumentFile struct {
	Nombre      string
	ContentType string
	Data        []byte
}
