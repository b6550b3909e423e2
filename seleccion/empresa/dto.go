package empresa

import (
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// CreateEmpresaRequest - DTO for registering an empresa
type CreateEmpresaRequest struct {
	NIT                string             `json:"nit" validate:"required"`
	RazonSocial        kernel.RazonSocial `json:"razon_social" validate:"required"`
	Email              kernel.Email       `json:"email" validate:"required"`
	Phone              kernel.Phone       `json:"phone"`
	CiudadID           kernel.CiudadID    `json:"ciudad_id"`
	Password           string             `json:"password"`
	RequiereAprobacion bool               `json:"requiere_aprobacion"`
}

// UpdateEmpresaRequest - DTO for updating an empresa
type UpdateEmpresaRequest struct {
	RazonSocial        *kernel.RazonSocial `json:"razon_social,omitempty"`
	Email              *kernel.Email       `json:"email,omitempty"`
	Phone              *kernel.Phone       `json:"phone,omitempty"`
	CiudadID           *kernel.CiudadID    `json:"ciudad_id,omitempty"`
	RequiereAprobacion *bool               `json:"requiere_aprobacion,omitempty"`
}

// EmpresaResponse - DTO for returning empresa data
type EmpresaResponse struct {
	ID                 kernel.EmpresaID   `json:"id"`
	NIT                string             `json:"nit"`
	RazonSocial        kernel.RazonSocial `json:"razon_social"`
	Email              kernel.Email       `json:"email"`
	Phone              kernel.Phone       `json:"phone"`
	CiudadID           kernel.CiudadID    `json:"ciudad_id"`
	RequiereAprobacion bool               `json:"requiere_aprobacion"`
	Status             EmpresaStatus      `json:"status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// ToResponse converts the entity for API output
func (e *Empresa) ToResponse() EmpresaResponse {
	return EmpresaResponse{
		ID:                 e.ID,
		NIT:                e.NIT,
		RazonSocial:        e.RazonSocial,
		Email:              e.Email,
		Phone:              e.Phone,
		CiudadID:           e.CiudadID,
		RequiereAprobacion: e.RequiereAprobacion,
		Status:             e.Status,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// Response type alias for paginated empresas
type PaginatedEmpresasResponse = kernel.Paginated[EmpresaResponse]
