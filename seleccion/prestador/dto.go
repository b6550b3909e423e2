package prestador

import (
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// CreatePrestadorRequest is the payload to register a prestador
type CreatePrestadorRequest struct {
	Nombre    string          `json:"nombre" validate:"required"`
	NIT       string          `json:"nit" validate:"required"`
	Email     kernel.Email    `json:"email" validate:"required"`
	Phone     kernel.Phone    `json:"phone"`
	Direccion string          `json:"direccion"`
	CiudadID  kernel.CiudadID `json:"ciudadId" validate:"required"`
	Servicios []TipoServicio  `json:"servicios"`
}

// UpdatePrestadorRequest is the payload to update a prestador
type UpdatePrestadorRequest struct {
	Nombre    *string          `json:"nombre,omitempty"`
	Email     *kernel.Email    `json:"email,omitempty"`
	Phone     *kernel.Phone    `json:"phone,omitempty"`
	Direccion *string          `json:"direccion,omitempty"`
	CiudadID  *kernel.CiudadID `json:"ciudadId,omitempty"`
	Servicios []TipoServicio   `json:"servicios,omitempty"`
}

// PrestadorResponse is the API representation of a prestador
type PrestadorResponse struct {
	ID        kernel.PrestadorID `json:"id"`
	Nombre    string             `json:"nombre"`
	NIT       string             `json:"nit"`
	Email     kernel.Email       `json:"email"`
	Phone     kernel.Phone       `json:"phone"`
	Direccion string             `json:"direccion"`
	CiudadID  kernel.CiudadID    `json:"ciudadId"`
	Servicios []TipoServicio     `json:"servicios"`
	Status    PrestadorStatus    `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// PaginatedPrestadoresResponse is one page of prestadores
type PaginatedPrestadoresResponse struct {
	Items []PrestadorResponse `json:"items"`
	Page  kernel.Page         `json:"page"`
	Empty bool                `json:"empty"`
}

// ToResponse converts a Prestador entity to its API representation
func (p *Prestador) ToResponse() PrestadorResponse {
	return PrestadorResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		NIT:       p.NIT,
		Email:     p.Email,
		Phone:     p.Phone,
		Direccion: p.Direccion,
		CiudadID:  p.CiudadID,
		Servicios: p.Servicios,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
