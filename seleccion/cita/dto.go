package cita

import (
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// FechaLayout is the wire format for cita dates
const FechaLayout = "2006-01-02 15:04"

// ReprogramarRequest moves a cita to another prestador coverage area
type ReprogramarRequest struct {
	CiudadID kernel.CiudadID `json:"ciudadId" validate:"required"`
	Fecha    string          `json:"fecha" validate:"required"`
}

// CitaResponse is the API representation of a cita
type CitaResponse struct {
	ID          kernel.CitaID      `json:"id"`
	SolicitudID kernel.SolicitudID `json:"solicitudId"`
	CandidatoID kernel.CandidatoID `json:"candidatoId"`
	PrestadorID kernel.PrestadorID `json:"prestadorId"`
	CiudadID    kernel.CiudadID    `json:"ciudadId"`
	Tipo        TipoCita           `json:"tipo"`
	Fecha       time.Time          `json:"fecha"`
	Estado      CitaEstado         `json:"estado"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToResponse converts a Cita entity to its API representation
func (c *Cita) ToResponse() CitaResponse {
	return CitaResponse{
		ID:          c.ID,
		SolicitudID: c.SolicitudID,
		CandidatoID: c.CandidatoID,
		PrestadorID: c.PrestadorID,
		CiudadID:    c.CiudadID,
		Tipo:        c.Tipo,
		Fecha:       c.Fecha,
		Estado:      c.Estado,
		CreatedAt:   c.CreatedAt,
	}
}

// PaginatedCitasResponse is one page of citas
type PaginatedCitasResponse struct {
	Items []CitaResponse `json:"items"`
	Page  kernel.Page    `json:"page"`
	Empty bool           `json:"empty"`
}
