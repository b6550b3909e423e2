package cita

import (
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// CitaEstado represents the lifecycle state of a cita
type CitaEstado string

const (
	CitaEstadoProgramada CitaEstado = "programada"
	CitaEstadoCumplida   CitaEstado = "cumplida"
	CitaEstadoCancelada  CitaEstado = "cancelada"
)

// TipoCita identifies what the appointment is for
type TipoCita string

const (
	TipoCitaExamenes TipoCita = "examenes"
)

// Cita is an appointment booking a candidato with a prestador,
// created when a solicitud moves to citado examenes.
type Cita struct {
	ID          kernel.CitaID      `db:"id" json:"id"`
	SolicitudID kernel.SolicitudID `db:"solicitud_id" json:"solicitud_id"`
	CandidatoID kernel.CandidatoID `db:"candidato_id" json:"candidato_id"`
	PrestadorID kernel.PrestadorID `db:"prestador_id" json:"prestador_id"`
	CiudadID    kernel.CiudadID    `db:"ciudad_id" json:"ciudad_id"`
	Tipo        TipoCita           `db:"tipo" json:"tipo"`
	Fecha       time.Time          `db:"fecha" json:"fecha"`
	Estado      CitaEstado         `db:"estado" json:"estado"`
	CreatedAt   time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsPending checks whether the cita is still scheduled
func (c *Cita) IsPending() bool {
	return c.Estado == CitaEstadoProgramada
}

// Cumplir marks the cita as attended. Only scheduled citas can be fulfilled.
func (c *Cita) Cumplir() error {
	if c.Estado != CitaEstadoProgramada {
		return ErrCitaNotPending().WithDetail("estado", string(c.Estado))
	}
	c.Estado = CitaEstadoCumplida
	c.UpdatedAt = time.Now()
	return nil
}

// Cancelar cancels a scheduled cita
func (c *Cita) Cancelar() error {
	if c.Estado != CitaEstadoProgramada {
		return ErrCitaNotPending().WithDetail("estado", string(c.Estado))
	}
	c.Estado = CitaEstadoCancelada
	c.UpdatedAt = time.Now()
	return nil
}

// Reprogramar moves a scheduled cita to a new prestador, ciudad and fecha
func (c *Cita) Reprogramar(prestadorID kernel.PrestadorID, ciudadID kernel.CiudadID, fecha time.Time) error {
	if c.Estado != CitaEstadoProgramada {
		return ErrCitaNotPending().WithDetail("estado", string(c.Estado))
	}
	c.PrestadorID = prestadorID
	c.CiudadID = ciudadID
	c.Fecha = fecha
	c.UpdatedAt = time.Now()
	return nil
}
