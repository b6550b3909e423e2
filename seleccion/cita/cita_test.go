package cita

import (
	"testing"
	"time"

	"github.com/vinculohr/vinculo/pkg/errx"
	"github.com/vinculohr/vinculo/pkg/kernel"
)

func newProgramada() *Cita {
	return &Cita{
		ID:          "cita-1",
		SolicitudID: "sol-1",
		CandidatoID: "cand-1",
		PrestadorID: "prest-1",
		CiudadID:    "ciudad-1",
		Tipo:        TipoCitaExamenes,
		Fecha:       time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		Estado:      CitaEstadoProgramada,
	}
}

func TestCumplir(t *testing.T) {
	c := newProgramada()

	if err := c.Cumplir(); err != nil {
		t.Fatalf("Cumplir() error = %v", err)
	}
	if c.Estado != CitaEstadoCumplida {
		t.Errorf("Estado = %q, want %q", c.Estado, CitaEstadoCumplida)
	}

	if err := c.Cumplir(); !errx.HasCode(err, ErrCitaNotPendingCode) {
		t.Errorf("Cumplir() on cumplida = %v, want %s", err, ErrCitaNotPendingCode)
	}
}

func TestCancelarOnlyWhenProgramada(t *testing.T) {
	c := newProgramada()
	c.Estado = CitaEstadoCancelada

	if err := c.Cancelar(); !errx.HasCode(err, ErrCitaNotPendingCode) {
		t.Errorf("Cancelar() on cancelada = %v, want %s", err, ErrCitaNotPendingCode)
	}
}

func TestReprogramar(t *testing.T) {
	c := newProgramada()
	fecha := time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC)

	if err := c.Reprogramar(kernel.PrestadorID("prest-2"), kernel.CiudadID("ciudad-2"), fecha); err != nil {
		t.Fatalf("Reprogramar() error = %v", err)
	}

	if c.PrestadorID != "prest-2" || c.CiudadID != "ciudad-2" || !c.Fecha.Equal(fecha) {
		t.Errorf("Reprogramar() did not move the cita: %+v", c)
	}
	if c.Estado != CitaEstadoProgramada {
		t.Errorf("Estado = %q, want it to stay programada", c.Estado)
	}
}

func TestReprogramarRejectedAfterCumplida(t *testing.T) {
	c := newProgramada()
	if err := c.Cumplir(); err != nil {
		t.Fatalf("Cumplir() error = %v", err)
	}

	err := c.Reprogramar(kernel.PrestadorID("prest-2"), kernel.CiudadID("ciudad-2"), time.Now())
	if !errx.HasCode(err, ErrCitaNotPendingCode) {
		t.Errorf("Reprogramar() on cumplida = %v, want %s", err, ErrCitaNotPendingCode)
	}
}
