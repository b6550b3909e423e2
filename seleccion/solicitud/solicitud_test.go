package solicitud

import (
	"testing"

	"github.com/vinculohr/vinculo/pkg/errx"
)

func newSolicitud(estado Estado) *Solicitud {
	return &Solicitud{ID: "sol-1", Estado: estado}
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from Estado
		to   Estado
		want bool
	}{
		{"validacion cliente aprobada por cliente", EstadoValidacionCliente, EstadoPendiente, true},
		{"validacion cliente no salta asignacion", EstadoValidacionCliente, EstadoAsignado, false},
		{"pendiente pasa a pendiente asignacion", EstadoPendiente, EstadoPendienteAsignacion, true},
		{"pendiente no pasa directo a asignado", EstadoPendiente, EstadoAsignado, false},
		{"pendiente asignacion se asigna", EstadoPendienteAsignacion, EstadoAsignado, true},
		{"asignado se contacta", EstadoAsignado, EstadoEnProceso, true},
		{"asignado no entrega documentos", EstadoAsignado, EstadoPendienteDocumentos, false},
		{"en proceso recibe documentos", EstadoEnProceso, EstadoPendienteDocumentos, true},
		{"pendiente documentos se valida", EstadoPendienteDocumentos, EstadoDocumentosEntregados, true},
		{"pendiente documentos se devuelve", EstadoPendienteDocumentos, EstadoDocumentosDevueltos, true},
		{"documentos devueltos se reentregan", EstadoDocumentosDevueltos, EstadoPendienteDocumentos, true},
		{"documentos entregados citan examenes", EstadoDocumentosEntregados, EstadoCitadoExamenes, true},
		{"documentos entregados pueden devolverse", EstadoDocumentosEntregados, EstadoDocumentosDevueltos, true},
		{"citado examenes contrata", EstadoCitadoExamenes, EstadoFirmaContrato, true},
		{"citado examenes rechaza", EstadoCitadoExamenes, EstadoRechazada, true},
		{"firma contrato marca contratado", EstadoFirmaContrato, EstadoContratado, true},
		{"firma contrato marca aprobada", EstadoFirmaContrato, EstadoAprobada, true},
		{"cualquier vivo puede cancelarse", EstadoEnProceso, EstadoCancelada, true},
		{"stand by deserta", EstadoStandBy, EstadoDeserto, true},
		{"terminal aprobada no transiciona", EstadoAprobada, EstadoPendiente, false},
		{"terminal contratado no transiciona", EstadoContratado, EstadoCancelada, false},
		{"terminal descartado no transiciona", EstadoDescartado, EstadoPendiente, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSolicitud(tt.from)
			if got := s.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%q→%q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCambiarEstadoRejectsIllegalTransition(t *testing.T) {
	s := newSolicitud(EstadoPendiente)

	err := s.CambiarEstado(EstadoContratado)
	if err == nil {
		t.Fatal("expected error for illegal transition")
	}
	if !errx.HasCode(err, ErrInvalidStateTransitionCode) {
		t.Errorf("unexpected error code: %v", err)
	}
	if s.Estado != EstadoPendiente {
		t.Errorf("estado mutated on rejected transition: %q", s.Estado)
	}
}

func TestCambiarEstadoRejectsUnknownEstado(t *testing.T) {
	s := newSolicitud(EstadoPendiente)

	if err := s.CambiarEstado(Estado("inventado")); err == nil {
		t.Fatal("expected error for unknown estado")
	}
	if s.Estado != EstadoPendiente {
		t.Errorf("estado mutated on rejected transition: %q", s.Estado)
	}
}

func TestStandByCapturesEstadoAnterior(t *testing.T) {
	s := newSolicitud(EstadoEnProceso)

	if err := s.CambiarEstado(EstadoStandBy); err != nil {
		t.Fatalf("stand by: %v", err)
	}
	if s.EstadoAnterior == nil || *s.EstadoAnterior != EstadoEnProceso {
		t.Fatalf("estado_anterior = %v, want en_proceso", s.EstadoAnterior)
	}

	if err := s.Reactivar(); err != nil {
		t.Fatalf("reactivar: %v", err)
	}
	if s.Estado != EstadoEnProceso {
		t.Errorf("estado = %q after reactivar, want en_proceso", s.Estado)
	}
	if s.EstadoAnterior != nil {
		t.Errorf("estado_anterior not cleared after reactivar")
	}
}

func TestReactivarOutsideStandBy(t *testing.T) {
	s := newSolicitud(EstadoAsignado)

	if err := s.Reactivar(); err == nil {
		t.Fatal("expected error reactivating outside stand by")
	}
	if s.Estado != EstadoAsignado {
		t.Errorf("estado mutated: %q", s.Estado)
	}
}

func TestReactivarViaCanTransition(t *testing.T) {
	anterior := EstadoPendienteDocumentos
	s := &Solicitud{ID: "sol-1", Estado: EstadoStandBy, EstadoAnterior: &anterior}

	if !s.CanTransitionTo(EstadoPendienteDocumentos) {
		t.Error("stand by should allow returning to the captured estado")
	}
	if s.CanTransitionTo(EstadoAsignado) {
		t.Error("stand by should reject estados other than the captured one")
	}
}

func TestAsignarAnalista(t *testing.T) {
	s := newSolicitud(EstadoPendienteAsignacion)

	if err := s.AsignarAnalista("user-9"); err != nil {
		t.Fatalf("asignar: %v", err)
	}
	if s.Estado != EstadoAsignado {
		t.Errorf("estado = %q, want asignado", s.Estado)
	}
	if s.AnalistaID == nil || *s.AnalistaID != "user-9" {
		t.Errorf("analista_id = %v, want user-9", s.AnalistaID)
	}

	pendiente := newSolicitud(EstadoPendiente)
	if err := pendiente.AsignarAnalista("user-9"); err == nil {
		t.Error("expected error assigning from pendiente")
	}
}

func TestEstructuraDatosCamposOrdered(t *testing.T) {
	ed := EstructuraDatos{
		Secciones: []Seccion{
			{Nombre: "laboral", Orden: 2, Campos: []Campo{
				{Nombre: "cargo", Orden: 1, Tipo: CampoTipoCargoRef},
			}},
			{Nombre: "personal", Orden: 1, Campos: []Campo{
				{Nombre: "telefono", Orden: 2, Tipo: CampoTipoTelefono},
				{Nombre: "nombre", Orden: 1, Tipo: CampoTipoTexto},
			}},
		},
	}

	campos := ed.Campos()
	want := []string{"nombre", "telefono", "cargo"}
	if len(campos) != len(want) {
		t.Fatalf("got %d campos, want %d", len(campos), len(want))
	}
	for i, nombre := range want {
		if campos[i].Nombre != nombre {
			t.Errorf("campos[%d] = %q, want %q", i, campos[i].Nombre, nombre)
		}
	}
}
