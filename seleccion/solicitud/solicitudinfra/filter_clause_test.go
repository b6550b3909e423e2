package solicitudinfra

import (
	"strings"
	"testing"

	"github.com/vinculohr/vinculo/seleccion/solicitud"
)

func TestBuildFilterClauseSolicitudID(t *testing.T) {
	tests := []struct {
		name        string
		solicitudID string
		wantCond    string
		wantArg     any
	}{
		{
			name:        "numeric value filters on the consecutivo shown in the grid",
			solicitudID: "12",
			wantCond:    "s.consecutivo = $1",
			wantArg:     int64(12),
		},
		{
			name:        "uuid falls back to the primary key",
			solicitudID: "7b0e9f04-3a6c-4bb4-9a39-8f1b2b4f0b10",
			wantCond:    "s.id = $1",
			wantArg:     "7b0e9f04-3a6c-4bb4-9a39-8f1b2b4f0b10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildFilterClause(solicitud.ListFilter{SolicitudID: tt.solicitudID})
			if !strings.Contains(where, tt.wantCond) {
				t.Errorf("where = %q, want condition %q", where, tt.wantCond)
			}
			if len(args) != 1 || args[0] != tt.wantArg {
				t.Errorf("args = %#v, want [%#v]", args, tt.wantArg)
			}
		})
	}
}

func TestBuildFilterClauseEmptyFilter(t *testing.T) {
	where, args := buildFilterClause(solicitud.ListFilter{Page: 1, PageSize: 100})
	if where != "" || args != nil {
		t.Errorf("empty filter should yield no clause, got %q / %#v", where, args)
	}
}

func TestBuildFilterClauseCombines(t *testing.T) {
	where, args := buildFilterClause(solicitud.ListFilter{
		SolicitudID: "42",
		Estado:      "pendiente",
		EmpresaID:   "emp-1",
	})
	for _, cond := range []string{"s.consecutivo = $1", "s.estado = $2", "s.empresa_id = $3"} {
		if !strings.Contains(where, cond) {
			t.Errorf("where = %q, missing %q", where, cond)
		}
	}
	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}
