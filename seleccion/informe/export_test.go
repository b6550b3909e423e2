package informe

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vinculohr/vinculo/seleccion/solicitud"
)

func passthroughResolver(tipo solicitud.CampoTipo, id string) (string, error) {
	return "resolved-" + id, nil
}

func campo(nombre string, tipo solicitud.CampoTipo, valor any, orden int) solicitud.Campo {
	return solicitud.Campo{
		Nombre:   nombre,
		Etiqueta: strings.ToUpper(nombre),
		Tipo:     tipo,
		Valor:    valor,
		Orden:    orden,
	}
}

func rowWith(campos ...solicitud.Campo) solicitud.ExportRow {
	return solicitud.ExportRow{
		Consecutivo:     42,
		NumeroDocumento: "1032456789",
		CandidatoEmail:  "ana@example.com",
		EmpresaNombre:   "Acme SAS",
		EmpresaCiudad:   "Bogotá",
		AnalistaNombre:  "Luis Rojas",
		AnalistaEmail:   "luis@vinculo.co",
		Estado:          solicitud.EstadoEnProceso,
		EstructuraDatos: solicitud.EstructuraDatos{
			Secciones: []solicitud.Seccion{{Nombre: "datos", Orden: 1, Campos: campos}},
		},
		CreatedAt: time.Date(2026, 2, 5, 9, 30, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 2, 6, 14, 45, 10, 0, time.UTC),
	}
}

func headerRow(t *testing.T, rows []solicitud.ExportRow) []string {
	t.Helper()
	f, err := BuildWorkbook(rows, passthroughResolver)
	if err != nil {
		t.Fatalf("BuildWorkbook() error = %v", err)
	}
	got, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(got) == 0 {
		t.Fatal("workbook has no rows")
	}
	return got[0]
}

func TestHeaderStartsWithSystemColumns(t *testing.T) {
	header := headerRow(t, []solicitud.ExportRow{rowWith()})

	if len(header) != len(SystemColumns) {
		t.Fatalf("header = %v, want only the %d system columns", header, len(SystemColumns))
	}
	for i, want := range SystemColumns {
		if header[i] != want {
			t.Errorf("header[%d] = %q, want %q", i, header[i], want)
		}
	}
}

func TestHeaderDedupesAndSortsDynamicColumns(t *testing.T) {
	rows := []solicitud.ExportRow{
		rowWith(campo("salario", solicitud.CampoTipoNumero, 100, 2)),
		rowWith(
			campo("cargo", solicitud.CampoTipoCargoRef, "7", 1),
			campo("salario", solicitud.CampoTipoNumero, 200, 2),
		),
	}

	header := headerRow(t, rows)
	dynamic := header[len(SystemColumns):]

	want := []string{"CARGO", "SALARIO"}
	if len(dynamic) != len(want) {
		t.Fatalf("dynamic columns = %v, want %v", dynamic, want)
	}
	for i := range want {
		if dynamic[i] != want[i] {
			t.Errorf("dynamic[%d] = %q, want %q", i, dynamic[i], want[i])
		}
	}
}

func TestEqualOrdenKeepsDiscoveryOrder(t *testing.T) {
	rows := []solicitud.ExportRow{
		rowWith(
			campo("zona", solicitud.CampoTipoTexto, "norte", 3),
			campo("area", solicitud.CampoTipoTexto, "ventas", 3),
		),
		rowWith(campo("turno", solicitud.CampoTipoTexto, "diurno", 3)),
	}

	header := headerRow(t, rows)
	dynamic := header[len(SystemColumns):]

	want := []string{"ZONA", "AREA", "TURNO"}
	if len(dynamic) != len(want) {
		t.Fatalf("dynamic columns = %v, want %v", dynamic, want)
	}
	for i := range want {
		if dynamic[i] != want[i] {
			t.Errorf("dynamic[%d] = %q, want %q", i, dynamic[i], want[i])
		}
	}
}

func TestBooleanAndFechaFormatting(t *testing.T) {
	rows := []solicitud.ExportRow{rowWith(
		campo("afiliado", solicitud.CampoTipoBooleano, true, 1),
		campo("ingreso", solicitud.CampoTipoFecha, "2026-03-15", 2),
	)}

	f, err := BuildWorkbook(rows, passthroughResolver)
	if err != nil {
		t.Fatalf("BuildWorkbook() error = %v", err)
	}
	got, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}

	data := got[1][len(SystemColumns):]
	if data[0] != "Sí" {
		t.Errorf("booleano = %q, want Sí", data[0])
	}
	if data[1] != "15/03/2026" {
		t.Errorf("fecha = %q, want 15/03/2026", data[1])
	}
}

func TestRefColumnsResolveThroughLookup(t *testing.T) {
	rows := []solicitud.ExportRow{rowWith(
		campo("cargo", solicitud.CampoTipoCargoRef, "7", 1),
	)}

	f, err := BuildWorkbook(rows, passthroughResolver)
	if err != nil {
		t.Fatalf("BuildWorkbook() error = %v", err)
	}
	got, _ := f.GetRows(SheetName)

	if v := got[1][len(SystemColumns)]; v != "resolved-7" {
		t.Errorf("cargo cell = %q, want resolved-7", v)
	}
}

func TestLookupFailureAbortsExport(t *testing.T) {
	rows := []solicitud.ExportRow{rowWith(
		campo("cargo", solicitud.CampoTipoCargoRef, "7", 1),
	)}

	_, err := BuildWorkbook(rows, func(tipo solicitud.CampoTipo, id string) (string, error) {
		return "", fmt.Errorf("lookup down")
	})
	if err == nil {
		t.Fatal("BuildWorkbook() succeeded despite failing lookup")
	}
}

func TestNumericColumnDetectionAtThreshold(t *testing.T) {
	values := func(vs ...string) []string { return vs }

	cases := []struct {
		name   string
		col    exportColumn
		values []string
		want   bool
	}{
		{"declared numero", exportColumn{Tipo: solicitud.CampoTipoNumero}, values("abc"), true},
		{"telefono never numeric", exportColumn{Tipo: solicitud.CampoTipoTelefono}, values("3001112233", "3004445566"), false},
		{"exactly 80 percent", exportColumn{Tipo: solicitud.CampoTipoTexto}, values("1", "2", "3", "4", "x"), true},
		{"below threshold", exportColumn{Tipo: solicitud.CampoTipoTexto}, values("1", "2", "3", "x", "y"), false},
		{"empties ignored", exportColumn{Tipo: solicitud.CampoTipoTexto}, values("", "", "10", "20"), true},
		{"all empty", exportColumn{Tipo: solicitud.CampoTipoTexto}, values("", ""), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isNumericColumn(tc.col, tc.values); got != tc.want {
				t.Errorf("isNumericColumn() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNameHeuristicFallback(t *testing.T) {
	cases := map[string]solicitud.CampoTipo{
		"cargoSolicitado":  solicitud.CampoTipoCargoRef,
		"ciudadResidencia": solicitud.CampoTipoCiudadRef,
		"sucursalPago":     solicitud.CampoTipoSucursalRef,
		"centrocostoId":    solicitud.CampoTipoCentroRef,
		"telefonoFijo":     solicitud.CampoTipoTelefono,
		"celular":          solicitud.CampoTipoTelefono,
		"observaciones":    solicitud.CampoTipoTexto,
	}

	for nombre, want := range cases {
		if got := refTipoFromNombre(nombre); got != want {
			t.Errorf("refTipoFromNombre(%q) = %q, want %q", nombre, got, want)
		}
	}
}

func TestClampWidth(t *testing.T) {
	if clampWidth(4) != 10 {
		t.Error("narrow width not raised to 10")
	}
	if clampWidth(80) != 50 {
		t.Error("wide width not clamped to 50")
	}
	if clampWidth(23) != 23 {
		t.Error("in-range width changed")
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 9, 1, 16, 5, 9, 0, time.UTC)
	want := "Solicitudes_2026-09-01_16-05-09.xlsx"
	if got := Filename(ts); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestSystemCellFormatting(t *testing.T) {
	f, err := BuildWorkbook([]solicitud.ExportRow{rowWith()}, passthroughResolver)
	if err != nil {
		t.Fatalf("BuildWorkbook() error = %v", err)
	}
	got, _ := f.GetRows(SheetName)
	data := got[1]

	if data[0] != "42" {
		t.Errorf("CONSECUTIVO = %q, want 42", data[0])
	}
	if data[8] != "05/02/2026" {
		t.Errorf("FECHA SOLICITUD = %q, want 05/02/2026", data[8])
	}
	if data[9] != "06/02/2026" {
		t.Errorf("FECHA MODIFICACIÓN = %q, want 06/02/2026", data[9])
	}
	if data[10] != "14:45:10" {
		t.Errorf("HORA MODIFICACIÓN = %q, want 14:45:10", data[10])
	}
}
