package informe

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/vinculohr/vinculo/seleccion/solicitud"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single sheet the export writes
const SheetName = "Solicitudes"

// SystemColumns prefix every export, before the dynamic estructura_datos
// labels.
var SystemColumns = []string{
	"CONSECUTIVO",
	"DOCUMENTO",
	"EMAIL",
	"EMPRESA",
	"CIUDAD EMPRESA",
	"ANALISTA ASIGNADO",
	"EMAIL ANALISTA",
	"ESTADO",
	"FECHA SOLICITUD",
	"FECHA MODIFICACIÓN",
	"HORA MODIFICACIÓN",
}

// Preferred minimum widths for the system columns, by header
var systemColWidths = map[string]float64{
	"CONSECUTIVO":        12,
	"DOCUMENTO":          15,
	"EMAIL":              25,
	"EMPRESA":            25,
	"CIUDAD EMPRESA":     18,
	"ANALISTA ASIGNADO":  22,
	"EMAIL ANALISTA":     25,
	"ESTADO":             20,
	"FECHA SOLICITUD":    16,
	"FECHA MODIFICACIÓN": 18,
	"HORA MODIFICACIÓN":  18,
}

// RefResolver turns a reference-typed campo value into its display name
type RefResolver func(tipo solicitud.CampoTipo, id string) (string, error)

// exportColumn is one dynamic column discovered across the row set
type exportColumn struct {
	Nombre   string
	Etiqueta string
	Tipo     solicitud.CampoTipo
	Orden    int
}

// refTipoFromNombre is the fallback for campos that carry no declared
// tipo: the legacy name heuristics.
func refTipoFromNombre(nombre string) solicitud.CampoTipo {
	n := strings.ToLower(nombre)
	switch {
	case strings.Contains(n, "cargo"):
		return solicitud.CampoTipoCargoRef
	case strings.Contains(n, "ciudad"):
		return solicitud.CampoTipoCiudadRef
	case strings.Contains(n, "sucursal"):
		return solicitud.CampoTipoSucursalRef
	case strings.Contains(n, "centrocosto"), strings.Contains(n, "centro de costo"):
		return solicitud.CampoTipoCentroRef
	case strings.Contains(n, "telefono"), strings.Contains(n, "celular"):
		return solicitud.CampoTipoTelefono
	}
	return solicitud.CampoTipoTexto
}

func effectiveTipo(c solicitud.Campo) solicitud.CampoTipo {
	if c.Tipo != "" {
		return c.Tipo
	}
	return refTipoFromNombre(c.Nombre)
}

// collectColumns builds the dynamic column set: deduplicated by nombre
// (first occurrence wins), ordered by declared orden with discovery
// order as the tiebreaker.
func collectColumns(rows []solicitud.ExportRow) []exportColumn {
	var columns []exportColumn
	seen := make(map[string]bool)

	for _, row := range rows {
		for _, campo := range row.EstructuraDatos.Campos() {
			if campo.Nombre == "" || seen[campo.Nombre] {
				continue
			}
			seen[campo.Nombre] = true

			etiqueta := campo.Etiqueta
			if etiqueta == "" {
				etiqueta = campo.Nombre
			}
			columns = append(columns, exportColumn{
				Nombre:   campo.Nombre,
				Etiqueta: etiqueta,
				Tipo:     effectiveTipo(campo),
				Orden:    campo.Orden,
			})
		}
	}

	// Stable sort keeps discovery order for equal orden values
	slices.SortStableFunc(columns, func(a, b exportColumn) int {
		return a.Orden - b.Orden
	})

	return columns
}

var fechaLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// formatFecha renders any recognized date input as dd/mm/yyyy
func formatFecha(raw string) string {
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}

func formatBool(v any) string {
	switch b := v.(type) {
	case bool:
		if b {
			return "Sí"
		}
		return "No"
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "si", "sí", "1":
			return "Sí"
		case "false", "no", "0", "":
			return "No"
		}
	}
	return fmt.Sprintf("%v", v)
}

func rawString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		// JSON numbers decode as float64; keep integers clean
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatValor renders one campo value for the spreadsheet, resolving
// reference types through the catalogo lookup
func formatValor(col exportColumn, valor any, resolve RefResolver) (string, error) {
	raw := rawString(valor)
	if raw == "" {
		return "", nil
	}

	switch col.Tipo {
	case solicitud.CampoTipoBooleano:
		return formatBool(valor), nil
	case solicitud.CampoTipoFecha:
		return formatFecha(raw), nil
	case solicitud.CampoTipoCargoRef, solicitud.CampoTipoCiudadRef,
		solicitud.CampoTipoSucursalRef, solicitud.CampoTipoCentroRef:
		nombre, err := resolve(col.Tipo, raw)
		if err != nil {
			return "", fmt.Errorf("resolve %s %q: %w", col.Tipo, raw, err)
		}
		return nombre, nil
	default:
		return raw, nil
	}
}

// numericThreshold: a column whose non-empty values parse as numbers at
// this rate or above gets numeric formatting
const numericThreshold = 0.8

// isNumericColumn decides formatting for a dynamic column. Telefono
// columns are always text regardless of content.
func isNumericColumn(col exportColumn, values []string) bool {
	if col.Tipo == solicitud.CampoTipoTelefono {
		return false
	}
	if col.Tipo == solicitud.CampoTipoNumero {
		return true
	}
	if col.Tipo != solicitud.CampoTipoTexto {
		return false
	}

	nonEmpty, numeric := 0, 0
	for _, v := range values {
		if v == "" {
			continue
		}
		nonEmpty++
		if _, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64); err == nil {
			numeric++
		}
	}
	if nonEmpty == 0 {
		return false
	}
	return float64(numeric)/float64(nonEmpty) >= numericThreshold
}

func clampWidth(w float64) float64 {
	if w < 10 {
		return 10
	}
	if w > 50 {
		return 50
	}
	return w
}

// Filename builds the download name embedding the generation timestamp
func Filename(now time.Time) string {
	return fmt.Sprintf("Solicitudes_%s_%s.xlsx",
		now.Format("2006-01-02"), now.Format("15-04-05"))
}

// BuildWorkbook renders the full export in memory. Any lookup or
// formatting failure aborts the whole build; nothing partial is
// returned.
func BuildWorkbook(rows []solicitud.ExportRow, resolve RefResolver) (*excelize.File, error) {
	columns := collectColumns(rows)
	headers := append(append([]string{}, SystemColumns...), labels(columns)...)

	// Render every cell up front so failures abort before any sheet
	// writes happen
	grid := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, 0, len(headers))
		cells = append(cells,
			strconv.FormatInt(row.Consecutivo, 10),
			row.NumeroDocumento,
			row.CandidatoEmail,
			row.EmpresaNombre,
			row.EmpresaCiudad,
			row.AnalistaNombre,
			row.AnalistaEmail,
			string(row.Estado),
			row.CreatedAt.Format("02/01/2006"),
			row.UpdatedAt.Format("02/01/2006"),
			row.UpdatedAt.Format("15:04:05"),
		)

		byNombre := make(map[string]solicitud.Campo)
		for _, campo := range row.EstructuraDatos.Campos() {
			if _, ok := byNombre[campo.Nombre]; !ok {
				byNombre[campo.Nombre] = campo
			}
		}

		for _, col := range columns {
			campo, ok := byNombre[col.Nombre]
			if !ok {
				cells = append(cells, "")
				continue
			}
			rendered, err := formatValor(col, campo.Valor, resolve)
			if err != nil {
				return nil, err
			}
			cells = append(cells, rendered)
		}

		grid[i] = cells
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	borders := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
		Border:    borders,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Border: borders,
	})
	if err != nil {
		return nil, fmt.Errorf("cell style: %w", err)
	}

	// NumFmt 3 is the builtin thousands separator format #,##0
	numericStyle, err := f.NewStyle(&excelize.Style{
		Border:    borders,
		NumFmt:    3,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("numeric style: %w", err)
	}

	// System columns: only CONSECUTIVO is numeric
	numericCols := make([]bool, len(headers))
	numericCols[0] = true
	for i, col := range columns {
		values := make([]string, len(grid))
		for r := range grid {
			values[r] = grid[r][len(SystemColumns)+i]
		}
		numericCols[len(SystemColumns)+i] = isNumericColumn(col, values)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, fmt.Errorf("write header %q: %w", header, err)
		}
	}

	for r, cells := range grid {
		for c, value := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if numericCols[c] && value != "" {
				if n, perr := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64); perr == nil {
					if err := f.SetCellValue(SheetName, cell, n); err != nil {
						return nil, fmt.Errorf("write cell: %w", err)
					}
					continue
				}
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("write cell: %w", err)
			}
		}
	}

	// Styles: header row, then the data block per column
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, fmt.Errorf("last column: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	if len(grid) > 0 {
		lastRow := strconv.Itoa(len(grid) + 1)
		for c := range headers {
			colName, err := excelize.ColumnNumberToName(c + 1)
			if err != nil {
				return nil, fmt.Errorf("column name: %w", err)
			}
			style := cellStyle
			if numericCols[c] {
				style = numericStyle
			}
			if err := f.SetCellStyle(SheetName, colName+"2", colName+lastRow, style); err != nil {
				return nil, fmt.Errorf("style column %s: %w", colName, err)
			}
		}
	}

	// Widths: max of header and observed values, clamped, with the
	// system minimums on top
	for c, header := range headers {
		width := float64(len([]rune(header)) + 2)
		for r := range grid {
			if w := float64(len([]rune(grid[r][c])) + 2); w > width {
				width = w
			}
		}
		if min, ok := systemColWidths[header]; ok && width < min {
			width = min
		}
		width = clampWidth(width)

		colName, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(SheetName, colName, colName, width); err != nil {
			return nil, fmt.Errorf("set width: %w", err)
		}
	}

	return f, nil
}

func labels(columns []exportColumn) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = col.Etiqueta
	}
	return out
}
