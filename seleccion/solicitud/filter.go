package solicitud

import (
	"strings"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

const (
	// DefaultPageSize matches the page size the listing always requests.
	DefaultPageSize = 100
	MaxPageSize     = 500
	// MinNombreLength is the shortest nombre filter worth matching on.
	MinNombreLength = 4
)

// ListFilter carries the query parameters of the listing endpoint.
// Zero values mean "not filtered".
type ListFilter struct {
	SolicitudID     string `query:"solicitudId"`
	NumeroDocumento string `query:"numeroDocumento"`
	NombreCandidato string `query:"nombreCandidato"`
	CargoID         string `query:"cargoId"`
	Estado          string `query:"estado"`
	EmpresaID       string `query:"empresaId"`
	Page            int    `query:"page"`
	PageSize        int    `query:"pageSize"`
}

// Normalize trims inputs, drops filters too weak to match on and coerces
// pagination into range. It never rejects; bad values fall back to defaults.
func (f ListFilter) Normalize() ListFilter {
	f.SolicitudID = strings.TrimSpace(f.SolicitudID)
	f.NumeroDocumento = strings.TrimSpace(f.NumeroDocumento)
	f.CargoID = strings.TrimSpace(f.CargoID)
	f.Estado = strings.TrimSpace(f.Estado)
	f.EmpresaID = strings.TrimSpace(f.EmpresaID)

	// A nombre of 3 characters or fewer matches too broadly to be useful.
	f.NombreCandidato = strings.TrimSpace(f.NombreCandidato)
	if len([]rune(f.NombreCandidato)) < MinNombreLength {
		f.NombreCandidato = ""
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}

	return f
}

// IsEmpty reports whether no filter besides pagination is set
func (f ListFilter) IsEmpty() bool {
	return f.SolicitudID == "" &&
		f.NumeroDocumento == "" &&
		f.NombreCandidato == "" &&
		f.CargoID == "" &&
		f.Estado == "" &&
		f.EmpresaID == ""
}

// Pagination converts the filter into kernel pagination options
func (f ListFilter) Pagination() kernel.PaginationOptions {
	return kernel.PaginationOptions{Page: f.Page, PageSize: f.PageSize}
}
