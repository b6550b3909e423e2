package informe

import (
	"time"

	"github.com/vinculohr/vinculo/seleccion/solicitud"
)

// DateLayout is the wire format for dashboard date ranges
const DateLayout = "2006-01-02"

// DashboardRequest bounds the aggregation window, inclusive on both ends
type DashboardRequest struct {
	Desde string `query:"desde"`
	Hasta string `query:"hasta"`
}

// Normalize defaults the window to the last 30 days and validates dates
func (r *DashboardRequest) Normalize(now time.Time) error {
	if r.Hasta == "" {
		r.Hasta = now.Format(DateLayout)
	}
	if r.Desde == "" {
		r.Desde = now.AddDate(0, 0, -30).Format(DateLayout)
	}

	desde, err := time.Parse(DateLayout, r.Desde)
	if err != nil {
		return ErrInvalidRango(r.Desde)
	}
	hasta, err := time.Parse(DateLayout, r.Hasta)
	if err != nil {
		return ErrInvalidRango(r.Hasta)
	}
	if hasta.Before(desde) {
		return ErrInvalidRango(r.Desde + " > " + r.Hasta)
	}

	return nil
}

// EstadoCount is one slice of the dashboard's estado breakdown
type EstadoCount struct {
	Estado solicitud.Estado `json:"estado"`
	Total  int64            `json:"total"`
}

// EmpresaCount is one slice of the dashboard's empresa breakdown
type EmpresaCount struct {
	Empresa string `json:"empresa"`
	Total   int64  `json:"total"`
}

// DashboardResponse is the aggregate report for the admin dashboard
type DashboardResponse struct {
	Desde      string         `json:"desde"`
	Hasta      string         `json:"hasta"`
	Total      int64          `json:"total"`
	PorEstado  []EstadoCount  `json:"por_estado"`
	PorEmpresa []EmpresaCount `json:"por_empresa"`
}
