package informesrv

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/vinculohr/vinculo/seleccion/catalogo"
	"github.com/vinculohr/vinculo/seleccion/informe"
	"github.com/vinculohr/vinculo/seleccion/solicitud"
)

// InformeService produces the export download and the dashboard
// aggregates
type InformeService struct {
	solicitudes solicitud.Repository
	resolver    catalogo.Resolver
}

// NewInformeService creates a new informe service
func NewInformeService(solicitudes solicitud.Repository, resolver catalogo.Resolver) *InformeService {
	return &InformeService{
		solicitudes: solicitudes,
		resolver:    resolver,
	}
}

var tipoToKind = map[solicitud.CampoTipo]catalogo.Kind{
	solicitud.CampoTipoCargoRef:    catalogo.KindCargo,
	solicitud.CampoTipoCiudadRef:   catalogo.KindCiudad,
	solicitud.CampoTipoSucursalRef: catalogo.KindSucursal,
	solicitud.CampoTipoCentroRef:   catalogo.KindCentroCosto,
}

// Export builds the spreadsheet for every solicitud matching the filter.
// Returns the file bytes and the timestamped download name.
func (s *InformeService) Export(ctx context.Context, filter solicitud.ListFilter) ([]byte, string, error) {
	rows, err := s.solicitudes.ListForExport(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	resolve := func(tipo solicitud.CampoTipo, id string) (string, error) {
		kind, ok := tipoToKind[tipo]
		if !ok {
			return id, nil
		}
		return s.resolver.Resolve(ctx, kind, id)
	}

	workbook, err := informe.BuildWorkbook(rows, resolve)
	if err != nil {
		return nil, "", informe.ErrExportFailed().WithCause(err)
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, "", informe.ErrExportFailed().WithCause(err)
	}

	return buf.Bytes(), informe.Filename(time.Now()), nil
}

// Dashboard aggregates solicitud counts over a date range
func (s *InformeService) Dashboard(ctx context.Context, req informe.DashboardRequest) (*informe.DashboardResponse, error) {
	if err := req.Normalize(time.Now()); err != nil {
		return nil, err
	}

	porEstado, err := s.solicitudes.CountByEstado(ctx, req.Desde, req.Hasta)
	if err != nil {
		return nil, err
	}

	porEmpresa, err := s.solicitudes.CountByEmpresa(ctx, req.Desde, req.Hasta)
	if err != nil {
		return nil, err
	}

	resp := &informe.DashboardResponse{
		Desde:      req.Desde,
		Hasta:      req.Hasta,
		PorEstado:  make([]informe.EstadoCount, 0, len(porEstado)),
		PorEmpresa: make([]informe.EmpresaCount, 0, len(porEmpresa)),
	}

	// Report every known estado, including the zeroes
	for _, estado := range solicitud.AllEstados {
		total := porEstado[estado]
		resp.Total += total
		resp.PorEstado = append(resp.PorEstado, informe.EstadoCount{
			Estado: estado,
			Total:  total,
		})
	}

	for empresa, total := range porEmpresa {
		resp.PorEmpresa = append(resp.PorEmpresa, informe.EmpresaCount{
			Empresa: empresa,
			Total:   total,
		})
	}
	slices.SortFunc(resp.PorEmpresa, func(a, b informe.EmpresaCount) int {
		return strings.Compare(a.Empresa, b.Empresa)
	})

	return resp, nil
}
