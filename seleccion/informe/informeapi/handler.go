package informeapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/seleccion/informe"
	"github.com/vinculohr/vinculo/seleccion/informe/informesrv"
	"github.com/vinculohr/vinculo/seleccion/solicitud"
)

// Handlers provides HTTP handlers for reporting
type Handlers struct {
	service *informesrv.InformeService
}

// NewHandlers creates a new informe handlers instance
func NewHandlers(service *informesrv.InformeService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ExportSolicitudes streams the spreadsheet download for the filtered
// solicitud set. The filter accepts the same query params as the list.
// GET /api/informes/solicitudes/export
func (h *Handlers) ExportSolicitudes(c *fiber.Ctx) error {
	var filter solicitud.ListFilter
	if err := c.QueryParser(&filter); err != nil {
		return informe.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	filter = filter.Normalize()

	data, filename, err := h.service.Export(c.Context(), filter)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

// Dashboard returns solicitud aggregates for a date range
// GET /api/informes/dashboard
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	var req informe.DashboardRequest
	if err := c.QueryParser(&req); err != nil {
		return informe.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Dashboard(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all informe routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/informes")

	api.Get("/solicitudes/export",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeSolicitudesExport),
		handlers.ExportSolicitudes,
	)

	api.Get("/dashboard",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeInformesView),
		handlers.Dashboard,
	)
}
