package citaapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/cita"
	"github.com/vinculohr/vinculo/seleccion/cita/citasrv"
)

// Handlers provides HTTP handlers for cita administration
type Handlers struct {
	service *citasrv.CitaService
}

// NewHandlers creates a new cita handlers instance
func NewHandlers(service *citasrv.CitaService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListCitas retrieves citas with pagination. The solicitudId query param
// narrows the result to one solicitud's appointments.
// GET /api/citas
func (h *Handlers) ListCitas(c *fiber.Ctx) error {
	if solicitudID := c.Query("solicitudId"); solicitudID != "" {
		items, err := h.service.ListBySolicitud(c.Context(), kernel.SolicitudID(solicitudID))
		if err != nil {
			return err
		}

		responses := make([]cita.CitaResponse, len(items))
		for i := range items {
			responses[i] = items[i].ToResponse()
		}
		return c.JSON(responses)
	}

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 50),
	}

	result, err := h.service.List(c.Context(), pagination)
	if err != nil {
		return err
	}

	items := make([]cita.CitaResponse, len(result.Items))
	for i := range result.Items {
		items[i] = result.Items[i].ToResponse()
	}

	return c.JSON(cita.PaginatedCitasResponse{
		Items: items,
		Page:  result.Page,
		Empty: result.Empty,
	})
}

// GetCitaByID retrieves a cita by ID
// GET /api/citas/:id
func (h *Handlers) GetCitaByID(c *fiber.Ctx) error {
	citaID := kernel.CitaID(c.Params("id"))
	if citaID == "" {
		return cita.ErrCitaNotFound().WithDetail("id", "missing or empty")
	}

	entity, err := h.service.Get(c.Context(), citaID)
	if err != nil {
		return err
	}

	return c.JSON(entity.ToResponse())
}

// ReprogramarCita moves a scheduled cita to another ciudad and fecha
// POST /api/citas/:id/reprogramar
func (h *Handlers) ReprogramarCita(c *fiber.Ctx) error {
	var req cita.ReprogramarRequest
	if err := c.BodyParser(&req); err != nil {
		return cita.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.Reprogramar(c.Context(), kernel.CitaID(c.Params("id")), req)
	if err != nil {
		return err
	}

	return c.JSON(updated.ToResponse())
}

// CumplirCita marks a cita as attended
// POST /api/citas/:id/cumplir
func (h *Handlers) CumplirCita(c *fiber.Ctx) error {
	updated, err := h.service.Cumplir(c.Context(), kernel.CitaID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(updated.ToResponse())
}

// CancelarCita cancels a scheduled cita
// POST /api/citas/:id/cancelar
func (h *Handlers) CancelarCita(c *fiber.Ctx) error {
	updated, err := h.service.Cancelar(c.Context(), kernel.CitaID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(updated.ToResponse())
}

// RegisterRoutes registers all cita routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/citas")

	api.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCitasRead),
		handlers.ListCitas,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCitasRead),
		handlers.GetCitaByID,
	)

	api.Post("/:id/reprogramar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCitasWrite),
		handlers.ReprogramarCita,
	)

	api.Post("/:id/cumplir",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCitasWrite),
		handlers.CumplirCita,
	)

	api.Post("/:id/cancelar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCitasWrite),
		handlers.CancelarCita,
	)
}
