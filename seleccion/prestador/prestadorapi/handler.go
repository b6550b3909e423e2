package prestadorapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/prestador"
	"github.com/vinculohr/vinculo/seleccion/prestador/prestadorsrv"
)

// Handlers provides HTTP handlers for prestador administration
type Handlers struct {
	service *prestadorsrv.PrestadorService
}

// NewHandlers creates a new prestador handlers instance
func NewHandlers(service *prestadorsrv.PrestadorService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreatePrestador registers a new prestador
// POST /api/prestadores
func (h *Handlers) CreatePrestador(c *fiber.Ctx) error {
	var req prestador.CreatePrestadorRequest
	if err := c.BodyParser(&req); err != nil {
		return prestador.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.Create(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created.ToResponse())
}

// GetPrestadorByID retrieves a prestador by ID
// GET /api/prestadores/:id
func (h *Handlers) GetPrestadorByID(c *fiber.Ctx) error {
	prestadorID := kernel.PrestadorID(c.Params("id"))
	if prestadorID == "" {
		return prestador.ErrPrestadorNotFound().WithDetail("id", "missing or empty")
	}

	entity, err := h.service.Get(c.Context(), prestadorID)
	if err != nil {
		return err
	}

	return c.JSON(entity.ToResponse())
}

// ListPrestadores retrieves prestadores with pagination. When the ciudadId
// query param is present the result is the unpaginated active coverage
// for that ciudad instead.
// GET /api/prestadores
func (h *Handlers) ListPrestadores(c *fiber.Ctx) error {
	if ciudadID := c.Query("ciudadId"); ciudadID != "" {
		items, err := h.service.ListByCiudad(c.Context(), kernel.CiudadID(ciudadID))
		if err != nil {
			return err
		}

		responses := make([]prestador.PrestadorResponse, len(items))
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

	items := make([]prestador.PrestadorResponse, len(result.Items))
	for i := range result.Items {
		items[i] = result.Items[i].ToResponse()
	}

	return c.JSON(prestador.PaginatedPrestadoresResponse{
		Items: items,
		Page:  result.Page,
		Empty: result.Empty,
	})
}

// UpdatePrestador updates a prestador
// PUT /api/prestadores/:id
func (h *Handlers) UpdatePrestador(c *fiber.Ctx) error {
	prestadorID := kernel.PrestadorID(c.Params("id"))
	if prestadorID == "" {
		return prestador.ErrPrestadorNotFound().WithDetail("id", "missing or empty")
	}

	var req prestador.UpdatePrestadorRequest
	if err := c.BodyParser(&req); err != nil {
		return prestador.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.Update(c.Context(), prestadorID, req)
	if err != nil {
		return err
	}

	return c.JSON(updated.ToResponse())
}

// ActivatePrestador marks a prestador as available for scheduling
// POST /api/prestadores/:id/activar
func (h *Handlers) ActivatePrestador(c *fiber.Ctx) error {
	updated, err := h.service.Activate(c.Context(), kernel.PrestadorID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(updated.ToResponse())
}

// DeactivatePrestador removes a prestador from scheduling
// POST /api/prestadores/:id/desactivar
func (h *Handlers) DeactivatePrestador(c *fiber.Ctx) error {
	updated, err := h.service.Deactivate(c.Context(), kernel.PrestadorID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(updated.ToResponse())
}

// RegisterRoutes registers all prestador routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/prestadores")

	api.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopePrestadoresRead),
		handlers.ListPrestadores,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopePrestadoresRead),
		handlers.GetPrestadorByID,
	)

	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopePrestadoresWrite),
		handlers.CreatePrestador,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopePrestadoresWrite),
		handlers.UpdatePrestador,
	)

	api.Post("/:id/activar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopePrestadoresWrite),
		handlers.ActivatePrestador,
	)

	api.Post("/:id/desactivar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopePrestadoresWrite),
		handlers.DeactivatePrestador,
	)
}
