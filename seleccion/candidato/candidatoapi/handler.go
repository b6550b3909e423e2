package candidatoapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/candidato"
	"github.com/vinculohr/vinculo/seleccion/candidato/candidatosrv"
)

// Handlers provides HTTP handlers for candidato administration
type Handlers struct {
	service *candidatosrv.CandidatoService
}

// NewHandlers creates a new candidato handlers instance
func NewHandlers(service *candidatosrv.CandidatoService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateCandidato registers a new candidato
// POST /api/candidatos
func (h *Handlers) CreateCandidato(c *fiber.Ctx) error {
	var req candidato.CreateCandidatoRequest
	if err := c.BodyParser(&req); err != nil {
		return candidato.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.Create(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created.ToResponse())
}

// GetCandidatoByID retrieves a candidato by ID
// GET /api/candidatos/:id
func (h *Handlers) GetCandidatoByID(c *fiber.Ctx) error {
	candidatoID := kernel.CandidatoID(c.Params("id"))
	if candidatoID == "" {
		return candidato.ErrCandidatoNotFound().WithDetail("id", "missing or empty")
	}

	entity, err := h.service.Get(c.Context(), candidatoID)
	if err != nil {
		return err
	}

	return c.JSON(entity.ToResponse())
}

// ListCandidatos retrieves candidatos with pagination
// GET /api/candidatos
func (h *Handlers) ListCandidatos(c *fiber.Ctx) error {
	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 50),
	}

	result, err := h.service.List(c.Context(), pagination)
	if err != nil {
		return err
	}

	items := make([]candidato.CandidatoResponse, len(result.Items))
	for i := range result.Items {
		items[i] = result.Items[i].ToResponse()
	}

	return c.JSON(candidato.PaginatedCandidatosResponse{
		Items: items,
		Page:  result.Page,
		Empty: result.Empty,
	})
}

// UpdateCandidato updates a candidato
// PUT /api/candidatos/:id
func (h *Handlers) UpdateCandidato(c *fiber.Ctx) error {
	candidatoID := kernel.CandidatoID(c.Params("id"))
	if candidatoID == "" {
		return candidato.ErrCandidatoNotFound().WithDetail("id", "missing or empty")
	}

	var req candidato.UpdateCandidatoRequest
	if err := c.BodyParser(&req); err != nil {
		return candidato.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.Update(c.Context(), candidatoID, req)
	if err != nil {
		return err
	}

	return c.JSON(updated.ToResponse())
}

// ArchiveCandidato archives a candidato
// POST /api/candidatos/:id/archive
func (h *Handlers) ArchiveCandidato(c *fiber.Ctx) error {
	candidatoID := kernel.CandidatoID(c.Params("id"))
	if candidatoID == "" {
		return candidato.ErrCandidatoNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.Archive(c.Context(), candidatoID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Candidato archivado"})
}

// UnarchiveCandidato restores an archived candidato
// POST /api/candidatos/:id/unarchive
func (h *Handlers) UnarchiveCandidato(c *fiber.Ctx) error {
	candidatoID := kernel.CandidatoID(c.Params("id"))
	if candidatoID == "" {
		return candidato.ErrCandidatoNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.Unarchive(c.Context(), candidatoID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Candidato restaurado"})
}

// GetEntregas lists the documents submitted for a solicitud
// GET /api/candidatos/entregas/:solicitudId
func (h *Handlers) GetEntregas(c *fiber.Ctx) error {
	solicitudID := kernel.SolicitudID(c.Params("solicitudId"))
	if solicitudID == "" {
		return candidato.ErrInvalidRequest().WithDetail("solicitud_id", "missing or empty")
	}

	entregas, err := h.service.Entregas(c.Context(), solicitudID)
	if err != nil {
		return err
	}

	return c.JSON(entregas)
}

// RegisterRoutes registers all candidato admin routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/candidatos")

	api.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCandidatosRead),
		handlers.ListCandidatos,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCandidatosRead),
		handlers.GetCandidatoByID,
	)

	api.Get("/entregas/:solicitudId",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCandidatosRead),
		handlers.GetEntregas,
	)

	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCandidatosWrite),
		handlers.CreateCandidato,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCandidatosWrite),
		handlers.UpdateCandidato,
	)

	api.Post("/:id/archive",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCandidatosWrite),
		handlers.ArchiveCandidato,
	)

	api.Post("/:id/unarchive",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCandidatosWrite),
		handlers.UnarchiveCandidato,
	)
}
