package solicitudapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/solicitud"
	"github.com/vinculohr/vinculo/seleccion/solicitud/solicitudsrv"
)

// Handlers provides HTTP handlers for solicitud operations
type Handlers struct {
	service *solicitudsrv.SolicitudService
}

// NewHandlers creates a new solicitud handlers instance
func NewHandlers(service *solicitudsrv.SolicitudService) *Handlers {
	return &Handlers{
		service: service,
	}
}

func actorFrom(c *fiber.Ctx) solicitudsrv.Actor {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return solicitudsrv.Actor{}
	}
	userID := authContext.UserID
	return solicitudsrv.Actor{ID: &userID, Nombre: authContext.Email}
}

// CreateSolicitud creates a new solicitud
// POST /api/solicitudes
func (h *Handlers) CreateSolicitud(c *fiber.Ctx) error {
	var req solicitud.CreateSolicitudRequest
	if err := c.BodyParser(&req); err != nil {
		return solicitud.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if authContext, ok := auth.GetAuthContext(c); ok {
		userID := authContext.UserID
		req.CreatedBy = &userID
	}

	created, err := h.service.Create(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created.ToResponse())
}

// ListSolicitudes retrieves solicitudes with filters and pagination
// GET /api/solicitudes
func (h *Handlers) ListSolicitudes(c *fiber.Ctx) error {
	var filter solicitud.ListFilter
	if err := c.QueryParser(&filter); err != nil {
		return solicitud.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	result, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}

	items := make([]solicitud.SolicitudResponse, len(result.Items))
	for i := range result.Items {
		items[i] = result.Items[i].ToResponse()
	}

	return c.JSON(solicitud.PaginatedSolicitudesResponse{
		Items: items,
		Page:  result.Page,
		Empty: result.Empty,
	})
}

// GetSolicitudByID retrieves a solicitud by ID
// GET /api/solicitudes/:id
func (h *Handlers) GetSolicitudByID(c *fiber.Ctx) error {
	solicitudID := kernel.SolicitudID(c.Params("id"))
	if solicitudID == "" {
		return solicitud.ErrSolicitudNotFound().WithDetail("id", "missing or empty")
	}

	entity, err := h.service.Get(c.Context(), solicitudID)
	if err != nil {
		return err
	}

	return c.JSON(entity.ToResponse())
}

// GetObservaciones retrieves the audit trail of a solicitud
// GET /api/solicitudes/:id/observaciones
func (h *Handlers) GetObservaciones(c *fiber.Ctx) error {
	solicitudID := kernel.SolicitudID(c.Params("id"))
	if solicitudID == "" {
		return solicitud.ErrSolicitudNotFound().WithDetail("id", "missing or empty")
	}

	observaciones, err := h.service.Observaciones(c.Context(), solicitudID)
	if err != nil {
		return err
	}

	return c.JSON(observaciones)
}

// DeleteSolicitud deletes a solicitud
// DELETE /api/solicitudes/:id
func (h *Handlers) DeleteSolicitud(c *fiber.Ctx) error {
	solicitudID := kernel.SolicitudID(c.Params("id"))
	if solicitudID == "" {
		return solicitud.ErrSolicitudNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.Delete(c.Context(), solicitudID, actorFrom(c)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Solicitud eliminada"})
}

// UpdateEstado applies a generic estado change
// PATCH /api/solicitudes/:id/estado
func (h *Handlers) UpdateEstado(c *fiber.Ctx) error {
	solicitudID := kernel.SolicitudID(c.Params("id"))
	if solicitudID == "" {
		return solicitud.ErrSolicitudNotFound().WithDetail("id", "missing or empty")
	}

	var req solicitud.UpdateEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return solicitud.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	entity, err := h.service.UpdateEstado(c.Context(), solicitudID, req, actorFrom(c))
	if err != nil {
		return err
	}

	return c.JSON(entity.ToResponse())
}

// ============================================================================
// Action Endpoints
// ============================================================================

type actionFunc func(c *fiber.Ctx, id kernel.SolicitudID, observacion string) (*solicitud.Solicitud, error)

func (h *Handlers) action(fn actionFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		solicitudID := kernel.SolicitudID(c.Params("id"))
		if solicitudID == "" {
			return solicitud.ErrSolicitudNotFound().WithDetail("id", "missing or empty")
		}

		var req solicitud.ActionRequest
		if err := c.BodyParser(&req); err != nil && err != fiber.ErrUnprocessableEntity {
			return solicitud.ErrInvalidRequest().WithDetail("parse_error", err.Error())
		}

		entity, err := fn(c, solicitudID, req.Observacion)
		if err != nil {
			return err
		}

		return c.JSON(entity.ToResponse())
	}
}

// Asignar assigns an analista
// POST /api/solicitudes/:id/asignar
func (h *Handlers) Asignar(c *fiber.Ctx) error {
	solicitudID := kernel.SolicitudID(c.Params("id"))
	if solicitudID == "" {
		return solicitud.ErrSolicitudNotFound().WithDetail("id", "missing or empty")
	}

	var req solicitud.AsignarRequest
	if err := c.BodyParser(&req); err != nil {
		return solicitud.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	entity, err := h.service.Asignar(c.Context(), solicitudID, req, actorFrom(c))
	if err != nil {
		return err
	}

	return c.JSON(entity.ToResponse())
}

// CitarExamenes books the exam appointment
// POST /api/solicitudes/:id/citar-examenes
func (h *Handlers) CitarExamenes(c *fiber.Ctx) error {
	solicitudID := kernel.SolicitudID(c.Params("id"))
	if solicitudID == "" {
		return solicitud.ErrSolicitudNotFound().WithDetail("id", "missing or empty")
	}

	var req solicitud.CitarExamenesRequest
	if err := c.BodyParser(&req); err != nil {
		return solicitud.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	entity, err := h.service.CitarExamenes(c.Context(), solicitudID, req, actorFrom(c))
	if err != nil {
		return err
	}

	return c.JSON(entity.ToResponse())
}

// RegisterRoutes registers all solicitud routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/solicitudes")

	api.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeSolicitudesRead),
		handlers.ListSolicitudes,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeSolicitudesRead),
		handlers.GetSolicitudByID,
	)

	api.Get("/:id/observaciones",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeSolicitudesRead),
		handlers.GetObservaciones,
	)

	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeSolicitudesWrite),
		handlers.CreateSolicitud,
	)

	api.Patch("/:id/estado",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeSolicitudesWrite),
		handlers.UpdateEstado,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeSolicitudesDelete),
		handlers.DeleteSolicitud,
	)

	// One endpoint per lifecycle action.
	svc := handlers.service
	actions := []struct {
		path  string
		scope string
		fn    actionFunc
	}{
		{"/:id/aprobar", auth.ScopeSolicitudesApprove, func(c *fiber.Ctx, id kernel.SolicitudID, obs string) (*solicitud.Solicitud, error) {
			return svc.Aprobar(c.Context(), id, obs, actorFrom(c))
		}},
		{"/:id/contactar", auth.ScopeSolicitudesWrite, func(c *fiber.Ctx, id kernel.SolicitudID, obs string) (*solicitud.Solicitud, error) {
			return svc.Contactar(c.Context(), id, obs, actorFrom(c))
		}},
		{"/:id/stand-by", auth.ScopeSolicitudesWrite, func(c *fiber.Ctx, id kernel.SolicitudID, obs string) (*solicitud.Solicitud, error) {
			return svc.StandBy(c.Context(), id, obs, actorFrom(c))
		}},
		{"/:id/reactivar", auth.ScopeSolicitudesWrite, func(c *fiber.Ctx, id kernel.SolicitudID, obs string) (*solicitud.Solicitud, error) {
			return svc.Reactivar(c.Context(), id, obs, actorFrom(c))
		}},
		{"/:id/deserto", auth.ScopeSolicitudesWrite, func(c *fiber.Ctx, id kernel.SolicitudID, obs string) (*solicitud.Solicitud, error) {
			return svc.Deserto(c.Context(), id, obs, actorFrom(c))
		}},
		{"/:id/descartar", auth.ScopeSolicitudesWrite, func(c *fiber.Ctx, id kernel.SolicitudID, obs string) (*solicitud.Solicitud, error) {
			return svc.Descartado(c.Context(), id, obs, actorFrom(c))
		}},
		{"/:id/cancelar", auth.ScopeSolicitudesWrite, func(c *fiber.Ctx, id kernel.SolicitudID, obs string) (*solicitud.Solicitud, error) {
			return svc.Cancelar(c.Context(), id, obs, actorFrom(c))
		}},
		{"/:id/contratar", auth.ScopeSolicitudesContract, func(c *fiber.Ctx, id kernel.SolicitudID, obs string) (*solicitud.Solicitud, error) {
			return svc.Contratar(c.Context(), id, obs, actorFrom(c))
		}},
		{"/:id/validar-documentos", auth.ScopeSolicitudesWrite, func(c *fiber.Ctx, id kernel.SolicitudID, obs string) (*solicitud.Solicitud, error) {
			return svc.ValidarDocumentos(c.Context(), id, obs, actorFrom(c))
		}},
		{"/:id/devolver-documentos", auth.ScopeSolicitudesWrite, func(c *fiber.Ctx, id kernel.SolicitudID, obs string) (*solicitud.Solicitud, error) {
			return svc.DevolverDocumentos(c.Context(), id, obs, actorFrom(c))
		}},
	}

	for _, a := range actions {
		api.Post(a.path,
			authMiddleware.Authenticate(),
			authMiddleware.RequireScope(a.scope),
			handlers.action(a.fn),
		)
	}

	api.Post("/:id/asignar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeSolicitudesAssign),
		handlers.Asignar,
	)

	api.Post("/:id/citar-examenes",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeSolicitudesWrite),
		handlers.CitarExamenes,
	)
}
