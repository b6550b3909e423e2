package empresaapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/empresa"
	"github.com/vinculohr/vinculo/seleccion/empresa/empresaauth"
	"github.com/vinculohr/vinculo/seleccion/empresa/empresasrv"
	"github.com/vinculohr/vinculo/seleccion/solicitud"
	"github.com/vinculohr/vinculo/seleccion/solicitud/solicitudsrv"
)

// Handlers provides HTTP handlers for empresa administration and the
// empresa portal intake
type Handlers struct {
	service     *empresasrv.EmpresaService
	solicitudes *solicitudsrv.SolicitudService
}

// NewHandlers creates a new empresa handlers instance
func NewHandlers(service *empresasrv.EmpresaService, solicitudes *solicitudsrv.SolicitudService) *Handlers {
	return &Handlers{
		service:     service,
		solicitudes: solicitudes,
	}
}

// CreateEmpresa registers a new empresa
// POST /api/empresas
func (h *Handlers) CreateEmpresa(c *fiber.Ctx) error {
	var req empresa.CreateEmpresaRequest
	if err := c.BodyParser(&req); err != nil {
		return empresa.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.Create(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created.ToResponse())
}

// GetEmpresaByID retrieves an empresa by ID
// GET /api/empresas/:id
func (h *Handlers) GetEmpresaByID(c *fiber.Ctx) error {
	empresaID := kernel.EmpresaID(c.Params("id"))
	if empresaID == "" {
		return empresa.ErrEmpresaNotFound().WithDetail("id", "missing or empty")
	}

	entity, err := h.service.Get(c.Context(), empresaID)
	if err != nil {
		return err
	}

	return c.JSON(entity.ToResponse())
}

// ListEmpresas retrieves empresas with pagination
// GET /api/empresas
func (h *Handlers) ListEmpresas(c *fiber.Ctx) error {
	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 50),
	}

	result, err := h.service.List(c.Context(), pagination)
	if err != nil {
		return err
	}

	items := make([]empresa.EmpresaResponse, len(result.Items))
	for i := range result.Items {
		items[i] = result.Items[i].ToResponse()
	}

	return c.JSON(empresa.PaginatedEmpresasResponse{
		Items: items,
		Page:  result.Page,
		Empty: result.Empty,
	})
}

// UpdateEmpresa updates an empresa
// PUT /api/empresas/:id
func (h *Handlers) UpdateEmpresa(c *fiber.Ctx) error {
	empresaID := kernel.EmpresaID(c.Params("id"))
	if empresaID == "" {
		return empresa.ErrEmpresaNotFound().WithDetail("id", "missing or empty")
	}

	var req empresa.UpdateEmpresaRequest
	if err := c.BodyParser(&req); err != nil {
		return empresa.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.Update(c.Context(), empresaID, req)
	if err != nil {
		return err
	}

	return c.JSON(updated.ToResponse())
}

// ArchiveEmpresa archives an empresa
// POST /api/empresas/:id/archive
func (h *Handlers) ArchiveEmpresa(c *fiber.Ctx) error {
	empresaID := kernel.EmpresaID(c.Params("id"))
	if empresaID == "" {
		return empresa.ErrEmpresaNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.Archive(c.Context(), empresaID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Empresa archivada"})
}

type intakeRequest struct {
	NumeroDocumento string                    `json:"numero_documento"`
	NombreCandidato string                    `json:"nombre_candidato"`
	EstructuraDatos solicitud.EstructuraDatos `json:"estructura_datos"`
}

// CreateSolicitud is the empresa portal intake. The solicitud starts in
// pendiente, or validacion cliente when the empresa is flagged for review.
// POST /api/portal/empresa/solicitudes
func (h *Handlers) CreateSolicitud(c *fiber.Ctx) error {
	empresaID, ok := empresaauth.GetEmpresaID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	entity, err := h.service.Get(c.Context(), empresaID)
	if err != nil {
		return err
	}
	if !entity.IsActive() {
		return empresa.ErrEmpresaInactive()
	}

	var req intakeRequest
	if err := c.BodyParser(&req); err != nil {
		return empresa.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	created, err := h.solicitudes.Create(c.Context(), solicitud.CreateSolicitudRequest{
		EmpresaID:          empresaID,
		NumeroDocumento:    req.NumeroDocumento,
		NombreCandidato:    req.NombreCandidato,
		EstructuraDatos:    req.EstructuraDatos,
		RequiereAprobacion: entity.RequiereAprobacion,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created.ToResponse())
}

// ListOwnSolicitudes lists the solicitudes created by the authenticated empresa
// GET /api/portal/empresa/solicitudes
func (h *Handlers) ListOwnSolicitudes(c *fiber.Ctx) error {
	empresaID, ok := empresaauth.GetEmpresaID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	filter := solicitud.ListFilter{
		EmpresaID: string(empresaID),
		Page:      c.QueryInt("page", 1),
		PageSize:  c.QueryInt("pageSize", 100),
		Estado:    c.Query("estado"),
	}

	result, err := h.solicitudes.List(c.Context(), filter)
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

// RegisterRoutes registers empresa admin and portal routes
func RegisterRoutes(
	app *fiber.App,
	handlers *Handlers,
	authMiddleware *auth.TokenMiddleware,
	tokenService *empresaauth.EmpresaTokenService,
	passwordSvc auth.PasswordService,
	repo empresa.Repository,
) {
	api := app.Group("/api/empresas")

	api.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeEmpresasRead),
		handlers.ListEmpresas,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeEmpresasRead),
		handlers.GetEmpresaByID,
	)

	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeEmpresasWrite),
		handlers.CreateEmpresa,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeEmpresasWrite),
		handlers.UpdateEmpresa,
	)

	api.Post("/:id/archive",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeEmpresasDelete),
		handlers.ArchiveEmpresa,
	)

	portal := app.Group("/api/portal/empresa")
	portal.Post("/login", empresaauth.Login(tokenService, passwordSvc, repo))
	portal.Post("/solicitudes", empresaauth.Middleware(tokenService), handlers.CreateSolicitud)
	portal.Get("/solicitudes", empresaauth.Middleware(tokenService), handlers.ListOwnSolicitudes)
}
