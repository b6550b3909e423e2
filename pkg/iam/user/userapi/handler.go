package userapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/iam/user"
	"github.com/vinculohr/vinculo/pkg/iam/user/usersrv"
	"github.com/vinculohr/vinculo/pkg/kernel"
)

// Handlers provides HTTP handlers for usuario and perfil management
type Handlers struct {
	service *usersrv.UserService
}

// NewHandlers creates a new user handlers instance
func NewHandlers(service *usersrv.UserService) *Handlers {
	return &Handlers{service: service}
}

// CreateUser creates a new usuario
// POST /api/usuarios
func (h *Handlers) CreateUser(c *fiber.Ctx) error {
	var req usersrv.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	usuario, err := h.service.CreateUser(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// GetUser retrieves a usuario by ID
// GET /api/usuarios/:id
func (h *Handlers) GetUser(c *fiber.Ctx) error {
	id := kernel.UserID(c.Params("id"))
	if id.IsEmpty() {
		return user.ErrUserNotFound().WithDetail("id", "missing or empty")
	}

	usuario, err := h.service.GetUser(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(usuario)
}

// ListUsers retrieves usuarios with pagination
// GET /api/usuarios
func (h *Handlers) ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	usuarios, err := h.service.ListUsers(c.Context(), kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	return c.JSON(usuarios)
}

// UpdateUser updates a usuario
// PUT /api/usuarios/:id
func (h *Handlers) UpdateUser(c *fiber.Ctx) error {
	id := kernel.UserID(c.Params("id"))
	if id.IsEmpty() {
		return user.ErrUserNotFound().WithDetail("id", "missing or empty")
	}

	var req usersrv.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	usuario, err := h.service.UpdateUser(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(usuario)
}

// SuspendUser suspends a usuario
// POST /api/usuarios/:id/suspend
func (h *Handlers) SuspendUser(c *fiber.Ctx) error {
	id := kernel.UserID(c.Params("id"))
	if id.IsEmpty() {
		return user.ErrUserNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.SuspendUser(c.Context(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Usuario suspendido"})
}

// ActivateUser reactivates a usuario
// POST /api/usuarios/:id/activate
func (h *Handlers) ActivateUser(c *fiber.Ctx) error {
	id := kernel.UserID(c.Params("id"))
	if id.IsEmpty() {
		return user.ErrUserNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.ActivateUser(c.Context(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Usuario activado"})
}

type perfilRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Scopes      []string `json:"scopes"`
}

// CreatePerfil creates a new permission profile
// POST /api/perfiles
func (h *Handlers) CreatePerfil(c *fiber.Ctx) error {
	var req perfilRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	perfil, err := h.service.CreatePerfil(c.Context(), req.Name, req.Description, req.Scopes)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(perfil)
}

// ListPerfiles retrieves all perfiles
// GET /api/perfiles
func (h *Handlers) ListPerfiles(c *fiber.Ctx) error {
	perfiles, err := h.service.ListPerfiles(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(perfiles)
}

// UpdatePerfil updates a perfil
// PUT /api/perfiles/:id
func (h *Handlers) UpdatePerfil(c *fiber.Ctx) error {
	id := kernel.PerfilID(c.Params("id"))
	if id.IsEmpty() {
		return user.ErrPerfilNotFound().WithDetail("id", "missing or empty")
	}

	var req perfilRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	perfil, err := h.service.UpdatePerfil(c.Context(), id, req.Name, req.Description, req.Scopes)
	if err != nil {
		return err
	}

	return c.JSON(perfil)
}

// DeletePerfil deletes an unused perfil
// DELETE /api/perfiles/:id
func (h *Handlers) DeletePerfil(c *fiber.Ctx) error {
	id := kernel.PerfilID(c.Params("id"))
	if id.IsEmpty() {
		return user.ErrPerfilNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeletePerfil(c.Context(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// RegisterRoutes registers usuario and perfil routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	usuarios := app.Group("/api/usuarios")

	usuarios.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeUsuariosRead),
		handlers.ListUsers,
	)
	usuarios.Get("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeUsuariosRead),
		handlers.GetUser,
	)
	usuarios.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeUsuariosWrite),
		handlers.CreateUser,
	)
	usuarios.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeUsuariosWrite),
		handlers.UpdateUser,
	)
	usuarios.Post("/:id/suspend",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeUsuariosWrite),
		handlers.SuspendUser,
	)
	usuarios.Post("/:id/activate",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeUsuariosWrite),
		handlers.ActivateUser,
	)

	perfiles := app.Group("/api/perfiles")

	perfiles.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeUsuariosRead),
		handlers.ListPerfiles,
	)
	perfiles.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeUsuariosWrite),
		handlers.CreatePerfil,
	)
	perfiles.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeUsuariosWrite),
		handlers.UpdatePerfil,
	)
	perfiles.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeUsuariosWrite),
		handlers.DeletePerfil,
	)
}
