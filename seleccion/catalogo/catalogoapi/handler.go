package catalogoapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/seleccion/catalogo"
	"github.com/vinculohr/vinculo/seleccion/catalogo/catalogosrv"
)

// Handlers provides HTTP handlers for catalog administration
type Handlers struct {
	service *catalogosrv.CatalogoService
}

// NewHandlers creates a new catalogo handlers instance
func NewHandlers(service *catalogosrv.CatalogoService) *Handlers {
	return &Handlers{
		service: service,
	}
}

func kindFrom(c *fiber.Ctx) (catalogo.Kind, error) {
	kind := catalogo.Kind(c.Params("kind"))
	if !kind.IsValid() {
		return "", catalogo.ErrUnknownKind(string(kind))
	}
	return kind, nil
}

// ListItems retrieves all entries of one catalog
// GET /api/catalogos/:kind
func (h *Handlers) ListItems(c *fiber.Ctx) error {
	kind, err := kindFrom(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Context(), kind)
	if err != nil {
		return err
	}

	return c.JSON(items)
}

// GetItem retrieves one catalog entry
// GET /api/catalogos/:kind/:id
func (h *Handlers) GetItem(c *fiber.Ctx) error {
	kind, err := kindFrom(c)
	if err != nil {
		return err
	}

	item, err := h.service.Get(c.Context(), kind, c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(item)
}

// CreateItem adds a catalog entry
// POST /api/catalogos/:kind
func (h *Handlers) CreateItem(c *fiber.Ctx) error {
	kind, err := kindFrom(c)
	if err != nil {
		return err
	}

	var req catalogo.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return catalogo.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	item, err := h.service.Create(c.Context(), kind, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem renames or toggles a catalog entry
// PUT /api/catalogos/:kind/:id
func (h *Handlers) UpdateItem(c *fiber.Ctx) error {
	kind, err := kindFrom(c)
	if err != nil {
		return err
	}

	var req catalogo.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return catalogo.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	item, err := h.service.Update(c.Context(), kind, c.Params("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(item)
}

// RegisterRoutes registers all catalogo routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/catalogos")

	api.Get("/:kind",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCatalogosRead),
		handlers.ListItems,
	)

	api.Get("/:kind/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCatalogosRead),
		handlers.GetItem,
	)

	api.Post("/:kind",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCatalogosWrite),
		handlers.CreateItem,
	)

	api.Put("/:kind/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCatalogosWrite),
		handlers.UpdateItem,
	)
}
