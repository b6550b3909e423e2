package certificadoapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/fsx"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/certificado"
	"github.com/vinculohr/vinculo/seleccion/certificado/certificadosrv"
)

// Handlers provides HTTP handlers for certificado administration and
// the public verification lookup
type Handlers struct {
	service *certificadosrv.CertificadoService
	files   fsx.FileSystem
}

// NewHandlers creates a new certificado handlers instance
func NewHandlers(service *certificadosrv.CertificadoService, files fsx.FileSystem) *Handlers {
	return &Handlers{
		service: service,
		files:   files,
	}
}

// IssueCertificado emits a certificado for a contratado solicitud
// POST /api/certificados
func (h *Handlers) IssueCertificado(c *fiber.Ctx) error {
	var req certificado.IssueRequest
	if err := c.BodyParser(&req); err != nil {
		return certificado.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	issued, err := h.service.Issue(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(issued.ToResponse())
}

// GetCertificadoByID retrieves a certificado by ID
// GET /api/certificados/:id
func (h *Handlers) GetCertificadoByID(c *fiber.Ctx) error {
	certificadoID := kernel.CertificadoID(c.Params("id"))
	if certificadoID == "" {
		return certificado.ErrCertificadoNotFound().WithDetail("id", "missing or empty")
	}

	entity, err := h.service.Get(c.Context(), certificadoID)
	if err != nil {
		return err
	}

	return c.JSON(entity.ToResponse())
}

// ListCertificados retrieves certificados with pagination
// GET /api/certificados
func (h *Handlers) ListCertificados(c *fiber.Ctx) error {
	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 50),
	}

	result, err := h.service.List(c.Context(), pagination)
	if err != nil {
		return err
	}

	items := make([]certificado.CertificadoResponse, len(result.Items))
	for i := range result.Items {
		items[i] = result.Items[i].ToResponse()
	}

	return c.JSON(certificado.PaginatedCertificadosResponse{
		Items: items,
		Page:  result.Page,
		Empty: result.Empty,
	})
}

// GetCertificadoQR streams the stored QR image
// GET /api/certificados/:id/qr
func (h *Handlers) GetCertificadoQR(c *fiber.Ctx) error {
	entity, err := h.service.Get(c.Context(), kernel.CertificadoID(c.Params("id")))
	if err != nil {
		return err
	}

	stream, err := h.files.ReadFileStream(c.Context(), entity.QRPath)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.SendStream(stream)
}

type redeliverRequest struct {
	Canal   certificado.Canal `json:"canal"`
	Destino string            `json:"destino"`
}

// RedeliverCertificado enqueues a fresh delivery for an issued certificado
// POST /api/certificados/:id/reenviar
func (h *Handlers) RedeliverCertificado(c *fiber.Ctx) error {
	var req redeliverRequest
	if err := c.BodyParser(&req); err != nil {
		return certificado.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.service.Redeliver(c.Context(), kernel.CertificadoID(c.Params("id")), req.Canal, req.Destino); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Entrega encolada"})
}

// VerifyCertificado is the public lookup behind the QR code. No auth.
// GET /api/verificacion/:codigo
func (h *Handlers) VerifyCertificado(c *fiber.Ctx) error {
	result, err := h.service.Verify(c.Context(), c.Params("codigo"))
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// RegisterRoutes registers certificado admin routes and the public
// verification endpoint
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/certificados")

	api.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCertificadosRead),
		handlers.ListCertificados,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCertificadosRead),
		handlers.GetCertificadoByID,
	)

	api.Get("/:id/qr",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCertificadosRead),
		handlers.GetCertificadoQR,
	)

	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCertificadosWrite),
		handlers.IssueCertificado,
	)

	api.Post("/:id/reenviar",
		authMiddleware.Authenticate(),
		authMiddleware.RequireScope(auth.ScopeCertificadosWrite),
		handlers.RedeliverCertificado,
	)

	// Public: the QR printed on the certificate resolves here
	app.Get("/api/verificacion/:codigo", handlers.VerifyCertificado)
}
