package candidatoauth

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/candidato"
	"github.com/vinculohr/vinculo/seleccion/candidato/candidatosrv"
)

// Handlers provides the candidato portal HTTP handlers
type Handlers struct {
	authService      *CandidatoAuthService
	candidatoService *candidatosrv.CandidatoService
}

// NewHandlers creates the portal handlers
func NewHandlers(authService *CandidatoAuthService, candidatoService *candidatosrv.CandidatoService) *Handlers {
	return &Handlers{
		authService:      authService,
		candidatoService: candidatoService,
	}
}

type loginRequest struct {
	NumeroDocumento string `json:"numero_documento"`
	Password        string `json:"password"`
}

// Login authenticates a candidato with documento and password
// POST /api/portal/candidato/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return candidato.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if req.NumeroDocumento == "" || req.Password == "" {
		return candidato.ErrInvalidRequest().
			WithDetail("message", "numero_documento y password son obligatorios")
	}

	session, err := h.authService.Login(c.Context(), req.NumeroDocumento, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

type forgotPasswordRequest struct {
	NumeroDocumento string `json:"numero_documento"`
}

// ForgotPassword issues a password reset token
// POST /api/portal/candidato/forgot-password
func (h *Handlers) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return candidato.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.authService.RequestPasswordReset(c.Context(), req.NumeroDocumento); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Si el documento está registrado, se envió un enlace de restablecimiento"})
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPassword consumes the reset token passed as the `token` query parameter
// POST /api/portal/candidato/reset-password?token=<token>
func (h *Handlers) ResetPassword(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return auth.ErrInvalidResetToken().WithDetail("token", "missing")
	}

	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return candidato.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.authService.ResetPassword(c.Context(), token, req.Password); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Contraseña actualizada"})
}

// Me returns the authenticated candidato's profile
// GET /api/portal/candidato/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	candidatoID, ok := GetCandidatoID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	entity, err := h.authService.Profile(c.Context(), candidatoID)
	if err != nil {
		return err
	}

	return c.JSON(entity.ToResponse())
}

// SubmitDocuments receives the candidato's document upload for a solicitud
// POST /api/portal/candidato/solicitudes/:solicitudId/documentos
func (h *Handlers) SubmitDocuments(c *fiber.Ctx) error {
	candidatoID, ok := GetCandidatoID(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	solicitudID := kernel.SolicitudID(c.Params("solicitudId"))
	if solicitudID == "" {
		return candidato.ErrInvalidRequest().WithDetail("solicitud_id", "missing or empty")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return candidato.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	var files []candidato.DocumentFile
	for _, headers := range form.File {
		for _, header := range headers {
			f, err := header.Open()
			if err != nil {
				return candidato.ErrInvalidRequest().WithDetail("file", header.Filename)
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return candidato.ErrInvalidRequest().WithDetail("file", header.Filename)
			}

			files = append(files, candidato.DocumentFile{
				Nombre:      header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	entregas, err := h.candidatoService.SubmitDocuments(c.Context(), candidatoID, solicitudID, files)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(entregas)
}

// RegisterRoutes registers the candidato portal routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, tokenService *CandidatoTokenService) {
	portal := app.Group("/api/portal/candidato")

	portal.Post("/login", handlers.Login)
	portal.Post("/forgot-password", handlers.ForgotPassword)
	portal.Post("/reset-password", handlers.ResetPassword)

	portal.Get("/me", Middleware(tokenService), handlers.Me)
	portal.Post("/solicitudes/:solicitudId/documentos", Middleware(tokenService), handlers.SubmitDocuments)
}
