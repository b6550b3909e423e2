package empresaauth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/errx"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/empresa"
)

// EmpresaTokenService wraps IAM's TokenService for empresa portal tokens
type EmpresaTokenService struct {
	iamTokenService auth.TokenService
}

// NewEmpresaTokenService creates a wrapper around IAM's TokenService
func NewEmpresaTokenService(iamTokenService auth.TokenService) *EmpresaTokenService {
	return &EmpresaTokenService{
		iamTokenService: iamTokenService,
	}
}

// GenerateEmpresaToken generates a portal token for an empresa
func (s *EmpresaTokenService) GenerateEmpresaToken(empresaID kernel.EmpresaID, email kernel.Email) (string, error) {
	token, err := s.iamTokenService.GenerateAccessToken(
		kernel.UserID(empresaID),
		string(email),
		nil,
		"empresa",
	)
	if err != nil {
		return "", errx.Wrap(err, "failed to generate empresa token", errx.TypeInternal)
	}

	return token, nil
}

// EmpresaClaims represents empresa-specific claims
type EmpresaClaims struct {
	EmpresaID kernel.EmpresaID
	Email     kernel.Email
	ExpiresAt time.Time
}

// ValidateEmpresaToken validates a portal token
func (s *EmpresaTokenService) ValidateEmpresaToken(tokenString string) (*EmpresaClaims, error) {
	tokenClaims, err := s.iamTokenService.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	if tokenClaims.Portal != "empresa" {
		return nil, auth.ErrInvalidToken().WithDetail("portal", tokenClaims.Portal)
	}

	return &EmpresaClaims{
		EmpresaID: kernel.EmpresaID(tokenClaims.UserID),
		Email:     kernel.Email(tokenClaims.Email),
		ExpiresAt: tokenClaims.ExpiresAt,
	}, nil
}

// Middleware validates empresa portal tokens
func Middleware(tokenService *EmpresaTokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := tokenService.ValidateEmpresaToken(parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals("empresa_id", claims.EmpresaID)
		c.Locals("empresa_email", claims.Email)

		return c.Next()
	}
}

// GetEmpresaID extracts the empresa ID from context
func GetEmpresaID(c *fiber.Ctx) (kernel.EmpresaID, bool) {
	empresaID, ok := c.Locals("empresa_id").(kernel.EmpresaID)
	return empresaID, ok
}

// EmpresaSession is the issued portal session. It replaces the flag the
// legacy frontend kept in browser storage; the server is the only holder
// of session state.
type EmpresaSession struct {
	EmpresaID   kernel.EmpresaID   `json:"empresa_id"`
	RazonSocial kernel.RazonSocial `json:"razon_social"`
	Email       kernel.Email       `json:"email"`
	Token       string             `json:"token"`
	ExpiresAt   time.Time          `json:"expires_at"`
}

// Login authenticates an empresa by email and password
func Login(tokenService *EmpresaTokenService, passwordSvc auth.PasswordService, repo empresa.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return empresa.ErrInvalidRequest().WithDetail("parse_error", err.Error())
		}

		entity, err := repo.GetByEmail(c.Context(), kernel.Email(req.Email))
		if err != nil {
			return auth.ErrInvalidCredentials()
		}
		if !entity.IsActive() {
			return empresa.ErrEmpresaInactive()
		}
		if entity.PasswordHash == "" || !passwordSvc.Verify(entity.PasswordHash, req.Password) {
			return auth.ErrInvalidCredentials()
		}

		token, err := tokenService.GenerateEmpresaToken(entity.ID, entity.Email)
		if err != nil {
			return err
		}

		return c.JSON(EmpresaSession{
			EmpresaID:   entity.ID,
			RazonSocial: entity.RazonSocial,
			Email:       entity.Email,
			Token:       token,
			ExpiresAt:   time.Now().Add(30 * time.Minute),
		})
	}
}
