package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vinculohr/vinculo/pkg/kernel"
)

const authContextKey = "auth_context"

// AuthContext is the authenticated principal attached to a request.
type AuthContext struct {
	UserID kernel.UserID
	Email  string
	Scopes []string
	Portal string
}

// HasScope reports whether the principal satisfies the required scope.
func (a *AuthContext) HasScope(required string) bool {
	for _, granted := range a.Scopes {
		if ScopeMatches(granted, required) {
			return true
		}
	}
	return false
}

// TokenMiddleware authenticates admin-portal requests via bearer tokens.
type TokenMiddleware struct {
	tokenService TokenService
}

// NewAuthMiddleware creates a token-validating middleware.
func NewAuthMiddleware(tokenService TokenService) *TokenMiddleware {
	return &TokenMiddleware{tokenService: tokenService}
}

// Authenticate validates the bearer token and stores the AuthContext.
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenService.ValidateAccessToken(token)
		if err != nil {
			return err
		}

		c.Locals(authContextKey, &AuthContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Scopes: claims.Scopes,
			Portal: claims.Portal,
		})
		return c.Next()
	}
}

// RequireScope rejects requests whose principal lacks the scope.
func (m *TokenMiddleware) RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}
		if !authContext.HasScope(scope) {
			return ErrInsufficientScope().WithDetail("required_scope", scope)
		}
		return c.Next()
	}
}

// RequirePortal rejects tokens issued for a different portal.
func (m *TokenMiddleware) RequirePortal(portal string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}
		if authContext.Portal != portal {
			return ErrInsufficientScope().WithDetail("portal", authContext.Portal)
		}
		return c.Next()
	}
}

// GetAuthContext extracts the authenticated principal from the request.
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authContext, ok := c.Locals(authContextKey).(*AuthContext)
	return authContext, ok
}

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken()
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidToken().WithDetail("reason", "expected Bearer scheme")
	}
	return parts[1], nil
}
