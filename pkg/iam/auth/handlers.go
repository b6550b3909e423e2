package auth

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/vinculohr/vinculo/pkg/errx"
	"github.com/vinculohr/vinculo/pkg/iam/user"
	"github.com/vinculohr/vinculo/pkg/kernel"
)

// ResetNotifier delivers password reset links out of band.
type ResetNotifier interface {
	SendPasswordReset(ctx context.Context, email kernel.Email, token string) error
}

// AuthHandlers implements the admin-portal authentication endpoints.
type AuthHandlers struct {
	config       Config
	tokenService TokenService
	passwordSvc  PasswordService
	userRepo     user.Repository
	perfilRepo   user.PerfilRepository
	sessionRepo  SessionRepository
	resetStore   ResetTokenStore
	notifier     ResetNotifier
}

// NewAuthHandlers wires the authentication endpoints.
func NewAuthHandlers(
	config Config,
	tokenService TokenService,
	passwordSvc PasswordService,
	userRepo user.Repository,
	perfilRepo user.PerfilRepository,
	sessionRepo SessionRepository,
	resetStore ResetTokenStore,
	notifier ResetNotifier,
) *AuthHandlers {
	return &AuthHandlers{
		config:       config,
		tokenService: tokenService,
		passwordSvc:  passwordSvc,
		userRepo:     userRepo,
		perfilRepo:   perfilRepo,
		sessionRepo:  sessionRepo,
		resetStore:   resetStore,
		notifier:     notifier,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	UserID       kernel.UserID `json:"user_id"`
	Email        string        `json:"email"`
	FullName     string        `json:"full_name"`
	Scopes       []string      `json:"scopes"`
	ExpiresAt    time.Time     `json:"expires_at"`
}

// Login authenticates a staff usuario with email and password
// POST /api/login
func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if req.Email == "" || req.Password == "" {
		return ErrInvalidRequest().WithDetail("reason", "email and password are required")
	}

	usuario, err := h.userRepo.GetByEmail(c.Context(), kernel.Email(req.Email))
	if err != nil {
		// Same answer for unknown user and wrong password.
		return ErrInvalidCredentials()
	}

	if !usuario.IsActive() {
		return user.ErrUserSuspended()
	}

	if !h.passwordSvc.Verify(usuario.PasswordHash, req.Password) {
		return ErrInvalidCredentials()
	}

	perfil, err := h.perfilRepo.GetByID(c.Context(), usuario.PerfilID)
	if err != nil {
		return err
	}

	accessToken, err := h.tokenService.GenerateAccessToken(usuario.ID, string(usuario.Email), perfil.Scopes, "admin")
	if err != nil {
		return errx.Wrap(err, "failed to generate access token", errx.TypeInternal)
	}

	refreshToken, err := h.tokenService.GenerateRefreshToken(usuario.ID)
	if err != nil {
		return errx.Wrap(err, "failed to generate refresh token", errx.TypeInternal)
	}

	session := &Session{
		ID:           kernel.NewSessionID(uuid.NewString()),
		UserID:       usuario.ID,
		Portal:       "admin",
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(h.config.JWT.RefreshTokenTTL),
		CreatedAt:    time.Now(),
	}
	if err := h.sessionRepo.Create(c.Context(), session); err != nil {
		return errx.Wrap(err, "failed to persist session", errx.TypeInternal)
	}

	return c.JSON(loginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       usuario.ID,
		Email:        string(usuario.Email),
		FullName:     usuario.GetFullName(),
		Scopes:       perfil.Scopes,
		ExpiresAt:    time.Now().Add(h.config.JWT.AccessTokenTTL),
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh exchanges a valid refresh token for a new access token
// POST /api/auth/refresh
func (h *AuthHandlers) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	session, err := h.sessionRepo.GetByRefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		return ErrSessionExpired()
	}
	if !session.IsActive() {
		return ErrSessionExpired()
	}

	userID, err := h.tokenService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return err
	}
	if userID != session.UserID {
		return ErrInvalidToken()
	}

	usuario, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return err
	}
	if !usuario.IsActive() {
		return user.ErrUserSuspended()
	}

	perfil, err := h.perfilRepo.GetByID(c.Context(), usuario.PerfilID)
	if err != nil {
		return err
	}

	accessToken, err := h.tokenService.GenerateAccessToken(usuario.ID, string(usuario.Email), perfil.Scopes, session.Portal)
	if err != nil {
		return errx.Wrap(err, "failed to generate access token", errx.TypeInternal)
	}

	return c.JSON(fiber.Map{
		"access_token": accessToken,
		"expires_at":   time.Now().Add(h.config.JWT.AccessTokenTTL),
	})
}

// Logout revokes the session behind the presented refresh token
// POST /api/auth/logout
func (h *AuthHandlers) Logout(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	session, err := h.sessionRepo.GetByRefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		// Logging out an unknown session is not an error.
		return c.JSON(fiber.Map{"message": "Sesión cerrada"})
	}

	if err := h.sessionRepo.Revoke(c.Context(), session.ID); err != nil {
		return errx.Wrap(err, "failed to revoke session", errx.TypeInternal)
	}

	return c.JSON(fiber.Map{"message": "Sesión cerrada"})
}

// Me returns the authenticated principal
// GET /api/auth/me
func (h *AuthHandlers) Me(c *fiber.Ctx) error {
	authContext, ok := GetAuthContext(c)
	if !ok {
		return ErrMissingToken()
	}

	usuario, err := h.userRepo.GetByID(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"id":         usuario.ID,
		"email":      usuario.Email,
		"full_name":  usuario.GetFullName(),
		"perfil_id":  usuario.PerfilID,
		"scopes":     authContext.Scopes,
		"portal":     authContext.Portal,
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword issues a reset token delivered by email
// POST /api/auth/forgot-password
func (h *AuthHandlers) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	// Always answer OK so the endpoint does not leak which emails exist.
	response := fiber.Map{"message": "Si el correo existe, se envió un enlace de restablecimiento"}

	usuario, err := h.userRepo.GetByEmail(c.Context(), kernel.Email(req.Email))
	if err != nil {
		return c.JSON(response)
	}

	token := uuid.NewString()
	if err := h.resetStore.Put(c.Context(), token, usuario.ID, h.config.ResetTokenTTL); err != nil {
		return errx.Wrap(err, "failed to store reset token", errx.TypeInternal)
	}

	if err := h.notifier.SendPasswordReset(c.Context(), usuario.Email, token); err != nil {
		return errx.Wrap(err, "failed to send reset notification", errx.TypeExternal)
	}

	return c.JSON(response)
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPassword consumes a reset token passed as the `token` query parameter
// POST /api/auth/reset-password?token=<token>
func (h *AuthHandlers) ResetPassword(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return ErrInvalidResetToken().WithDetail("token", "missing")
	}

	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if len(req.Password) < 8 {
		return user.ErrWeakPassword().WithDetail("min_length", 8)
	}

	userID, err := h.resetStore.Take(c.Context(), token)
	if err != nil {
		return errx.Wrap(err, "failed to resolve reset token", errx.TypeInternal)
	}
	if userID.IsEmpty() {
		return ErrInvalidResetToken()
	}

	hash, err := h.passwordSvc.Hash(req.Password)
	if err != nil {
		return errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	if err := h.userRepo.UpdatePassword(c.Context(), userID, hash); err != nil {
		return err
	}

	// A password change invalidates every open session.
	if err := h.sessionRepo.RevokeAllForUser(c.Context(), userID); err != nil {
		return errx.Wrap(err, "failed to revoke sessions", errx.TypeInternal)
	}

	return c.JSON(fiber.Map{"message": "Contraseña actualizada"})
}

// RegisterRoutes registers the authentication routes
func (h *AuthHandlers) RegisterRoutes(app *fiber.App, middleware *TokenMiddleware) {
	app.Post("/api/login", h.Login)

	authGroup := app.Group("/api/auth")
	authGroup.Post("/refresh", h.Refresh)
	authGroup.Post("/logout", h.Logout)
	authGroup.Post("/forgot-password", h.ForgotPassword)
	authGroup.Post("/reset-password", h.ResetPassword)
	authGroup.Get("/me", middleware.Authenticate(), h.Me)
}
