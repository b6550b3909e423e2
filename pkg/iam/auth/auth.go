package auth

import (
	"context"
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// Config holds authentication settings.
type Config struct {
	JWT struct {
		SecretKey       string
		AccessTokenTTL  time.Duration
		RefreshTokenTTL time.Duration
		Issuer          string
	}
	ResetTokenTTL time.Duration
}

// DefaultConfig returns the baseline auth configuration.
func DefaultConfig() Config {
	var c Config
	c.JWT.AccessTokenTTL = 30 * time.Minute
	c.JWT.RefreshTokenTTL = 7 * 24 * time.Hour
	c.JWT.Issuer = "vinculo"
	c.ResetTokenTTL = time.Hour
	return c
}

// TokenClaims is the decoded content of an access token.
type TokenClaims struct {
	UserID    kernel.UserID
	Email     string
	Scopes    []string
	Portal    string // "admin", "empresa" or "candidato"
	ExpiresAt time.Time
}

// TokenService issues and validates signed tokens.
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, email string, scopes []string, portal string) (string, error)
	GenerateRefreshToken(userID kernel.UserID) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (kernel.UserID, error)
}

// PasswordService hashes and verifies credentials.
type PasswordService interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// Session is a persisted login session.
type Session struct {
	ID           kernel.SessionID `db:"id" json:"id"`
	UserID       kernel.UserID    `db:"user_id" json:"user_id"`
	Portal       string           `db:"portal" json:"portal"`
	RefreshToken string           `db:"refresh_token" json:"-"`
	ExpiresAt    time.Time        `db:"expires_at" json:"expires_at"`
	RevokedAt    *time.Time       `db:"revoked_at" json:"revoked_at,omitempty"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
}

// IsActive reports whether the session can still be refreshed.
func (s *Session) IsActive() bool {
	return s.RevokedAt == nil && time.Now().Before(s.ExpiresAt)
}

// SessionRepository persists sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByRefreshToken(ctx context.Context, token string) (*Session, error)
	Revoke(ctx context.Context, id kernel.SessionID) error
	RevokeAllForUser(ctx context.Context, userID kernel.UserID) error
}

// ResetTokenStore keeps short-lived password reset tokens.
type ResetTokenStore interface {
	Put(ctx context.Context, token string, userID kernel.UserID, ttl time.Duration) error
	// Take resolves and consumes a token. A miss returns an empty UserID.
	Take(ctx context.Context, token string) (kernel.UserID, error)
}
