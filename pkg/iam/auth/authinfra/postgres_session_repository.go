package authinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
)

// PostgresSessionRepository implements auth.SessionRepository using PostgreSQL
type PostgresSessionRepository struct {
	db *sqlx.DB
}

// NewPostgresSessionRepository creates a new PostgreSQL session repository
func NewPostgresSessionRepository(db *sqlx.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

type sessionModel struct {
	ID           string     `db:"id"`
	UserID       string     `db:"user_id"`
	Portal       string     `db:"portal"`
	RefreshToken string     `db:"refresh_token"`
	ExpiresAt    time.Time  `db:"expires_at"`
	RevokedAt    *time.Time `db:"revoked_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

func (m *sessionModel) toEntity() *auth.Session {
	return &auth.Session{
		ID:           kernel.SessionID(m.ID),
		UserID:       kernel.UserID(m.UserID),
		Portal:       m.Portal,
		RefreshToken: m.RefreshToken,
		ExpiresAt:    m.ExpiresAt,
		RevokedAt:    m.RevokedAt,
		CreatedAt:    m.CreatedAt,
	}
}

func fromSessionEntity(s *auth.Session) *sessionModel {
	return &sessionModel{
		ID:           string(s.ID),
		UserID:       string(s.UserID),
		Portal:       s.Portal,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt,
		RevokedAt:    s.RevokedAt,
		CreatedAt:    s.CreatedAt,
	}
}

// Create persists a new session
func (r *PostgresSessionRepository) Create(ctx context.Context, session *auth.Session) error {
	model := fromSessionEntity(session)

	query := `
		INSERT INTO sessions (
			id, user_id, portal, refresh_token, expires_at, revoked_at, created_at
		) VALUES (
			:id, :user_id, :portal, :refresh_token, :expires_at, :revoked_at, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetByRefreshToken retrieves a session by its refresh token
func (r *PostgresSessionRepository) GetByRefreshToken(ctx context.Context, token string) (*auth.Session, error) {
	var model sessionModel

	query := `SELECT * FROM sessions WHERE refresh_token = $1`

	err := r.db.GetContext(ctx, &model, query, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, auth.ErrSessionExpired()
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return model.toEntity(), nil
}

// Revoke marks a single session as revoked
func (r *PostgresSessionRepository) Revoke(ctx context.Context, id kernel.SessionID) error {
	query := `UPDATE sessions SET revoked_at = $1 WHERE id = $2 AND revoked_at IS NULL`

	_, err := r.db.ExecContext(ctx, query, time.Now(), string(id))
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

// RevokeAllForUser revokes every open session of a usuario
func (r *PostgresSessionRepository) RevokeAllForUser(ctx context.Context, userID kernel.UserID) error {
	query := `UPDATE sessions SET revoked_at = $1 WHERE user_id = $2 AND revoked_at IS NULL`

	_, err := r.db.ExecContext(ctx, query, time.Now(), string(userID))
	if err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	return nil
}
