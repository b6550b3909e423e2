package userinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vinculohr/vinculo/pkg/iam/user"
	"github.com/vinculohr/vinculo/pkg/kernel"
)

// PostgresPerfilRepository implements user.PerfilRepository using PostgreSQL
type PostgresPerfilRepository struct {
	db *sqlx.DB
}

// NewPostgresPerfilRepository creates a new PostgreSQL perfil repository
func NewPostgresPerfilRepository(db *sqlx.DB) *PostgresPerfilRepository {
	return &PostgresPerfilRepository{db: db}
}

type perfilModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (m *perfilModel) toEntity(scopes []string) *user.Perfil {
	return &user.Perfil{
		ID:          kernel.PerfilID(m.ID),
		Name:        m.Name,
		Description: m.Description,
		Scopes:      scopes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create creates a new perfil with its scope grants
func (r *PostgresPerfilRepository) Create(ctx context.Context, perfil *user.Perfil) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO perfiles (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.ExecContext(ctx, query,
		string(perfil.ID), perfil.Name, perfil.Description, perfil.CreatedAt, perfil.UpdatedAt,
	); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return user.ErrPerfilInUse().WithDetail("name", perfil.Name)
		}
		return fmt.Errorf("failed to create perfil: %w", err)
	}

	if err := insertScopes(ctx, tx, string(perfil.ID), perfil.Scopes); err != nil {
		return err
	}

	return tx.Commit()
}

// Update updates an existing perfil and replaces its scope grants
func (r *PostgresPerfilRepository) Update(ctx context.Context, id kernel.PerfilID, perfil *user.Perfil) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE perfiles SET name = $1, description = $2, updated_at = $3 WHERE id = $4
	`, perfil.Name, perfil.Description, time.Now(), string(id))
	if err != nil {
		return fmt.Errorf("failed to update perfil: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return user.ErrPerfilNotFound()
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM perfil_scopes WHERE perfil_id = $1`, string(id)); err != nil {
		return fmt.Errorf("failed to clear perfil scopes: %w", err)
	}
	if err := insertScopes(ctx, tx, string(id), perfil.Scopes); err != nil {
		return err
	}

	return tx.Commit()
}

// GetByID retrieves a perfil with its scopes
func (r *PostgresPerfilRepository) GetByID(ctx context.Context, id kernel.PerfilID) (*user.Perfil, error) {
	var model perfilModel
	err := r.db.GetContext(ctx, &model, `
		SELECT id, name, description, created_at, updated_at FROM perfiles WHERE id = $1
	`, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrPerfilNotFound()
		}
		return nil, fmt.Errorf("failed to get perfil: %w", err)
	}

	var scopes []string
	err = r.db.SelectContext(ctx, &scopes, `
		SELECT scope FROM perfil_scopes WHERE perfil_id = $1 ORDER BY scope
	`, string(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get perfil scopes: %w", err)
	}

	return model.toEntity(scopes), nil
}

// List retrieves all perfiles with their scopes
func (r *PostgresPerfilRepository) List(ctx context.Context) ([]user.Perfil, error) {
	var models []perfilModel
	err := r.db.SelectContext(ctx, &models, `
		SELECT id, name, description, created_at, updated_at FROM perfiles ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list perfiles: %w", err)
	}

	type scopeRow struct {
		PerfilID string `db:"perfil_id"`
		Scope    string `db:"scope"`
	}
	var rows []scopeRow
	err = r.db.SelectContext(ctx, &rows, `SELECT perfil_id, scope FROM perfil_scopes ORDER BY scope`)
	if err != nil {
		return nil, fmt.Errorf("failed to list perfil scopes: %w", err)
	}

	byPerfil := make(map[string][]string, len(models))
	for _, row := range rows {
		byPerfil[row.PerfilID] = append(byPerfil[row.PerfilID], row.Scope)
	}

	perfiles := make([]user.Perfil, 0, len(models))
	for _, model := range models {
		perfiles = append(perfiles, *model.toEntity(byPerfil[model.ID]))
	}
	return perfiles, nil
}

// Delete removes a perfil; fails if any usuario references it
func (r *PostgresPerfilRepository) Delete(ctx context.Context, id kernel.PerfilID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM perfiles WHERE id = $1`, string(id))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return user.ErrPerfilInUse()
		}
		return fmt.Errorf("failed to delete perfil: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return user.ErrPerfilNotFound()
	}

	return nil
}

func insertScopes(ctx context.Context, tx *sqlx.Tx, perfilID string, scopes []string) error {
	for _, scope := range scopes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO perfil_scopes (perfil_id, scope) VALUES ($1, $2)`,
			perfilID, scope,
		); err != nil {
			return fmt.Errorf("failed to insert perfil scope %s: %w", scope, err)
		}
	}
	return nil
}
