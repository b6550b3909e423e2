package catalogoinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vinculohr/vinculo/seleccion/catalogo"
)

// PostgresCatalogoRepository implements catalogo.Repository using PostgreSQL.
// All catalog tables share the same shape, so queries are built against
// the table the kind maps to.
type PostgresCatalogoRepository struct {
	db *sqlx.DB
}

// NewPostgresCatalogoRepository creates a new PostgreSQL catalogo repository
func NewPostgresCatalogoRepository(db *sqlx.DB) *PostgresCatalogoRepository {
	return &PostgresCatalogoRepository{
		db: db,
	}
}

// Create adds a catalog entry
func (r *PostgresCatalogoRepository) Create(ctx context.Context, kind catalogo.Kind, item *catalogo.Item) error {
	if !kind.IsValid() {
		return catalogo.ErrUnknownKind(string(kind))
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, nombre, activo, created_at, updated_at)
		VALUES (:id, :nombre, :activo, :created_at, :updated_at)
	`, kind.Table())

	_, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return catalogo.ErrItemAlreadyExists()
		}
		return fmt.Errorf("failed to create %s item: %w", kind, err)
	}

	return nil
}

// Update renames or toggles a catalog entry
func (r *PostgresCatalogoRepository) Update(ctx context.Context, kind catalogo.Kind, item *catalogo.Item) error {
	if !kind.IsValid() {
		return catalogo.ErrUnknownKind(string(kind))
	}

	query := fmt.Sprintf(`
		UPDATE %s SET nombre = :nombre, activo = :activo, updated_at = :updated_at
		WHERE id = :id
	`, kind.Table())

	result, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return catalogo.ErrItemAlreadyExists()
		}
		return fmt.Errorf("failed to update %s item: %w", kind, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return catalogo.ErrItemNotFound()
	}

	return nil
}

// GetByID retrieves one catalog entry
func (r *PostgresCatalogoRepository) GetByID(ctx context.Context, kind catalogo.Kind, id string) (*catalogo.Item, error) {
	if !kind.IsValid() {
		return nil, catalogo.ErrUnknownKind(string(kind))
	}

	var item catalogo.Item
	query := fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, kind.Table())

	err := r.db.GetContext(ctx, &item, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalogo.ErrItemNotFound().
				WithDetail("kind", string(kind)).
				WithDetail("id", id)
		}
		return nil, fmt.Errorf("failed to get %s item: %w", kind, err)
	}

	return &item, nil
}

// List retrieves all entries of a catalog, active first
func (r *PostgresCatalogoRepository) List(ctx context.Context, kind catalogo.Kind) ([]catalogo.Item, error) {
	if !kind.IsValid() {
		return nil, catalogo.ErrUnknownKind(string(kind))
	}

	var items []catalogo.Item
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY activo DESC, nombre ASC`, kind.Table())

	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list %s items: %w", kind, err)
	}

	return items, nil
}
