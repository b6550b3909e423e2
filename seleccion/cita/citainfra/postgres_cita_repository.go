package citainfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/cita"
)

// PostgresCitaRepository implements cita.Repository using PostgreSQL
type PostgresCitaRepository struct {
	db *sqlx.DB
}

// NewPostgresCitaRepository creates a new PostgreSQL cita repository
func NewPostgresCitaRepository(db *sqlx.DB) *PostgresCitaRepository {
	return &PostgresCitaRepository{
		db: db,
	}
}

// Create creates a new cita
func (r *PostgresCitaRepository) Create(ctx context.Context, c *cita.Cita) error {
	query := `
		INSERT INTO citas (
			id, solicitud_id, candidato_id, prestador_id, ciudad_id,
			tipo, fecha, estado, created_at, updated_at
		) VALUES (
			:id, :solicitud_id, :candidato_id, :prestador_id, :ciudad_id,
			:tipo, :fecha, :estado, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("failed to create cita: %w", err)
	}

	return nil
}

// Update updates an existing cita
func (r *PostgresCitaRepository) Update(ctx context.Context, id kernel.CitaID, c *cita.Cita) error {
	c.ID = id

	query := `
		UPDATE citas SET
			prestador_id = :prestador_id,
			ciudad_id = :ciudad_id,
			fecha = :fecha,
			estado = :estado,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to update cita: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return cita.ErrCitaNotFound()
	}

	return nil
}

// GetByID retrieves a cita by ID
func (r *PostgresCitaRepository) GetByID(ctx context.Context, id kernel.CitaID) (*cita.Cita, error) {
	var entity cita.Cita

	query := `SELECT * FROM citas WHERE id = $1`

	err := r.db.GetContext(ctx, &entity, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, cita.ErrCitaNotFound()
		}
		return nil, fmt.Errorf("failed to get cita: %w", err)
	}

	return &entity, nil
}

// ListBySolicitud retrieves the citas of a solicitud, newest first
func (r *PostgresCitaRepository) ListBySolicitud(ctx context.Context, solicitudID kernel.SolicitudID) ([]cita.Cita, error) {
	query := `
		SELECT * FROM citas
		WHERE solicitud_id = $1
		ORDER BY created_at DESC
	`

	var items []cita.Cita
	if err := r.db.SelectContext(ctx, &items, query, string(solicitudID)); err != nil {
		return nil, fmt.Errorf("failed to list citas by solicitud: %w", err)
	}

	return items, nil
}

// ListByPrestador retrieves the citas booked with a prestador
func (r *PostgresCitaRepository) ListByPrestador(ctx context.Context, prestadorID kernel.PrestadorID, pagination kernel.PaginationOptions) (*kernel.Paginated[cita.Cita], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM citas WHERE prestador_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(prestadorID)); err != nil {
		return nil, fmt.Errorf("failed to count citas: %w", err)
	}

	query := `
		SELECT * FROM citas
		WHERE prestador_id = $1
		ORDER BY fecha DESC
		LIMIT $2 OFFSET $3
	`

	var items []cita.Cita
	if err := r.db.SelectContext(ctx, &items, query, string(prestadorID), pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list citas by prestador: %w", err)
	}

	return kernel.NewPaginated(items, pagination, total), nil
}

// List retrieves citas with pagination
func (r *PostgresCitaRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[cita.Cita], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM citas`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count citas: %w", err)
	}

	query := `
		SELECT * FROM citas
		ORDER BY fecha DESC
		LIMIT $1 OFFSET $2
	`

	var items []cita.Cita
	if err := r.db.SelectContext(ctx, &items, query, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list citas: %w", err)
	}

	return kernel.NewPaginated(items, pagination, total), nil
}
