package prestadorinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/prestador"
)

// PostgresPrestadorRepository implements prestador.Repository using PostgreSQL
type PostgresPrestadorRepository struct {
	db *sqlx.DB
}

// NewPostgresPrestadorRepository creates a new PostgreSQL prestador repository
func NewPostgresPrestadorRepository(db *sqlx.DB) *PostgresPrestadorRepository {
	return &PostgresPrestadorRepository{
		db: db,
	}
}

type prestadorModel struct {
	ID        string              `db:"id"`
	Nombre    string              `db:"nombre"`
	NIT       string              `db:"nit"`
	Email     string              `db:"email"`
	Phone     string              `db:"phone"`
	Direccion string              `db:"direccion"`
	CiudadID  string              `db:"ciudad_id"`
	Servicios prestador.Servicios `db:"servicios"`
	Status    string              `db:"status"`
	CreatedAt time.Time           `db:"created_at"`
	UpdatedAt time.Time           `db:"updated_at"`
}

func (m *prestadorModel) toEntity() *prestador.Prestador {
	return &prestador.Prestador{
		ID:        kernel.PrestadorID(m.ID),
		Nombre:    m.Nombre,
		NIT:       m.NIT,
		Email:     kernel.Email(m.Email),
		Phone:     kernel.Phone(m.Phone),
		Direccion: m.Direccion,
		CiudadID:  kernel.CiudadID(m.CiudadID),
		Servicios: m.Servicios,
		Status:    prestador.PrestadorStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromEntity(p *prestador.Prestador) *prestadorModel {
	return &prestadorModel{
		ID:        string(p.ID),
		Nombre:    p.Nombre,
		NIT:       p.NIT,
		Email:     string(p.Email),
		Phone:     string(p.Phone),
		Direccion: p.Direccion,
		CiudadID:  string(p.CiudadID),
		Servicios: p.Servicios,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// Create creates a new prestador
func (r *PostgresPrestadorRepository) Create(ctx context.Context, p *prestador.Prestador) error {
	model := fromEntity(p)

	query := `
		INSERT INTO prestadores (
			id, nombre, nit, email, phone, direccion,
			ciudad_id, servicios, status, created_at, updated_at
		) VALUES (
			:id, :nombre, :nit, :email, :phone, :direccion,
			:ciudad_id, :servicios, :status, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return prestador.ErrPrestadorAlreadyExists()
		}
		return fmt.Errorf("failed to create prestador: %w", err)
	}

	return nil
}

// Update updates an existing prestador
func (r *PostgresPrestadorRepository) Update(ctx context.Context, id kernel.PrestadorID, p *prestador.Prestador) error {
	model := fromEntity(p)
	model.ID = string(id)

	query := `
		UPDATE prestadores SET
			nombre = :nombre,
			email = :email,
			phone = :phone,
			direccion = :direccion,
			ciudad_id = :ciudad_id,
			servicios = :servicios,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update prestador: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return prestador.ErrPrestadorNotFound()
	}

	return nil
}

// GetByID retrieves a prestador by ID
func (r *PostgresPrestadorRepository) GetByID(ctx context.Context, id kernel.PrestadorID) (*prestador.Prestador, error) {
	var model prestadorModel

	query := `SELECT * FROM prestadores WHERE id = $1`

	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, prestador.ErrPrestadorNotFound()
		}
		return nil, fmt.Errorf("failed to get prestador: %w", err)
	}

	return model.toEntity(), nil
}

// GetByNIT retrieves a prestador by NIT
func (r *PostgresPrestadorRepository) GetByNIT(ctx context.Context, nit string) (*prestador.Prestador, error) {
	var model prestadorModel

	query := `SELECT * FROM prestadores WHERE nit = $1`

	err := r.db.GetContext(ctx, &model, query, nit)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, prestador.ErrPrestadorNotFound()
		}
		return nil, fmt.Errorf("failed to get prestador by nit: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves prestadores with pagination
func (r *PostgresPrestadorRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[prestador.Prestador], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM prestadores`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count prestadores: %w", err)
	}

	query := `
		SELECT * FROM prestadores
		ORDER BY nombre ASC
		LIMIT $1 OFFSET $2
	`

	var models []prestadorModel
	if err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list prestadores: %w", err)
	}

	items := make([]prestador.Prestador, len(models))
	for i, m := range models {
		items[i] = *m.toEntity()
	}

	return kernel.NewPaginated(items, pagination, total), nil
}

// ListByCiudad retrieves the active prestadores covering a ciudad
func (r *PostgresPrestadorRepository) ListByCiudad(ctx context.Context, ciudadID kernel.CiudadID) ([]prestador.Prestador, error) {
	query := `
		SELECT * FROM prestadores
		WHERE ciudad_id = $1 AND status = 'ACTIVO'
		ORDER BY nombre ASC
	`

	var models []prestadorModel
	if err := r.db.SelectContext(ctx, &models, query, string(ciudadID)); err != nil {
		return nil, fmt.Errorf("failed to list prestadores by ciudad: %w", err)
	}

	items := make([]prestador.Prestador, len(models))
	for i, m := range models {
		items[i] = *m.toEntity()
	}

	return items, nil
}

// CountActiveByCiudad counts the active prestadores covering a ciudad
func (r *PostgresPrestadorRepository) CountActiveByCiudad(ctx context.Context, ciudadID kernel.CiudadID) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM prestadores WHERE ciudad_id = $1 AND status = 'ACTIVO'`

	if err := r.db.GetContext(ctx, &count, query, string(ciudadID)); err != nil {
		return 0, fmt.Errorf("failed to count prestadores by ciudad: %w", err)
	}

	return count, nil
}
