package empresainfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/empresa"
)

// PostgresEmpresaRepository implements empresa.Repository using PostgreSQL
type PostgresEmpresaRepository struct {
	db *sqlx.DB
}

// NewPostgresEmpresaRepository creates a new PostgreSQL empresa repository
func NewPostgresEmpresaRepository(db *sqlx.DB) *PostgresEmpresaRepository {
	return &PostgresEmpresaRepository{
		db: db,
	}
}

type empresaModel struct {
	ID                 string    `db:"id"`
	NIT                string    `db:"nit"`
	RazonSocial        string    `db:"razon_social"`
	Email              string    `db:"email"`
	Phone              string    `db:"phone"`
	CiudadID           string    `db:"ciudad_id"`
	PasswordHash       string    `db:"password_hash"`
	RequiereAprobacion bool      `db:"requiere_aprobacion"`
	Status             string    `db:"status"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (m *empresaModel) toEntity() *empresa.Empresa {
	return &empresa.Empresa{
		ID:                 kernel.EmpresaID(m.ID),
		NIT:                m.NIT,
		RazonSocial:        kernel.RazonSocial(m.RazonSocial),
		Email:              kernel.Email(m.Email),
		Phone:              kernel.Phone(m.Phone),
		CiudadID:           kernel.CiudadID(m.CiudadID),
		PasswordHash:       m.PasswordHash,
		RequiereAprobacion: m.RequiereAprobacion,
		Status:             empresa.EmpresaStatus(m.Status),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func fromEntity(e *empresa.Empresa) *empresaModel {
	return &empresaModel{
		ID:                 string(e.ID),
		NIT:                e.NIT,
		RazonSocial:        string(e.RazonSocial),
		Email:              string(e.Email),
		Phone:              string(e.Phone),
		CiudadID:           string(e.CiudadID),
		PasswordHash:       e.PasswordHash,
		RequiereAprobacion: e.RequiereAprobacion,
		Status:             string(e.Status),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// Create creates a new empresa
func (r *PostgresEmpresaRepository) Create(ctx context.Context, e *empresa.Empresa) error {
	model := fromEntity(e)

	query := `
		INSERT INTO empresas (
			id, nit, razon_social, email, phone, ciudad_id,
			password_hash, requiere_aprobacion, status, created_at, updated_at
		) VALUES (
			:id, :nit, :razon_social, :email, :phone, :ciudad_id,
			:password_hash, :requiere_aprobacion, :status, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return empresa.ErrEmpresaAlreadyExists()
		}
		return fmt.Errorf("failed to create empresa: %w", err)
	}

	return nil
}

// Update updates an existing empresa
func (r *PostgresEmpresaRepository) Update(ctx context.Context, id kernel.EmpresaID, e *empresa.Empresa) error {
	model := fromEntity(e)
	model.ID = string(id)

	query := `
		UPDATE empresas SET
			razon_social = :razon_social,
			email = :email,
			phone = :phone,
			ciudad_id = :ciudad_id,
			password_hash = :password_hash,
			requiere_aprobacion = :requiere_aprobacion,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update empresa: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return empresa.ErrEmpresaNotFound()
	}

	return nil
}

// GetByID retrieves an empresa by ID
func (r *PostgresEmpresaRepository) GetByID(ctx context.Context, id kernel.EmpresaID) (*empresa.Empresa, error) {
	var model empresaModel

	query := `SELECT * FROM empresas WHERE id = $1`

	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, empresa.ErrEmpresaNotFound()
		}
		return nil, fmt.Errorf("failed to get empresa: %w", err)
	}

	return model.toEntity(), nil
}

// GetByNIT retrieves an empresa by NIT
func (r *PostgresEmpresaRepository) GetByNIT(ctx context.Context, nit string) (*empresa.Empresa, error) {
	var model empresaModel

	query := `SELECT * FROM empresas WHERE nit = $1`

	err := r.db.GetContext(ctx, &model, query, nit)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, empresa.ErrEmpresaNotFound()
		}
		return nil, fmt.Errorf("failed to get empresa by nit: %w", err)
	}

	return model.toEntity(), nil
}

// GetByEmail retrieves an empresa by the portal email
func (r *PostgresEmpresaRepository) GetByEmail(ctx context.Context, email kernel.Email) (*empresa.Empresa, error) {
	var model empresaModel

	query := `SELECT * FROM empresas WHERE email = $1`

	err := r.db.GetContext(ctx, &model, query, string(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, empresa.ErrEmpresaNotFound()
		}
		return nil, fmt.Errorf("failed to get empresa by email: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves empresas with pagination
func (r *PostgresEmpresaRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[empresa.Empresa], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM empresas`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count empresas: %w", err)
	}

	query := `
		SELECT * FROM empresas
		ORDER BY razon_social ASC
		LIMIT $1 OFFSET $2
	`

	var models []empresaModel
	if err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list empresas: %w", err)
	}

	items := make([]empresa.Empresa, len(models))
	for i, m := range models {
		items[i] = *m.toEntity()
	}

	return kernel.NewPaginated(items, pagination, total), nil
}

// Exists checks if an empresa exists by ID
func (r *PostgresEmpresaRepository) Exists(ctx context.Context, id kernel.EmpresaID) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM empresas WHERE id = $1)`

	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check empresa existence: %w", err)
	}

	return exists, nil
}
