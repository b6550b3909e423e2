package certificadoinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/certificado"
)

// PostgresCertificadoRepository implements certificado.Repository using PostgreSQL
type PostgresCertificadoRepository struct {
	db *sqlx.DB
}

// NewPostgresCertificadoRepository creates a new PostgreSQL certificado repository
func NewPostgresCertificadoRepository(db *sqlx.DB) *PostgresCertificadoRepository {
	return &PostgresCertificadoRepository{
		db: db,
	}
}

// Create creates a new certificado. One certificado per solicitud.
func (r *PostgresCertificadoRepository) Create(ctx context.Context, c *certificado.Certificado) error {
	query := `
		INSERT INTO certificados (
			id, solicitud_id, candidato_id, codigo, qr_path,
			estado, emitido_at, entregado_at, created_at, updated_at
		) VALUES (
			:id, :solicitud_id, :candidato_id, :codigo, :qr_path,
			:estado, :emitido_at, :entregado_at, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return certificado.ErrAlreadyIssued(string(c.SolicitudID))
		}
		return fmt.Errorf("failed to create certificado: %w", err)
	}

	return nil
}

// Update updates an existing certificado
func (r *PostgresCertificadoRepository) Update(ctx context.Context, id kernel.CertificadoID, c *certificado.Certificado) error {
	c.ID = id

	query := `
		UPDATE certificados SET
			estado = :estado,
			entregado_at = :entregado_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to update certificado: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return certificado.ErrCertificadoNotFound()
	}

	return nil
}

// GetByID retrieves a certificado by ID
func (r *PostgresCertificadoRepository) GetByID(ctx context.Context, id kernel.CertificadoID) (*certificado.Certificado, error) {
	var entity certificado.Certificado

	query := `SELECT * FROM certificados WHERE id = $1`

	err := r.db.GetContext(ctx, &entity, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, certificado.ErrCertificadoNotFound()
		}
		return nil, fmt.Errorf("failed to get certificado: %w", err)
	}

	return &entity, nil
}

// GetByCodigo retrieves a certificado by its public verification code
func (r *PostgresCertificadoRepository) GetByCodigo(ctx context.Context, codigo string) (*certificado.Certificado, error) {
	var entity certificado.Certificado

	query := `SELECT * FROM certificados WHERE codigo = $1`

	err := r.db.GetContext(ctx, &entity, query, codigo)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, certificado.ErrInvalidCodigo(codigo)
		}
		return nil, fmt.Errorf("failed to get certificado by codigo: %w", err)
	}

	return &entity, nil
}

// GetBySolicitud retrieves the certificado issued for a solicitud
func (r *PostgresCertificadoRepository) GetBySolicitud(ctx context.Context, solicitudID kernel.SolicitudID) (*certificado.Certificado, error) {
	var entity certificado.Certificado

	query := `SELECT * FROM certificados WHERE solicitud_id = $1`

	err := r.db.GetContext(ctx, &entity, query, string(solicitudID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, certificado.ErrCertificadoNotFound()
		}
		return nil, fmt.Errorf("failed to get certificado by solicitud: %w", err)
	}

	return &entity, nil
}

// List retrieves certificados with pagination, newest first
func (r *PostgresCertificadoRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[certificado.Certificado], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM certificados`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count certificados: %w", err)
	}

	query := `
		SELECT * FROM certificados
		ORDER BY emitido_at DESC
		LIMIT $1 OFFSET $2
	`

	var items []certificado.Certificado
	if err := r.db.SelectContext(ctx, &items, query, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list certificados: %w", err)
	}

	return kernel.NewPaginated(items, pagination, total), nil
}
