package candidatoinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/candidato"
)

// PostgresCandidatoRepository implements candidato.Repository using PostgreSQL
type PostgresCandidatoRepository struct {
	db *sqlx.DB
}

// NewPostgresCandidatoRepository creates a new PostgreSQL candidato repository
func NewPostgresCandidatoRepository(db *sqlx.DB) *PostgresCandidatoRepository {
	return &PostgresCandidatoRepository{
		db: db,
	}
}

type candidatoModel struct {
	ID              string     `db:"id"`
	DocumentoTipo   string     `db:"documento_tipo"`
	DocumentoNumero string     `db:"documento_numero"`
	FirstName       string     `db:"first_name"`
	LastName        string     `db:"last_name"`
	Email           string     `db:"email"`
	Phone           string     `db:"phone"`
	CiudadID        string     `db:"ciudad_id"`
	PasswordHash    string     `db:"password_hash"`
	Status          string     `db:"status"`
	ArchivedAt      *time.Time `db:"archived_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (m *candidatoModel) toEntity() *candidato.Candidato {
	return &candidato.Candidato{
		ID: kernel.CandidatoID(m.ID),
		Documento: kernel.Documento{
			Type:   kernel.DocumentoType(m.DocumentoTipo),
			Number: m.DocumentoNumero,
		},
		FirstName:    kernel.FirstName(m.FirstName),
		LastName:     kernel.LastName(m.LastName),
		Email:        kernel.Email(m.Email),
		Phone:        kernel.Phone(m.Phone),
		CiudadID:     kernel.CiudadID(m.CiudadID),
		PasswordHash: m.PasswordHash,
		Status:       candidato.CandidatoStatus(m.Status),
		ArchivedAt:   m.ArchivedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromEntity(c *candidato.Candidato) *candidatoModel {
	return &candidatoModel{
		ID:              string(c.ID),
		DocumentoTipo:   string(c.Documento.Type),
		DocumentoNumero: c.Documento.Number,
		FirstName:       string(c.FirstName),
		LastName:        string(c.LastName),
		Email:           string(c.Email),
		Phone:           string(c.Phone),
		CiudadID:        string(c.CiudadID),
		PasswordHash:    c.PasswordHash,
		Status:          string(c.Status),
		ArchivedAt:      c.ArchivedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// Create creates a new candidato
func (r *PostgresCandidatoRepository) Create(ctx context.Context, c *candidato.Candidato) error {
	model := fromEntity(c)

	query := `
		INSERT INTO candidatos (
			id, documento_tipo, documento_numero, first_name, last_name,
			email, phone, ciudad_id, password_hash, status,
			archived_at, created_at, updated_at
		) VALUES (
			:id, :documento_tipo, :documento_numero, :first_name, :last_name,
			:email, :phone, :ciudad_id, :password_hash, :status,
			:archived_at, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return candidato.ErrCandidatoAlreadyExists()
		}
		return fmt.Errorf("failed to create candidato: %w", err)
	}

	return nil
}

// Update updates an existing candidato
func (r *PostgresCandidatoRepository) Update(ctx context.Context, id kernel.CandidatoID, c *candidato.Candidato) error {
	model := fromEntity(c)
	model.ID = string(id)

	query := `
		UPDATE candidatos SET
			documento_tipo = :documento_tipo,
			documento_numero = :documento_numero,
			first_name = :first_name,
			last_name = :last_name,
			email = :email,
			phone = :phone,
			ciudad_id = :ciudad_id,
			status = :status,
			archived_at = :archived_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return candidato.ErrCandidatoAlreadyExists()
		}
		return fmt.Errorf("failed to update candidato: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return candidato.ErrCandidatoNotFound()
	}

	return nil
}

// GetByID retrieves a candidato by ID
func (r *PostgresCandidatoRepository) GetByID(ctx context.Context, id kernel.CandidatoID) (*candidato.Candidato, error) {
	var model candidatoModel

	query := `SELECT * FROM candidatos WHERE id = $1`

	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidato.ErrCandidatoNotFound()
		}
		return nil, fmt.Errorf("failed to get candidato: %w", err)
	}

	return model.toEntity(), nil
}

// GetByDocumento retrieves a candidato by document number
func (r *PostgresCandidatoRepository) GetByDocumento(ctx context.Context, numero string) (*candidato.Candidato, error) {
	var model candidatoModel

	query := `SELECT * FROM candidatos WHERE documento_numero = $1`

	err := r.db.GetContext(ctx, &model, query, numero)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidato.ErrCandidatoNotFound()
		}
		return nil, fmt.Errorf("failed to get candidato by documento: %w", err)
	}

	return model.toEntity(), nil
}

// GetByEmail retrieves a candidato by email
func (r *PostgresCandidatoRepository) GetByEmail(ctx context.Context, email kernel.Email) (*candidato.Candidato, error) {
	var model candidatoModel

	query := `SELECT * FROM candidatos WHERE email = $1`

	err := r.db.GetContext(ctx, &model, query, string(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidato.ErrCandidatoNotFound()
		}
		return nil, fmt.Errorf("failed to get candidato by email: %w", err)
	}

	return model.toEntity(), nil
}

// GetBySolicitud retrieves the candidato linked to a solicitud
func (r *PostgresCandidatoRepository) GetBySolicitud(ctx context.Context, solicitudID kernel.SolicitudID) (*candidato.Candidato, error) {
	var model candidatoModel

	query := `
		SELECT c.* FROM candidatos c
		JOIN solicitudes s ON s.candidato_id = c.id
		WHERE s.id = $1
	`

	err := r.db.GetContext(ctx, &model, query, string(solicitudID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidato.ErrCandidatoNotFound().
				WithDetail("solicitud_id", string(solicitudID))
		}
		return nil, fmt.Errorf("failed to get candidato by solicitud: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves candidatos with pagination
func (r *PostgresCandidatoRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidato.Candidato], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM candidatos`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count candidatos: %w", err)
	}

	query := `
		SELECT * FROM candidatos
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var models []candidatoModel
	if err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list candidatos: %w", err)
	}

	items := make([]candidato.Candidato, len(models))
	for i, m := range models {
		items[i] = *m.toEntity()
	}

	return kernel.NewPaginated(items, pagination, total), nil
}

// Exists checks if a candidato exists by ID
func (r *PostgresCandidatoRepository) Exists(ctx context.Context, id kernel.CandidatoID) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM candidatos WHERE id = $1)`

	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check candidato existence: %w", err)
	}

	return exists, nil
}

// UpdatePassword replaces the stored password hash
func (r *PostgresCandidatoRepository) UpdatePassword(ctx context.Context, id kernel.CandidatoID, passwordHash string) error {
	query := `UPDATE candidatos SET password_hash = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), string(id))
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return candidato.ErrCandidatoNotFound()
	}

	return nil
}

// SaveEntrega records one submitted document
func (r *PostgresCandidatoRepository) SaveEntrega(ctx context.Context, entrega *candidato.DocumentoEntrega) error {
	query := `
		INSERT INTO candidato_entregas (
			id, candidato_id, solicitud_id, nombre, bucket_url,
			content_type, size, created_at
		) VALUES (
			:id, :candidato_id, :solicitud_id, :nombre, :bucket_url,
			:content_type, :size, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, entrega)
	if err != nil {
		return fmt.Errorf("failed to save entrega: %w", err)
	}

	return nil
}

// ListEntregas retrieves the documents submitted for a solicitud
func (r *PostgresCandidatoRepository) ListEntregas(ctx context.Context, solicitudID kernel.SolicitudID) ([]candidato.DocumentoEntrega, error) {
	query := `
		SELECT * FROM candidato_entregas
		WHERE solicitud_id = $1
		ORDER BY created_at DESC
	`

	var entregas []candidato.DocumentoEntrega
	if err := r.db.SelectContext(ctx, &entregas, query, string(solicitudID)); err != nil {
		return nil, fmt.Errorf("failed to list entregas: %w", err)
	}

	return entregas, nil
}
