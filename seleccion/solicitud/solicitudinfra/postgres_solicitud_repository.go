package solicitudinfra

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/solicitud"
)

// PostgresSolicitudRepository implements solicitud.Repository using PostgreSQL
type PostgresSolicitudRepository struct {
	db *sqlx.DB
}

// NewPostgresSolicitudRepository creates a new PostgreSQL solicitud repository
func NewPostgresSolicitudRepository(db *sqlx.DB) *PostgresSolicitudRepository {
	return &PostgresSolicitudRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type solicitudModel struct {
	ID              string                    `db:"id"`
	Consecutivo     int64                     `db:"consecutivo"`
	EmpresaID       string                    `db:"empresa_id"`
	CandidatoID     *string                   `db:"candidato_id"`
	NumeroDocumento string                    `db:"numero_documento"`
	NombreCandidato string                    `db:"nombre_candidato"`
	AnalistaID      *string                   `db:"analista_id"`
	EstructuraDatos solicitud.EstructuraDatos `db:"estructura_datos"`
	Estado          string                    `db:"estado"`
	EstadoAnterior  *string                   `db:"estado_anterior"`
	EstadoChangedAt *time.Time                `db:"estado_changed_at"`
	CreatedAt       time.Time                 `db:"created_at"`
	UpdatedAt       time.Time                 `db:"updated_at"`
}

func (m *solicitudModel) toEntity() *solicitud.Solicitud {
	var candidatoID *kernel.CandidatoID
	if m.CandidatoID != nil {
		cid := kernel.CandidatoID(*m.CandidatoID)
		candidatoID = &cid
	}

	var analistaID *kernel.UserID
	if m.AnalistaID != nil {
		uid := kernel.UserID(*m.AnalistaID)
		analistaID = &uid
	}

	var estadoAnterior *solicitud.Estado
	if m.EstadoAnterior != nil {
		ea := solicitud.Estado(*m.EstadoAnterior)
		estadoAnterior = &ea
	}

	return &solicitud.Solicitud{
		ID:              kernel.SolicitudID(m.ID),
		Consecutivo:     m.Consecutivo,
		EmpresaID:       kernel.EmpresaID(m.EmpresaID),
		CandidatoID:     candidatoID,
		NumeroDocumento: m.NumeroDocumento,
		NombreCandidato: m.NombreCandidato,
		AnalistaID:      analistaID,
		EstructuraDatos: m.EstructuraDatos,
		Estado:          solicitud.Estado(m.Estado),
		EstadoAnterior:  estadoAnterior,
		EstadoChangedAt: m.EstadoChangedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromEntity(s *solicitud.Solicitud) *solicitudModel {
	var candidatoID *string
	if s.CandidatoID != nil {
		cid := string(*s.CandidatoID)
		candidatoID = &cid
	}

	var analistaID *string
	if s.AnalistaID != nil {
		uid := string(*s.AnalistaID)
		analistaID = &uid
	}

	var estadoAnterior *string
	if s.EstadoAnterior != nil {
		ea := string(*s.EstadoAnterior)
		estadoAnterior = &ea
	}

	return &solicitudModel{
		ID:              string(s.ID),
		Consecutivo:     s.Consecutivo,
		EmpresaID:       string(s.EmpresaID),
		CandidatoID:     candidatoID,
		NumeroDocumento: s.NumeroDocumento,
		NombreCandidato: s.NombreCandidato,
		AnalistaID:      analistaID,
		EstructuraDatos: s.EstructuraDatos,
		Estado:          string(s.Estado),
		EstadoAnterior:  estadoAnterior,
		EstadoChangedAt: s.EstadoChangedAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new solicitud. The consecutivo comes from a sequence.
func (r *PostgresSolicitudRepository) Create(ctx context.Context, s *solicitud.Solicitud) error {
	model := fromEntity(s)

	query := `
		INSERT INTO solicitudes (
			id, empresa_id, candidato_id, numero_documento, nombre_candidato,
			analista_id, estructura_datos, estado, estado_anterior,
			estado_changed_at, created_at, updated_at
		) VALUES (
			:id, :empresa_id, :candidato_id, :numero_documento, :nombre_candidato,
			:analista_id, :estructura_datos, :estado, :estado_anterior,
			:estado_changed_at, :created_at, :updated_at
		)
		RETURNING consecutivo
	`

	rows, err := r.db.NamedQueryContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" { // foreign_key_violation
			return solicitud.ErrInvalidRequest().
				WithDetail("constraint", pqErr.Constraint)
		}
		return fmt.Errorf("failed to create solicitud: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&s.Consecutivo); err != nil {
			return fmt.Errorf("failed to read consecutivo: %w", err)
		}
	}

	return nil
}

// Update updates an existing solicitud
func (r *PostgresSolicitudRepository) Update(ctx context.Context, id kernel.SolicitudID, s *solicitud.Solicitud) error {
	model := fromEntity(s)
	model.ID = string(id)

	query := `
		UPDATE solicitudes SET
			candidato_id = :candidato_id,
			numero_documento = :numero_documento,
			nombre_candidato = :nombre_candidato,
			analista_id = :analista_id,
			estructura_datos = :estructura_datos,
			estado = :estado,
			estado_anterior = :estado_anterior,
			estado_changed_at = :estado_changed_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update solicitud: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return solicitud.ErrSolicitudNotFound()
	}

	return nil
}

// GetByID retrieves a solicitud by ID
func (r *PostgresSolicitudRepository) GetByID(ctx context.Context, id kernel.SolicitudID) (*solicitud.Solicitud, error) {
	var model solicitudModel

	query := `SELECT * FROM solicitudes WHERE id = $1`

	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, solicitud.ErrSolicitudNotFound()
		}
		return nil, fmt.Errorf("failed to get solicitud: %w", err)
	}

	return model.toEntity(), nil
}

// Delete deletes a solicitud by ID
func (r *PostgresSolicitudRepository) Delete(ctx context.Context, id kernel.SolicitudID) error {
	query := `DELETE FROM solicitudes WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete solicitud: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return solicitud.ErrSolicitudNotFound()
	}

	return nil
}

// buildFilterClause assembles the WHERE clause for a normalized filter.
// Conditions are ANDed; an empty filter yields an empty clause.
func buildFilterClause(filter solicitud.ListFilter) (string, []any) {
	var conditions []string
	var args []any
	arg := 1

	add := func(condition string, value any) {
		conditions = append(conditions, fmt.Sprintf(condition, arg))
		args = append(args, value)
		arg++
	}

	if filter.SolicitudID != "" {
		// The grid shows the consecutivo, so a numeric value filters on it;
		// anything else is treated as the uuid primary key.
		if consecutivo, err := strconv.ParseInt(filter.SolicitudID, 10, 64); err == nil {
			add("s.consecutivo = $%d", consecutivo)
		} else {
			add("s.id = $%d", filter.SolicitudID)
		}
	}
	if filter.NumeroDocumento != "" {
		add("s.numero_documento = $%d", filter.NumeroDocumento)
	}
	if filter.NombreCandidato != "" {
		add("s.nombre_candidato ILIKE $%d", "%"+filter.NombreCandidato+"%")
	}
	if filter.CargoID != "" {
		// The cargo lives inside the dynamic payload as a cargo-ref campo.
		add(`EXISTS (
			SELECT 1
			FROM jsonb_array_elements(s.estructura_datos->'secciones') sec,
			     jsonb_array_elements(sec->'campos') campo
			WHERE campo->>'tipo' = 'cargo-ref' AND campo->>'valor' = $%d
		)`, filter.CargoID)
	}
	if filter.Estado != "" {
		add("s.estado = $%d", filter.Estado)
	}
	if filter.EmpresaID != "" {
		add("s.empresa_id = $%d", filter.EmpresaID)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List retrieves solicitudes matching a normalized filter
func (r *PostgresSolicitudRepository) List(ctx context.Context, filter solicitud.ListFilter) (*kernel.Paginated[solicitud.Solicitud], error) {
	where, args := buildFilterClause(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM solicitudes s` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count solicitudes: %w", err)
	}

	pagination := filter.Pagination()
	query := fmt.Sprintf(`
		SELECT s.* FROM solicitudes s%s
		ORDER BY s.consecutivo DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, pagination.PageSize, pagination.Offset())

	var models []solicitudModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list solicitudes: %w", err)
	}

	items := make([]solicitud.Solicitud, len(models))
	for i, m := range models {
		items[i] = *m.toEntity()
	}

	return kernel.NewPaginated(items, pagination, total), nil
}

// ListForExport retrieves every matching row joined with the empresa and
// analista columns the spreadsheet needs, ordered by consecutivo
func (r *PostgresSolicitudRepository) ListForExport(ctx context.Context, filter solicitud.ListFilter) ([]solicitud.ExportRow, error) {
	where, args := buildFilterClause(filter)

	query := `
		SELECT
			s.consecutivo,
			s.numero_documento,
			COALESCE(c.email, '') AS candidato_email,
			e.razon_social AS empresa_nombre,
			COALESCE(ce.nombre, '') AS empresa_ciudad,
			COALESCE(u.first_name || ' ' || u.last_name, '') AS analista_nombre,
			COALESCE(u.email, '') AS analista_email,
			s.estado,
			s.estructura_datos,
			s.created_at,
			s.updated_at
		FROM solicitudes s
		JOIN empresas e ON e.id = s.empresa_id
		LEFT JOIN ciudades ce ON ce.id = e.ciudad_id
		LEFT JOIN candidatos c ON c.id = s.candidato_id
		LEFT JOIN usuarios u ON u.id = s.analista_id
	` + where + ` ORDER BY s.consecutivo ASC`

	var rows []solicitud.ExportRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list solicitudes for export: %w", err)
	}

	return rows, nil
}

// Exists checks if a solicitud exists by ID
func (r *PostgresSolicitudRepository) Exists(ctx context.Context, id kernel.SolicitudID) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM solicitudes WHERE id = $1)`

	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check solicitud existence: %w", err)
	}

	return exists, nil
}

// AppendObservacion appends an audit entry
func (r *PostgresSolicitudRepository) AppendObservacion(ctx context.Context, obs *solicitud.Observacion) error {
	query := `
		INSERT INTO solicitud_observaciones (
			id, solicitud_id, accion, observacion, actor_id, actor_nombre, created_at
		) VALUES (
			:id, :solicitud_id, :accion, :observacion, :actor_id, :actor_nombre, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, obs)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" { // foreign_key_violation
			return solicitud.ErrSolicitudNotFound()
		}
		return fmt.Errorf("failed to append observacion: %w", err)
	}

	return nil
}

// ListObservaciones retrieves the audit trail, newest first
func (r *PostgresSolicitudRepository) ListObservaciones(ctx context.Context, id kernel.SolicitudID) ([]solicitud.Observacion, error) {
	query := `
		SELECT * FROM solicitud_observaciones
		WHERE solicitud_id = $1
		ORDER BY created_at DESC
	`

	var observaciones []solicitud.Observacion
	if err := r.db.SelectContext(ctx, &observaciones, query, string(id)); err != nil {
		return nil, fmt.Errorf("failed to list observaciones: %w", err)
	}

	return observaciones, nil
}

type estadoCountModel struct {
	Estado string `db:"estado"`
	Total  int64  `db:"total"`
}

// CountByEstado aggregates solicitudes per estado in a date range
func (r *PostgresSolicitudRepository) CountByEstado(ctx context.Context, desde, hasta string) (map[solicitud.Estado]int64, error) {
	query := `
		SELECT estado, COUNT(*) AS total
		FROM solicitudes
		WHERE created_at >= $1::date AND created_at < $2::date + INTERVAL '1 day'
		GROUP BY estado
	`

	var rows []estadoCountModel
	if err := r.db.SelectContext(ctx, &rows, query, desde, hasta); err != nil {
		return nil, fmt.Errorf("failed to count by estado: %w", err)
	}

	counts := make(map[solicitud.Estado]int64, len(rows))
	for _, row := range rows {
		counts[solicitud.Estado(row.Estado)] = row.Total
	}

	return counts, nil
}

type empresaCountModel struct {
	Empresa string `db:"empresa"`
	Total   int64  `db:"total"`
}

// CountByEmpresa aggregates solicitudes per empresa in a date range
func (r *PostgresSolicitudRepository) CountByEmpresa(ctx context.Context, desde, hasta string) (map[string]int64, error) {
	query := `
		SELECT e.razon_social AS empresa, COUNT(*) AS total
		FROM solicitudes s
		JOIN empresas e ON e.id = s.empresa_id
		WHERE s.created_at >= $1::date AND s.created_at < $2::date + INTERVAL '1 day'
		GROUP BY e.razon_social
	`

	var rows []empresaCountModel
	if err := r.db.SelectContext(ctx, &rows, query, desde, hasta); err != nil {
		return nil, fmt.Errorf("failed to count by empresa: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Empresa] = row.Total
	}

	return counts, nil
}
