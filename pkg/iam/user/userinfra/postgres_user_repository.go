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

// PostgresUserRepository implements user.Repository using PostgreSQL
type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository creates a new PostgreSQL usuario repository
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

type usuarioModel struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	PasswordHash string    `db:"password_hash"`
	PerfilID     string    `db:"perfil_id"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (m *usuarioModel) toEntity() *user.Usuario {
	return &user.Usuario{
		ID:           kernel.UserID(m.ID),
		Email:        kernel.Email(m.Email),
		FirstName:    kernel.FirstName(m.FirstName),
		LastName:     kernel.LastName(m.LastName),
		PasswordHash: m.PasswordHash,
		PerfilID:     kernel.PerfilID(m.PerfilID),
		Status:       user.UserStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromEntity(u *user.Usuario) *usuarioModel {
	return &usuarioModel{
		ID:           string(u.ID),
		Email:        string(u.Email),
		FirstName:    string(u.FirstName),
		LastName:     string(u.LastName),
		PasswordHash: u.PasswordHash,
		PerfilID:     string(u.PerfilID),
		Status:       string(u.Status),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// Create creates a new usuario
func (r *PostgresUserRepository) Create(ctx context.Context, usuario *user.Usuario) error {
	model := fromEntity(usuario)

	query := `
		INSERT INTO usuarios (
			id, email, first_name, last_name, password_hash,
			perfil_id, status, created_at, updated_at
		) VALUES (
			:id, :email, :first_name, :last_name, :password_hash,
			:perfil_id, :status, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return user.ErrUserAlreadyExists()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return user.ErrPerfilNotFound()
			}
		}
		return fmt.Errorf("failed to create usuario: %w", err)
	}

	return nil
}

// Update updates an existing usuario
func (r *PostgresUserRepository) Update(ctx context.Context, id kernel.UserID, usuario *user.Usuario) error {
	model := fromEntity(usuario)
	model.ID = string(id)

	query := `
		UPDATE usuarios SET
			email = :email,
			first_name = :first_name,
			last_name = :last_name,
			perfil_id = :perfil_id,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update usuario: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return user.ErrUserNotFound()
	}

	return nil
}

// GetByID retrieves a usuario by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id kernel.UserID) (*user.Usuario, error) {
	query := `
		SELECT id, email, first_name, last_name, password_hash,
		       perfil_id, status, created_at, updated_at
		FROM usuarios
		WHERE id = $1
	`

	var model usuarioModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound()
		}
		return nil, fmt.Errorf("failed to get usuario by id: %w", err)
	}

	return model.toEntity(), nil
}

// GetByEmail retrieves a usuario by email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.Usuario, error) {
	query := `
		SELECT id, email, first_name, last_name, password_hash,
		       perfil_id, status, created_at, updated_at
		FROM usuarios
		WHERE email = $1
	`

	var model usuarioModel
	err := r.db.GetContext(ctx, &model, query, string(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound()
		}
		return nil, fmt.Errorf("failed to get usuario by email: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves usuarios with pagination
func (r *PostgresUserRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[user.Usuario], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM usuarios`); err != nil {
		return nil, fmt.Errorf("failed to count usuarios: %w", err)
	}

	query := `
		SELECT id, email, first_name, last_name, password_hash,
		       perfil_id, status, created_at, updated_at
		FROM usuarios
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var models []usuarioModel
	err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}

	entities := make([]user.Usuario, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return kernel.NewPaginated(entities, pagination, total), nil
}

// Exists checks if a usuario exists by ID
func (r *PostgresUserRepository) Exists(ctx context.Context, id kernel.UserID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM usuarios WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check usuario existence: %w", err)
	}

	return exists, nil
}

// UpdatePassword replaces the stored password hash
func (r *PostgresUserRepository) UpdatePassword(ctx context.Context, id kernel.UserID, passwordHash string) error {
	query := `
		UPDATE usuarios
		SET password_hash = $1,
		    updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), string(id))
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return user.ErrUserNotFound()
	}

	return nil
}
