package candidato

import (
	"fmt"
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// CandidatoStatus represents the status of a candidato
type CandidatoStatus string

const (
	CandidatoStatusActivo    CandidatoStatus = "ACTIVO"
	CandidatoStatusInactivo  CandidatoStatus = "INACTIVO"
	CandidatoStatusArchivado CandidatoStatus = "ARCHIVADO"
)

type Candidato struct {
	ID           kernel.CandidatoID `db:"id" json:"id"`
	Documento    kernel.Documento   `json:"documento"`
	FirstName    kernel.FirstName   `db:"first_name" json:"first_name"`
	LastName     kernel.LastName    `db:"last_name" json:"last_name"`
	Email        kernel.Email       `db:"email" json:"email"`
	Phone        kernel.Phone       `db:"phone" json:"phone"`
	CiudadID     kernel.CiudadID    `db:"ciudad_id" json:"ciudad_id"`
	PasswordHash string             `db:"password_hash" json:"-"`
	Status       CandidatoStatus    `db:"status" json:"status"`
	ArchivedAt   *time.Time         `db:"archived_at" json:"archived_at,omitempty"`
	CreatedAt    time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the candidato is active
func (c *Candidato) IsActive() bool {
	return c.Status == CandidatoStatusActivo
}

// IsArchived checks if the candidato is archived
func (c *Candidato) IsArchived() bool {
	return c.Status == CandidatoStatusArchivado
}

// GetFullName returns the candidato's full name
func (c *Candidato) GetFullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// HasEmail reports whether the candidato can be reached by email
func (c *Candidato) HasEmail() bool {
	return c.Email != ""
}

// Archive marks the candidato as archived
func (c *Candidato) Archive() error {
	if c.IsArchived() {
		return ErrCandidatoAlreadyArchived()
	}

	now := time.Now()
	c.Status = CandidatoStatusArchivado
	c.ArchivedAt = &now
	c.UpdatedAt = now
	return nil
}

// Unarchive removes archived status
func (c *Candidato) Unarchive() error {
	if !c.IsArchived() {
		return ErrCandidatoNotArchived()
	}

	c.Status = CandidatoStatusActivo
	c.ArchivedAt = nil
	c.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the candidato as inactive
func (c *Candidato) Deactivate() {
	c.Status = CandidatoStatusInactivo
	c.UpdatedAt = time.Now()
}

// Activate marks the candidato as active
func (c *Candidato) Activate() {
	c.Status = CandidatoStatusActivo
	c.UpdatedAt = time.Now()
}

// UpdateContactInfo updates the candidato's contact information
func (c *Candidato) UpdateContactInfo(email kernel.Email, phone kernel.Phone) {
	if email != "" {
		c.Email = email
	}
	if phone != "" {
		c.Phone = phone
	}
	c.UpdatedAt = time.Now()
}

// UpdateDocumento replaces the identity document
func (c *Candidato) UpdateDocumento(doc kernel.Documento) error {
	if !doc.IsValid() {
		return ErrInvalidDocumento().
			WithDetail("tipo", string(doc.Type)).
			WithDetail("numero", doc.Number)
	}
	c.Documento = doc
	c.UpdatedAt = time.Now()
	return nil
}

// DocumentoEntrega is one file the candidato submitted for a solicitud
type DocumentoEntrega struct {
	ID          string             `db:"id" json:"id"`
	CandidatoID kernel.CandidatoID `db:"candidato_id" json:"candidato_id"`
	SolicitudID kernel.SolicitudID `db:"solicitud_id" json:"solicitud_id"`
	Nombre      string             `db:"nombre" json:"nombre"`
	BucketURL   kernel.BucketURL   `db:"bucket_url" json:"bucket_url"`
	ContentType string             `db:"content_type" json:"content_type"`
	Size        int64              `db:"size" json:"size"`
	CreatedAt   time.Time          `db:"created_at" json:"created_at"`
}
