package empresa

import (
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// EmpresaStatus represents the status of an empresa
type EmpresaStatus string

const (
	EmpresaStatusActiva    EmpresaStatus = "ACTIVA"
	EmpresaStatusInactiva  EmpresaStatus = "INACTIVA"
	EmpresaStatusArchivada EmpresaStatus = "ARCHIVADA"
)

type Empresa struct {
	ID           kernel.EmpresaID   `db:"id" json:"id"`
	NIT          string             `db:"nit" json:"nit"`
	RazonSocial  kernel.RazonSocial `db:"razon_social" json:"razon_social"`
	Email        kernel.Email       `db:"email" json:"email"`
	Phone        kernel.Phone       `db:"phone" json:"phone"`
	CiudadID     kernel.CiudadID    `db:"ciudad_id" json:"ciudad_id"`
	PasswordHash string             `db:"password_hash" json:"-"`
	// RequiereAprobacion flags empresas whose solicitudes start in
	// validacion cliente instead of pendiente.
	RequiereAprobacion bool          `db:"requiere_aprobacion" json:"requiere_aprobacion"`
	Status             EmpresaStatus `db:"status" json:"status"`
	CreatedAt          time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the empresa is active
func (e *Empresa) IsActive() bool {
	return e.Status == EmpresaStatusActiva
}

// ValidNIT reports whether the stored NIT is a valid company document
func (e *Empresa) ValidNIT() bool {
	doc := kernel.Documento{Type: kernel.DocumentoTypeNIT, Number: e.NIT}
	return doc.IsValid()
}

// Deactivate marks the empresa as inactive
func (e *Empresa) Deactivate() {
	e.Status = EmpresaStatusInactiva
	e.UpdatedAt = time.Now()
}

// Activate marks the empresa as active
func (e *Empresa) Activate() {
	e.Status = EmpresaStatusActiva
	e.UpdatedAt = time.Now()
}

// Archive marks the empresa as archived
func (e *Empresa) Archive() error {
	if e.Status == EmpresaStatusArchivada {
		return ErrEmpresaAlreadyArchived()
	}
	e.Status = EmpresaStatusArchivada
	e.UpdatedAt = time.Now()
	return nil
}
