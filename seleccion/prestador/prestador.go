package prestador

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vinculohr/vinculo/pkg/kernel"
)

// PrestadorStatus represents the lifecycle state of a prestador
type PrestadorStatus string

const (
	PrestadorStatusActivo   PrestadorStatus = "ACTIVO"
	PrestadorStatusInactivo PrestadorStatus = "INACTIVO"
)

// TipoServicio identifies the class of medical service a prestador offers
type TipoServicio string

const (
	ServicioExamenIngreso TipoServicio = "examen_ingreso"
	ServicioExamenEgreso  TipoServicio = "examen_egreso"
	ServicioLaboratorio   TipoServicio = "laboratorio"
)

// Servicios is stored as a JSONB column
type Servicios []TipoServicio

func (s Servicios) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

func (s *Servicios) Scan(value interface{}) error {
	if value == nil {
		*s = Servicios{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into Servicios", value)
	}
	return json.Unmarshal(bytes, s)
}

// Prestador is an external medical provider that performs
// pre-employment exams for candidatos in a given ciudad.
type Prestador struct {
	ID        kernel.PrestadorID `db:"id" json:"id"`
	Nombre    string             `db:"nombre" json:"nombre"`
	NIT       string             `db:"nit" json:"nit"`
	Email     kernel.Email       `db:"email" json:"email"`
	Phone     kernel.Phone       `db:"phone" json:"phone"`
	Direccion string             `db:"direccion" json:"direccion"`
	CiudadID  kernel.CiudadID    `db:"ciudad_id" json:"ciudad_id"`
	Servicios Servicios          `db:"servicios" json:"servicios"`
	Status    PrestadorStatus    `db:"status" json:"status"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the prestador can receive new citas
func (p *Prestador) IsActive() bool {
	return p.Status == PrestadorStatusActivo
}

// Activate marks the prestador as available for scheduling
func (p *Prestador) Activate() {
	p.Status = PrestadorStatusActivo
	p.UpdatedAt = time.Now()
}

// Deactivate removes the prestador from scheduling without deleting it
func (p *Prestador) Deactivate() {
	p.Status = PrestadorStatusInactivo
	p.UpdatedAt = time.Now()
}

// OffersServicio checks whether the prestador offers the given service
func (p *Prestador) OffersServicio(servicio TipoServicio) bool {
	for _, s := range p.Servicios {
		if s == servicio {
			return true
		}
	}
	return false
}

// UpdateContactInfo updates the prestador's contact details
func (p *Prestador) UpdateContactInfo(email kernel.Email, phone kernel.Phone, direccion string) {
	p.Email = email
	p.Phone = phone
	p.Direccion = direccion
	p.UpdatedAt = time.Now()
}
