package catalogo

import (
	"time"
)

// Kind names one reference-data catalog. Each kind is backed by its own
// table and addressed by the API path segment with the same value.
type Kind string

const (
	KindCargo       Kind = "cargos"
	KindCiudad      Kind = "ciudades"
	KindSucursal    Kind = "sucursales"
	KindCentroCosto Kind = "centros-costo"
)

// AllKinds lists the supported catalogs
var AllKinds = []Kind{KindCargo, KindCiudad, KindSucursal, KindCentroCosto}

// IsValid reports whether the kind is a known catalog
func (k Kind) IsValid() bool {
	switch k {
	case KindCargo, KindCiudad, KindSucursal, KindCentroCosto:
		return true
	}
	return false
}

// Table returns the backing table name
func (k Kind) Table() string {
	switch k {
	case KindCargo:
		return "cargos"
	case KindCiudad:
		return "ciudades"
	case KindSucursal:
		return "sucursales"
	case KindCentroCosto:
		return "centros_costo"
	}
	return ""
}

// Item is one catalog entry
type Item struct {
	ID        string    `db:"id" json:"id"`
	Nombre    string    `db:"nombre" json:"nombre"`
	Activo    bool      `db:"activo" json:"activo"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CreateItemRequest - DTO for adding a catalog entry
type CreateItemRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

// UpdateItemRequest - DTO for renaming or toggling a catalog entry
type UpdateItemRequest struct {
	Nombre *string `json:"nombre,omitempty"`
	Activo *bool   `json:"activo,omitempty"`
}
