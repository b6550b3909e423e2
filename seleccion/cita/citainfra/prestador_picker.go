package citainfra

import (
	"context"

	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/seleccion/cita"
	"github.com/vinculohr/vinculo/seleccion/prestador"
)

// CoveragePicker picks the first active prestador covering a ciudad.
// Providers are listed alphabetically so the choice is stable.
type CoveragePicker struct {
	prestadores prestador.Repository
}

// NewCoveragePicker creates a picker backed by the prestador repository
func NewCoveragePicker(prestadores prestador.Repository) *CoveragePicker {
	return &CoveragePicker{
		prestadores: prestadores,
	}
}

// PickForCiudad returns a prestador serving the ciudad, or an error
// when the ciudad has no active coverage
func (p *CoveragePicker) PickForCiudad(ctx context.Context, ciudadID kernel.CiudadID) (kernel.PrestadorID, error) {
	items, err := p.prestadores.ListByCiudad(ctx, ciudadID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", cita.ErrNoPrestadorForCiudad(string(ciudadID))
	}
	return items[0].ID, nil
}
