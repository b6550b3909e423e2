package cita

import (
	"net/http"

	"github.com/vinculohr/vinculo/pkg/errx"
)

var citaErrors = errx.NewRegistry("CITA")

var (
	ErrCitaNotFoundCode = citaErrors.Register(
		"NOT_FOUND", errx.TypeNotFound, http.StatusNotFound,
		"Cita no encontrada")
	ErrCitaNotPendingCode = citaErrors.Register(
		"NOT_PENDING", errx.TypeBusiness, http.StatusConflict,
		"La cita ya no está programada")
	ErrNoPrestadorForCiudadCode = citaErrors.Register(
		"NO_PRESTADOR_FOR_CIUDAD", errx.TypeBusiness, http.StatusConflict,
		"No hay prestadores disponibles en la ciudad")
	ErrInvalidFechaCode = citaErrors.Register(
		"INVALID_FECHA", errx.TypeValidation, http.StatusBadRequest,
		"La fecha de la cita no es válida")
	ErrInvalidRequestCode = citaErrors.Register(
		"INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest,
		"Solicitud inválida")
)

func ErrCitaNotFound() *errx.Error {
	return citaErrors.New(ErrCitaNotFoundCode)
}

func ErrCitaNotPending() *errx.Error {
	return citaErrors.New(ErrCitaNotPendingCode)
}

func ErrNoPrestadorForCiudad(ciudadID string) *errx.Error {
	return citaErrors.New(ErrNoPrestadorForCiudadCode).WithDetail("ciudad_id", ciudadID)
}

func ErrInvalidFecha(fecha string) *errx.Error {
	return citaErrors.New(ErrInvalidFechaCode).WithDetail("fecha", fecha)
}

func ErrInvalidRequest() *errx.Error {
	return citaErrors.New(ErrInvalidRequestCode)
}
