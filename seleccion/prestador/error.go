package prestador

import (
	"net/http"

	"github.com/vinculohr/vinculo/pkg/errx"
)

var prestadorErrors = errx.NewRegistry("PRESTADOR")

var (
	ErrPrestadorNotFoundCode = prestadorErrors.Register(
		"NOT_FOUND", errx.TypeNotFound, http.StatusNotFound,
		"Prestador no encontrado")
	ErrPrestadorAlreadyExistsCode = prestadorErrors.Register(
		"ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict,
		"Ya existe un prestador con ese NIT")
	ErrPrestadorInactiveCode = prestadorErrors.Register(
		"INACTIVE", errx.TypeBusiness, http.StatusConflict,
		"El prestador no está activo")
	ErrInvalidNITCode = prestadorErrors.Register(
		"INVALID_NIT", errx.TypeValidation, http.StatusBadRequest,
		"El NIT no es válido")
	ErrInvalidRequestCode = prestadorErrors.Register(
		"INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest,
		"Solicitud inválida")
)

func ErrPrestadorNotFound() *errx.Error {
	return prestadorErrors.New(ErrPrestadorNotFoundCode)
}

func ErrPrestadorAlreadyExists() *errx.Error {
	return prestadorErrors.New(ErrPrestadorAlreadyExistsCode)
}

func ErrPrestadorInactive() *errx.Error {
	return prestadorErrors.New(ErrPrestadorInactiveCode)
}

func ErrInvalidNIT(nit string) *errx.Error {
	return prestadorErrors.New(ErrInvalidNITCode).WithDetail("nit", nit)
}

func ErrInvalidRequest() *errx.Error {
	return prestadorErrors.New(ErrInvalidRequestCode)
}
