package empresa

import (
	"net/http"

	"github.com/vinculohr/vinculo/pkg/errx"
)

var empresaErrors = errx.NewRegistry("EMPRESA")

var (
	ErrEmpresaNotFoundCode = empresaErrors.Register(
		"NOT_FOUND", errx.TypeNotFound, http.StatusNotFound,
		"Empresa no encontrada")
	ErrEmpresaAlreadyExistsCode = empresaErrors.Register(
		"ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict,
		"Ya existe una empresa con ese NIT")
	ErrInvalidNITCode = empresaErrors.Register(
		"INVALID_NIT", errx.TypeValidation, http.StatusBadRequest,
		"El NIT no es válido")
	ErrEmpresaInactiveCode = empresaErrors.Register(
		"INACTIVE", errx.TypeBusiness, http.StatusForbidden,
		"La empresa no está activa")
	ErrEmpresaAlreadyArchivedCode = empresaErrors.Register(
		"ALREADY_ARCHIVED", errx.TypeBusiness, http.StatusConflict,
		"La empresa ya está archivada")
	ErrInvalidRequestCode = empresaErrors.Register(
		"INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest,
		"Solicitud inválida")
)

func ErrEmpresaNotFound() *errx.Error {
	return empresaErrors.New(ErrEmpresaNotFoundCode)
}

func ErrEmpresaAlreadyExists() *errx.Error {
	return empresaErrors.New(ErrEmpresaAlreadyExistsCode)
}

func ErrInvalidNIT() *errx.Error {
	return empresaErrors.New(ErrInvalidNITCode)
}

func ErrEmpresaInactive() *errx.Error {
	return empresaErrors.New(ErrEmpresaInactiveCode)
}

func ErrEmpresaAlreadyArchived() *errx.Error {
	return empresaErrors.New(ErrEmpresaAlreadyArchivedCode)
}

func ErrInvalidRequest() *errx.Error {
	return empresaErrors.New(ErrInvalidRequestCode)
}
