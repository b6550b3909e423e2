package catalogo

import (
	"net/http"

	"github.com/vinculohr/vinculo/pkg/errx"
)

var catalogoErrors = errx.NewRegistry("CATALOGO")

var (
	ErrItemNotFoundCode = catalogoErrors.Register(
		"ITEM_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound,
		"Entrada de catálogo no encontrada")
	ErrUnknownKindCode = catalogoErrors.Register(
		"UNKNOWN_KIND", errx.TypeValidation, http.StatusBadRequest,
		"Catálogo desconocido")
	ErrItemAlreadyExistsCode = catalogoErrors.Register(
		"ITEM_ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict,
		"Ya existe una entrada con ese nombre")
	ErrInvalidRequestCode = catalogoErrors.Register(
		"INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest,
		"Solicitud inválida")
)

func ErrItemNotFound() *errx.Error {
	return catalogoErrors.New(ErrItemNotFoundCode)
}

func ErrUnknownKind(kind string) *errx.Error {
	return catalogoErrors.New(ErrUnknownKindCode).WithDetail("kind", kind)
}

func ErrItemAlreadyExists() *errx.Error {
	return catalogoErrors.New(ErrItemAlreadyExistsCode)
}

func ErrInvalidRequest() *errx.Error {
	return catalogoErrors.New(ErrInvalidRequestCode)
}
