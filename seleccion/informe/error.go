package informe

import (
	"net/http"

	"github.com/vinculohr/vinculo/pkg/errx"
)

var informeErrors = errx.NewRegistry("INFORME")

var (
	ErrExportFailedCode = informeErrors.Register(
		"EXPORT_FAILED", errx.TypeInternal, http.StatusInternalServerError,
		"No se pudo generar el archivo de exportación")
	ErrInvalidRangoCode = informeErrors.Register(
		"INVALID_RANGO", errx.TypeValidation, http.StatusBadRequest,
		"Rango de fechas inválido")
	ErrInvalidRequestCode = informeErrors.Register(
		"INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest,
		"Solicitud inválida")
)

func ErrExportFailed() *errx.Error {
	return informeErrors.New(ErrExportFailedCode)
}

func ErrInvalidRango(rango string) *errx.Error {
	return informeErrors.New(ErrInvalidRangoCode).WithDetail("rango", rango)
}

func ErrInvalidRequest() *errx.Error {
	return informeErrors.New(ErrInvalidRequestCode)
}
