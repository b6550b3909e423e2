package certificado

import (
	"net/http"

	"github.com/vinculohr/vinculo/pkg/errx"
)

var certificadoErrors = errx.NewRegistry("CERTIFICADO")

var (
	ErrCertificadoNotFoundCode = certificadoErrors.Register(
		"NOT_FOUND", errx.TypeNotFound, http.StatusNotFound,
		"Certificado no encontrado")
	ErrAlreadyIssuedCode = certificadoErrors.Register(
		"ALREADY_ISSUED", errx.TypeConflict, http.StatusConflict,
		"La solicitud ya tiene un certificado emitido")
	ErrSolicitudNotContratadoCode = certificadoErrors.Register(
		"SOLICITUD_NOT_CONTRATADO", errx.TypeBusiness, http.StatusConflict,
		"Solo se certifican solicitudes contratadas")
	ErrInvalidCodigoCode = certificadoErrors.Register(
		"INVALID_CODIGO", errx.TypeNotFound, http.StatusNotFound,
		"Código de verificación desconocido")
	ErrInvalidCanalCode = certificadoErrors.Register(
		"INVALID_CANAL", errx.TypeValidation, http.StatusBadRequest,
		"Canal de entrega desconocido")
	ErrInvalidRequestCode = certificadoErrors.Register(
		"INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest,
		"Solicitud inválida")
)

func ErrCertificadoNotFound() *errx.Error {
	return certificadoErrors.New(ErrCertificadoNotFoundCode)
}

func ErrAlreadyIssued(solicitudID string) *errx.Error {
	return certificadoErrors.New(ErrAlreadyIssuedCode).WithDetail("solicitud_id", solicitudID)
}

func ErrSolicitudNotContratado(solicitudID string) *errx.Error {
	return certificadoErrors.New(ErrSolicitudNotContratadoCode).WithDetail("solicitud_id", solicitudID)
}

func ErrInvalidCodigo(codigo string) *errx.Error {
	return certificadoErrors.New(ErrInvalidCodigoCode).WithDetail("codigo", codigo)
}

func ErrInvalidCanal(canal string) *errx.Error {
	return certificadoErrors.New(ErrInvalidCanalCode).WithDetail("canal", canal)
}

func ErrInvalidRequest() *errx.Error {
	return certificadoErrors.New(ErrInvalidRequestCode)
}
