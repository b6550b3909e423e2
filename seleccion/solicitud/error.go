package solicitud

import (
	"net/http"

	"github.com/vinculohr/vinculo/pkg/errx"
)

var solicitudErrors = errx.NewRegistry("SOLICITUD")

var (
	ErrSolicitudNotFoundCode = solicitudErrors.Register(
		"NOT_FOUND", errx.TypeNotFound, http.StatusNotFound,
		"Solicitud no encontrada")
	ErrInvalidStateTransitionCode = solicitudErrors.Register(
		"INVALID_STATE_TRANSITION", errx.TypeBusiness, http.StatusConflict,
		"La transición de estado no es válida")
	ErrSolicitudClosedCode = solicitudErrors.Register(
		"CLOSED", errx.TypeBusiness, http.StatusConflict,
		"La solicitud está en un estado terminal")
	ErrObservacionRequiredCode = solicitudErrors.Register(
		"OBSERVACION_REQUIRED", errx.TypeValidation, http.StatusBadRequest,
		"La acción requiere una observación")
	ErrCandidatoMissingCode = solicitudErrors.Register(
		"CANDIDATO_MISSING", errx.TypeBusiness, http.StatusUnprocessableEntity,
		"La solicitud no tiene un candidato registrado")
	ErrCandidatoEmailMissingCode = solicitudErrors.Register(
		"CANDIDATO_EMAIL_MISSING", errx.TypeBusiness, http.StatusUnprocessableEntity,
		"El candidato no tiene un correo electrónico registrado")
	ErrNoPrestadoresCode = solicitudErrors.Register(
		"NO_PRESTADORES", errx.TypeBusiness, http.StatusUnprocessableEntity,
		"No hay prestadores disponibles en la ciudad")
	ErrAnalistaInvalidCode = solicitudErrors.Register(
		"ANALISTA_INVALID", errx.TypeBusiness, http.StatusUnprocessableEntity,
		"El analista no es válido para asignación")
	ErrInvalidEstadoCode = solicitudErrors.Register(
		"INVALID_ESTADO", errx.TypeValidation, http.StatusBadRequest,
		"Estado desconocido")
	ErrInvalidRequestCode = solicitudErrors.Register(
		"INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest,
		"Solicitud inválida")
	ErrNotStandByCode = solicitudErrors.Register(
		"NOT_STAND_BY", errx.TypeBusiness, http.StatusConflict,
		"La solicitud no está en stand by")
)

func ErrSolicitudNotFound() *errx.Error {
	return solicitudErrors.New(ErrSolicitudNotFoundCode)
}

func ErrInvalidStateTransition() *errx.Error {
	return solicitudErrors.New(ErrInvalidStateTransitionCode)
}

func ErrSolicitudClosed() *errx.Error {
	return solicitudErrors.New(ErrSolicitudClosedCode)
}

func ErrObservacionRequired() *errx.Error {
	return solicitudErrors.New(ErrObservacionRequiredCode)
}

func ErrCandidatoMissing() *errx.Error {
	return solicitudErrors.New(ErrCandidatoMissingCode)
}

func ErrCandidatoEmailMissing() *errx.Error {
	return solicitudErrors.New(ErrCandidatoEmailMissingCode)
}

// ErrNoPrestadores is retryable with an alternate ciudad.
func ErrNoPrestadores(ciudad string) *errx.Error {
	return solicitudErrors.New(ErrNoPrestadoresCode).
		WithDetail("ciudad", ciudad).
		WithDetail("retryable_with", "ciudadId")
}

func ErrAnalistaInvalid() *errx.Error {
	return solicitudErrors.New(ErrAnalistaInvalidCode)
}

func ErrInvalidEstado(estado string) *errx.Error {
	return solicitudErrors.New(ErrInvalidEstadoCode).WithDetail("estado", estado)
}

func ErrInvalidRequest() *errx.Error {
	return solicitudErrors.New(ErrInvalidRequestCode)
}

func ErrNotStandBy() *errx.Error {
	return solicitudErrors.New(ErrNotStandByCode)
}
