package candidato

import (
	"net/http"

	"github.com/vinculohr/vinculo/pkg/errx"
)

var candidatoErrors = errx.NewRegistry("CANDIDATO")

var (
	ErrCandidatoNotFoundCode = candidatoErrors.Register(
		"NOT_FOUND", errx.TypeNotFound, http.StatusNotFound,
		"Candidato no encontrado")
	ErrCandidatoAlreadyExistsCode = candidatoErrors.Register(
		"ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict,
		"Ya existe un candidato con ese documento")
	ErrInvalidDocumentoCode = candidatoErrors.Register(
		"INVALID_DOCUMENTO", errx.TypeValidation, http.StatusBadRequest,
		"El documento de identidad no es válido")
	ErrCandidatoAlreadyArchivedCode = candidatoErrors.Register(
		"ALREADY_ARCHIVED", errx.TypeBusiness, http.StatusConflict,
		"El candidato ya está archivado")
	ErrCandidatoNotArchivedCode = candidatoErrors.Register(
		"NOT_ARCHIVED", errx.TypeBusiness, http.StatusConflict,
		"El candidato no está archivado")
	ErrCandidatoInactiveCode = candidatoErrors.Register(
		"INACTIVE", errx.TypeBusiness, http.StatusForbidden,
		"El candidato no está activo")
	ErrInvalidRequestCode = candidatoErrors.Register(
		"INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest,
		"Solicitud inválida")
	ErrNoDocumentsCode = candidatoErrors.Register(
		"NO_DOCUMENTS", errx.TypeValidation, http.StatusBadRequest,
		"No se adjuntó ningún documento")
)

func ErrCandidatoNotFound() *errx.Error {
	return candidatoErrors.New(ErrCandidatoNotFoundCode)
}

func ErrCandidatoAlreadyExists() *errx.Error {
	return candidatoErrors.New(ErrCandidatoAlreadyExistsCode)
}

func ErrInvalidDocumento() *errx.Error {
	return candidatoErrors.New(ErrInvalidDocumentoCode)
}

func ErrCandidatoAlreadyArchived() *errx.Error {
	return candidatoErrors.New(ErrCandidatoAlreadyArchivedCode)
}

func ErrCandidatoNotArchived() *errx.Error {
	return candidatoErrors.New(ErrCandidatoNotArchivedCode)
}

func ErrCandidatoInactive() *errx.Error {
	return candidatoErrors.New(ErrCandidatoInactiveCode)
}

func ErrInvalidRequest() *errx.Error {
	return candidatoErrors.New(ErrInvalidRequestCode)
}

func ErrNoDocuments() *errx.Error {
	return candidatoErrors.New(ErrNoDocumentsCode)
}
