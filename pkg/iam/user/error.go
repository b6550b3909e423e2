package user

import (
	"net/http"

	"github.com/vinculohr/vinculo/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("USER")

// Error codes
var (
	CodeUserNotFound       = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeUserAlreadyExists  = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "User already exists")
	CodeUserSuspended      = ErrRegistry.Register("SUSPENDED", errx.TypeBusiness, http.StatusForbidden, "User is suspended")
	CodePerfilNotFound     = ErrRegistry.Register("PERFIL_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Perfil not found")
	CodePerfilInUse        = ErrRegistry.Register("PERFIL_IN_USE", errx.TypeConflict, http.StatusConflict, "Perfil is assigned to users")
	CodeInvalidRequest     = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeWeakPassword       = ErrRegistry.Register("WEAK_PASSWORD", errx.TypeValidation, http.StatusBadRequest, "Password does not meet requirements")
	CodeNotAnalista        = ErrRegistry.Register("NOT_ANALISTA", errx.TypeBusiness, http.StatusBadRequest, "User perfil does not allow owning solicitudes")
)

// Helper functions
func ErrUserNotFound() *errx.Error {
	return ErrRegistry.New(CodeUserNotFound)
}

func ErrUserAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeUserAlreadyExists)
}

func ErrUserSuspended() *errx.Error {
	return ErrRegistry.New(CodeUserSuspended)
}

func ErrPerfilNotFound() *errx.Error {
	return ErrRegistry.New(CodePerfilNotFound)
}

func ErrPerfilInUse() *errx.Error {
	return ErrRegistry.New(CodePerfilInUse)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrWeakPassword() *errx.Error {
	return ErrRegistry.New(CodeWeakPassword)
}

func ErrNotAnalista() *errx.Error {
	return ErrRegistry.New(CodeNotAnalista)
}
