package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for transport mapping and logging.
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeBusiness       Type = "BUSINESS"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeInternal       Type = "INTERNAL"
	TypeExternal       Type = "EXTERNAL"
)

// Code identifies a registered error definition.
type Code string

type definition struct {
	code       Code
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions of one domain module. Codes are
// prefixed with the registry namespace so they stay unique across modules.
type Registry struct {
	prefix      string
	definitions map[Code]definition
}

// NewRegistry creates a registry for the given namespace (e.g. "SOLICITUD").
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:      prefix,
		definitions: make(map[Code]definition),
	}
}

// Register adds an error definition and returns its code handle.
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "." + code)
	r.definitions[full] = definition{
		code:       full,
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New instantiates an error from a registered code. Unknown codes fall back
// to a generic internal error rather than panicking.
func (r *Registry) New(code Code) *Error {
	def, ok := r.definitions[code]
	if !ok {
		return &Error{
			Code:       Code(r.prefix + ".UNKNOWN"),
			Type:       TypeInternal,
			HTTPStatus: http.StatusInternalServerError,
			Message:    "Unknown error",
		}
	}
	return &Error{
		Code:       def.code,
		Type:       def.errType,
		HTTPStatus: def.httpStatus,
		Message:    def.message,
	}
}

// Error is a structured application error.
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair and returns the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause records the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse returns the JSON body served for this error.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap converts an arbitrary error into an *Error with the given message and
// type, preserving the original as cause.
func Wrap(err error, message string, errType Type) *Error {
	status := http.StatusInternalServerError
	if errType == TypeExternal {
		status = http.StatusBadGateway
	}
	return &Error{
		Code:       Code(string(errType) + ".WRAPPED"),
		Type:       errType,
		HTTPStatus: status,
		Message:    message,
		cause:      err,
	}
}

// IsType reports whether err is an *Error of the given type.
func IsType(err error, errType Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == errType
}

// HasCode reports whether err is an *Error carrying the given code.
func HasCode(err error, code Code) bool {
	e, ok := err.(*Error)
	return ok && e.Code == code
}
