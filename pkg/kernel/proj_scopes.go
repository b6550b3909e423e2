package kernel

// ============================================================================
// DOMAIN-SPECIFIC SCOPES - Plataforma de selección y contratación
// ============================================================================

const (
	// Solicitud scopes
	ScopeSolicitudesAll      = "solicitudes:*"
	ScopeSolicitudesRead     = "solicitudes:read"
	ScopeSolicitudesWrite    = "solicitudes:write"
	ScopeSolicitudesDelete   = "solicitudes:delete"
	ScopeSolicitudesApprove  = "solicitudes:approve" // Aprobar/rechazar/descartar
	ScopeSolicitudesAssign   = "solicitudes:assign"  // Asignar analista
	ScopeSolicitudesContract = "solicitudes:contract"
	ScopeSolicitudesExport   = "solicitudes:export"

	// Candidato scopes
	ScopeCandidatosAll    = "candidatos:*"
	ScopeCandidatosRead   = "candidatos:read"
	ScopeCandidatosWrite  = "candidatos:write"
	ScopeCandidatosDelete = "candidatos:delete"

	// Empresa scopes
	ScopeEmpresasAll    = "empresas:*"
	ScopeEmpresasRead   = "empresas:read"
	ScopeEmpresasWrite  = "empresas:write"
	ScopeEmpresasDelete = "empresas:delete"

	// Catálogo scopes
	ScopeCatalogosRead  = "catalogos:read"
	ScopeCatalogosWrite = "catalogos:write"

	// Prestador scopes
	ScopePrestadoresRead  = "prestadores:read"
	ScopePrestadoresWrite = "prestadores:write"

	// Cita scopes
	ScopeCitasRead  = "citas:read"
	ScopeCitasWrite = "citas:write"

	// Certificado scopes
	ScopeCertificadosRead  = "certificados:read"
	ScopeCertificadosWrite = "certificados:write"

	// Usuario/perfil scopes
	ScopeUsuariosAll   = "usuarios:*"
	ScopeUsuariosRead  = "usuarios:read"
	ScopeUsuariosWrite = "usuarios:write"

	// Informe scopes
	ScopeInformesView = "informes:view"

	// Wildcard
	ScopeAll = "*"
)

// DomainScopeGroups defines the scope bundles granted by the built-in
// perfiles.
var DomainScopeGroups = map[string][]string{
	"analista": {
		ScopeSolicitudesRead,
		ScopeSolicitudesWrite,
		ScopeCandidatosRead,
		ScopeCandidatosWrite,
		ScopeCitasRead,
		ScopeCitasWrite,
		ScopeCatalogosRead,
		ScopePrestadoresRead,
		ScopeInformesView,
	},
	"coordinador": {
		ScopeSolicitudesAll,
		ScopeCandidatosAll,
		ScopeCitasRead,
		ScopeCitasWrite,
		ScopeCatalogosRead,
		ScopePrestadoresRead,
		ScopeCertificadosRead,
		ScopeCertificadosWrite,
		ScopeInformesView,
	},
	"administrador": {
		ScopeAll,
	},
}

// DomainScopeDescriptions provides descriptions for domain scopes.
var DomainScopeDescriptions = map[string]string{
	ScopeSolicitudesAll:      "Acceso total a solicitudes",
	ScopeSolicitudesRead:     "Consultar solicitudes",
	ScopeSolicitudesWrite:    "Crear y gestionar solicitudes",
	ScopeSolicitudesDelete:   "Eliminar solicitudes",
	ScopeSolicitudesApprove:  "Aprobar, rechazar o descartar solicitudes",
	ScopeSolicitudesAssign:   "Asignar analistas a solicitudes",
	ScopeSolicitudesContract: "Gestionar contratación de solicitudes",
	ScopeSolicitudesExport:   "Exportar solicitudes a hoja de cálculo",
	ScopeCandidatosAll:       "Acceso total a candidatos",
	ScopeCandidatosRead:      "Consultar candidatos",
	ScopeCandidatosWrite:     "Crear y editar candidatos",
	ScopeCandidatosDelete:    "Eliminar candidatos",
	ScopeEmpresasAll:         "Acceso total a empresas",
	ScopeEmpresasRead:        "Consultar empresas",
	ScopeEmpresasWrite:       "Crear y editar empresas",
	ScopeEmpresasDelete:      "Eliminar empresas",
	ScopeCatalogosRead:       "Consultar catálogos",
	ScopeCatalogosWrite:      "Administrar catálogos",
	ScopePrestadoresRead:     "Consultar prestadores",
	ScopePrestadoresWrite:    "Administrar prestadores",
	ScopeCitasRead:           "Consultar citas",
	ScopeCitasWrite:          "Programar y gestionar citas",
	ScopeCertificadosRead:    "Consultar certificados",
	ScopeCertificadosWrite:   "Emitir y distribuir certificados",
	ScopeUsuariosAll:         "Acceso total a usuarios y perfiles",
	ScopeUsuariosRead:        "Consultar usuarios",
	ScopeUsuariosWrite:       "Crear y editar usuarios",
	ScopeInformesView:        "Ver tableros e informes",
}

// ScopeMatches reports whether a granted scope satisfies a required one,
// honoring the "*" and "<resource>:*" wildcards.
func ScopeMatches(granted, required string) bool {
	if granted == ScopeAll || granted == required {
		return true
	}
	if n := len(granted); n > 2 && granted[n-2:] == ":*" {
		prefix := granted[:n-1] // keep trailing ':'
		return len(required) >= len(prefix) && required[:len(prefix)] == prefix
	}
	return false
}
