package auth

import "github.com/vinculohr/vinculo/pkg/kernel"

// ============================================================================
// DOMAIN-SPECIFIC SCOPES - Plataforma de selección y contratación
// ============================================================================
//
// The definitions live in pkg/kernel so that both auth and user can share
// them without an import cycle; auth re-exports them under its original
// names.

const (
	// Solicitud scopes
	ScopeSolicitudesAll      = kernel.ScopeSolicitudesAll
	ScopeSolicitudesRead     = kernel.ScopeSolicitudesRead
	ScopeSolicitudesWrite    = kernel.ScopeSolicitudesWrite
	ScopeSolicitudesDelete   = kernel.ScopeSolicitudesDelete
	ScopeSolicitudesApprove  = kernel.ScopeSolicitudesApprove
	ScopeSolicitudesAssign   = kernel.ScopeSolicitudesAssign
	ScopeSolicitudesContract = kernel.ScopeSolicitudesContract
	ScopeSolicitudesExport   = kernel.ScopeSolicitudesExport

	// Candidato scopes
	ScopeCandidatosAll    = kernel.ScopeCandidatosAll
	ScopeCandidatosRead   = kernel.ScopeCandidatosRead
	ScopeCandidatosWrite  = kernel.ScopeCandidatosWrite
	ScopeCandidatosDelete = kernel.ScopeCandidatosDelete

	// Empresa scopes
	ScopeEmpresasAll    = kernel.ScopeEmpresasAll
	ScopeEmpresasRead   = kernel.ScopeEmpresasRead
	ScopeEmpresasWrite  = kernel.ScopeEmpresasWrite
	ScopeEmpresasDelete = kernel.ScopeEmpresasDelete

	// Catálogo scopes
	ScopeCatalogosRead  = kernel.ScopeCatalogosRead
	ScopeCatalogosWrite = kernel.ScopeCatalogosWrite

	// Prestador scopes
	ScopePrestadoresRead  = kernel.ScopePrestadoresRead
	ScopePrestadoresWrite = kernel.ScopePrestadoresWrite

	// Cita scopes
	ScopeCitasRead  = kernel.ScopeCitasRead
	ScopeCitasWrite = kernel.ScopeCitasWrite

	// Certificado scopes
	ScopeCertificadosRead  = kernel.ScopeCertificadosRead
	ScopeCertificadosWrite = kernel.ScopeCertificadosWrite

	// Usuario/perfil scopes
	ScopeUsuariosAll   = kernel.ScopeUsuariosAll
	ScopeUsuariosRead  = kernel.ScopeUsuariosRead
	ScopeUsuariosWrite = kernel.ScopeUsuariosWrite

	// Informe scopes
	ScopeInformesView = kernel.ScopeInformesView

	// Wildcard
	ScopeAll = kernel.ScopeAll
)

// DomainScopeGroups defines the scope bundles granted by the built-in
// perfiles.
var DomainScopeGroups = kernel.DomainScopeGroups

// DomainScopeDescriptions provides descriptions for domain scopes.
var DomainScopeDescriptions = kernel.DomainScopeDescriptions

// ScopeMatches reports whether a granted scope satisfies a required one,
// honoring the "*" and "<resource>:*" wildcards.
func ScopeMatches(granted, required string) bool {
	return kernel.ScopeMatches(granted, required)
}
