package kernel

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

type Phone string

func (p Phone) String() string { return string(p) }

type FirstName string

type LastName string

type RazonSocial string

type BucketURL string

// DocumentoType tipos de documentos de identidad en Colombia
type DocumentoType string

const (
	// DocumentoTypeCC - Cédula de Ciudadanía (colombianos)
	DocumentoTypeCC DocumentoType = "CC"

	// DocumentoTypeCE - Cédula de Extranjería (residentes extranjeros)
	DocumentoTypeCE DocumentoType = "CE"

	// DocumentoTypeTI - Tarjeta de Identidad (menores de edad)
	DocumentoTypeTI DocumentoType = "TI"

	// DocumentoTypePasaporte - Pasaporte (extranjeros sin cédula)
	DocumentoTypePasaporte DocumentoType = "PASAPORTE"

	// DocumentoTypePEP - Permiso Especial de Permanencia (principalmente venezolanos)
	DocumentoTypePEP DocumentoType = "PEP"

	// DocumentoTypeNIT - NIT (empresas)
	DocumentoTypeNIT DocumentoType = "NIT"
)

// Documento representa un documento de identidad
type Documento struct {
	Type   DocumentoType `json:"type"`
	Number string        `json:"number"`
}

// IsValid valida el formato del documento según su tipo
func (d Documento) IsValid() bool {
	switch d.Type {
	case DocumentoTypeCC:
		// Cédula: 6-10 dígitos
		return len(d.Number) >= 6 && len(d.Number) <= 10 && isNumeric(d.Number)

	case DocumentoTypeCE:
		// Cédula de Extranjería: 6-7 dígitos
		return len(d.Number) >= 6 && len(d.Number) <= 7 && isNumeric(d.Number)

	case DocumentoTypeTI:
		// Tarjeta de Identidad: 10-11 dígitos
		return len(d.Number) >= 10 && len(d.Number) <= 11 && isNumeric(d.Number)

	case DocumentoTypePasaporte:
		// Pasaporte: formato variable según país, 6-12 caracteres alfanuméricos
		return len(d.Number) >= 6 && len(d.Number) <= 12

	case DocumentoTypePEP:
		// PEP: 15 dígitos
		return len(d.Number) == 15 && isNumeric(d.Number)

	case DocumentoTypeNIT:
		// NIT: 9-10 dígitos incluyendo dígito de verificación
		return len(d.Number) >= 9 && len(d.Number) <= 10 && isNumeric(d.Number)

	default:
		return false
	}
}

// GetDisplayName retorna el nombre legible del tipo de documento
func (t DocumentoType) GetDisplayName() string {
	switch t {
	case DocumentoTypeCC:
		return "Cédula de Ciudadanía"
	case DocumentoTypeCE:
		return "Cédula de Extranjería"
	case DocumentoTypeTI:
		return "Tarjeta de Identidad"
	case DocumentoTypePasaporte:
		return "Pasaporte"
	case DocumentoTypePEP:
		return "Permiso Especial de Permanencia"
	case DocumentoTypeNIT:
		return "NIT"
	default:
		return "Desconocido"
	}
}

// IsColombianDocument verifica si es un documento colombiano
func (t DocumentoType) IsColombianDocument() bool {
	return t == DocumentoTypeCC || t == DocumentoTypeTI || t == DocumentoTypeNIT
}

// RequiresWorkPermit verifica si el documento requiere permiso de trabajo
func (t DocumentoType) RequiresWorkPermit() bool {
	return t == DocumentoTypePasaporte || t == DocumentoTypePEP
}

// Helper function
func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
