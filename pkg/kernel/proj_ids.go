package kernel

type SolicitudID string

func NewSolicitudID(id string) SolicitudID { return SolicitudID(id) }
func (s SolicitudID) String() string       { return string(s) }
func (s SolicitudID) IsEmpty() bool        { return string(s) == "" }

type CandidatoID string

func NewCandidatoID(id string) CandidatoID { return CandidatoID(id) }
func (c CandidatoID) String() string       { return string(c) }
func (c CandidatoID) IsEmpty() bool        { return string(c) == "" }

type EmpresaID string

func NewEmpresaID(id string) EmpresaID { return EmpresaID(id) }
func (e EmpresaID) String() string     { return string(e) }
func (e EmpresaID) IsEmpty() bool      { return string(e) == "" }

type PrestadorID string

func NewPrestadorID(id string) PrestadorID { return PrestadorID(id) }
func (p PrestadorID) String() string       { return string(p) }
func (p PrestadorID) IsEmpty() bool        { return string(p) == "" }

type CitaID string

func NewCitaID(id string) CitaID { return CitaID(id) }
func (c CitaID) String() string  { return string(c) }
func (c CitaID) IsEmpty() bool   { return string(c) == "" }

type CertificadoID string

func NewCertificadoID(id string) CertificadoID { return CertificadoID(id) }
func (c CertificadoID) String() string         { return string(c) }
func (c CertificadoID) IsEmpty() bool          { return string(c) == "" }

type CargoID string

func NewCargoID(id string) CargoID { return CargoID(id) }
func (c CargoID) String() string   { return string(c) }
func (c CargoID) IsEmpty() bool    { return string(c) == "" }

type CiudadID string

func NewCiudadID(id string) CiudadID { return CiudadID(id) }
func (c CiudadID) String() string    { return string(c) }
func (c CiudadID) IsEmpty() bool     { return string(c) == "" }

type SucursalID string

func NewSucursalID(id string) SucursalID { return SucursalID(id) }
func (s SucursalID) String() string      { return string(s) }
func (s SucursalID) IsEmpty() bool       { return string(s) == "" }

type CentroCostoID string

func NewCentroCostoID(id string) CentroCostoID { return CentroCostoID(id) }
func (c CentroCostoID) String() string         { return string(c) }
func (c CentroCostoID) IsEmpty() bool          { return string(c) == "" }
