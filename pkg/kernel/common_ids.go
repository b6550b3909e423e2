package kernel

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

type PerfilID string

func NewPerfilID(id string) PerfilID { return PerfilID(id) }
func (p PerfilID) String() string    { return string(p) }
func (p PerfilID) IsEmpty() bool     { return string(p) == "" }

type SessionID string

func NewSessionID(id string) SessionID { return SessionID(id) }
func (s SessionID) String() string     { return string(s) }
func (s SessionID) IsEmpty() bool      { return string(s) == "" }
