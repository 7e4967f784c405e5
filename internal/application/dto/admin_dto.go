package dto

// GuardarMarcaRequest entrada de creación/edición de marca.
type GuardarMarcaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
}

// GuardarConcesionarioRequest entrada de creación/edición de concesionario.
type GuardarConcesionarioRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=150"`
	Direccion string `json:"direccion" validate:"required,min=1,max=250"`
	Telefono  string `json:"telefono" validate:"omitempty,max=30"`
	ComunaID  int    `json:"comunaId" validate:"required,gt=0"`
}

// ConcesionarioResponse concesionario para vista.
type ConcesionarioResponse struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono,omitempty"`
	Comuna    string `json:"comuna,omitempty"`
}

// UsuarioResponse usuario para la tabla de administración (sin credenciales).
type UsuarioResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
	RolID  int    `json:"rolId"`
	Rol    string `json:"rol,omitempty"`
}

// UsuariosAdminResponse pantalla admin de usuarios: lista más el catálogo de
// roles para el selector de cambio de rol.
type UsuariosAdminResponse struct {
	Usuarios []UsuarioResponse    `json:"usuarios"`
	Roles    []ReferenciaResponse `json:"roles"`
}

// CambiarRolRequest entrada del selector de rol (admin).
type CambiarRolRequest struct {
	RolID int `json:"rolId" validate:"required,gt=0"`
}

// DashboardResponse resumen de la pantalla de inicio admin.
type DashboardResponse struct {
	TotalVehiculos int           `json:"totalVehiculos"`
	TotalMarcas    int           `json:"totalMarcas"`
	TotalUsuarios  int           `json:"totalUsuarios"`
	Reservas       ConteoEstados `json:"reservas"`
}
