package dto

// LoginRequest entrada del formulario de login.
type LoginRequest struct {
	Correo     string `json:"correo" validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required"`
}

// PrincipalResponse identidad visible del usuario autenticado.
type PrincipalResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	RolID  int    `json:"rolId"`
	Rol    string `json:"rol,omitempty"`
}

// LoginResponse salida del login: principal más la ruta de destino
// (roles elevados entran directo al dashboard de administración).
type LoginResponse struct {
	Usuario PrincipalResponse `json:"usuario"`
	Destino string            `json:"destino"`
	Mensaje *Mensaje          `json:"mensaje,omitempty"`
}

// RegistroRequest entrada del formulario de creación de cuenta.
// La contraseña viaja al backend tal cual; este front no la procesa ni guarda.
type RegistroRequest struct {
	Nombre     string `json:"nombre" validate:"required,min=1,max=200"`
	Rut        string `json:"rut" validate:"required"`
	Correo     string `json:"correo" validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required,min=6"`
}

// PerfilResponse datos de la pantalla "Mi Perfil".
type PerfilResponse struct {
	Usuario PrincipalResponse `json:"usuario"`
}
