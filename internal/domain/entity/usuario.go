package entity

// Usuario representa un usuario del sistema tal como lo entrega el backend.
type Usuario struct {
	ID     int     `json:"id"`
	Nombre string  `json:"nombre"`
	Rut    string  `json:"rut,omitempty"`
	Correo string  `json:"correo"`
	Rol    *RolRef `json:"rol,omitempty"`
}

// Principal identidad visible en el cliente del usuario autenticado.
// Invariante: nunca viaja con una credencial; solo id, nombre y rol se
// mantienen en memoria y en el registro de sesión persistido.
type Principal struct {
	ID     int     `json:"id"`
	Nombre string  `json:"nombre"`
	Rol    *RolRef `json:"rol,omitempty"`
}

// RolID devuelve el id de rol normalizado del principal (0 = sin rol).
func (p *Principal) RolID() int {
	if p == nil {
		return 0
	}
	return p.Rol.RolID()
}

// EsElevado indica si el principal puede entrar a la sección de administración.
func (p *Principal) EsElevado() bool {
	return p != nil && p.Rol.EsElevado()
}
