package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// IDs de rol conocidos del backend.
const (
	RolAdmin    = 1
	RolVendedor = 2
	RolCliente  = 3
)

// Rol catálogo de roles del backend (/roles).
type Rol struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// RolRef referencia al rol de un usuario. El backend histórico devolvía a veces el
// objeto completo {"id":2,"nombre":"vendedor"} y a veces solo el id numérico (2);
// RolRef acepta ambas formas y normaliza la lectura vía RolID.
type RolRef struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre,omitempty"`
}

// RolID devuelve el id normalizado del rol. Cero significa "sin rol".
func (r *RolRef) RolID() int {
	if r == nil {
		return 0
	}
	return r.ID
}

// EsElevado indica si el rol pertenece al conjunto elevado {admin, vendedor}.
func (r *RolRef) EsElevado() bool {
	id := r.RolID()
	return id == RolAdmin || id == RolVendedor
}

// UnmarshalJSON acepta tanto el objeto embebido como el id desnudo.
func (r *RolRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*r = RolRef{}
		return nil
	}
	if data[0] == '{' {
		type alias RolRef // evita recursión del codec
		var a alias
		if err := json.Unmarshal(data, &a); err != nil {
			return err
		}
		*r = RolRef(a)
		return nil
	}
	id, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*r = RolRef{ID: id}
	return nil
}

// MarshalJSON siempre emite la forma embebida, que es la que espera el backend actual.
func (r RolRef) MarshalJSON() ([]byte, error) {
	type alias RolRef
	return json.Marshal(alias(r))
}
