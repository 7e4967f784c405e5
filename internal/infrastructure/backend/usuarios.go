package backend

import (
	"context"
	"fmt"

	"github.com/tu-usuario/automotora-front/internal/domain/entity"
)

// Credenciales cuerpo del intercambio de autenticación. Solo viaja hacia el
// backend; nunca se persiste ni se loguea.
type Credenciales struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// NuevoUsuario cuerpo de registro de usuario (rol cliente por defecto).
type NuevoUsuario struct {
	Nombre     string         `json:"nombre"`
	Rut        string         `json:"rut"`
	Correo     string         `json:"correo"`
	Contrasena string         `json:"contrasena"`
	Rol        *entity.RolRef `json:"rol,omitempty"`
}

// UsuariosClient recurso /usuarios del backend, incluido el login.
type UsuariosClient struct {
	c *Client
}

// NewUsuariosClient construye el cliente del recurso.
func NewUsuariosClient(c *Client) *UsuariosClient {
	return &UsuariosClient{c: c}
}

// Login ejecuta el intercambio de credenciales. En éxito devuelve el usuario con
// su rol embebido; credenciales malas llegan como ErrCredencialesInvalidas.
func (u *UsuariosClient) Login(ctx context.Context, cred Credenciales) (*entity.Usuario, error) {
	var out entity.Usuario
	if err := u.c.doJSON(ctx, "POST", "/usuarios/login", cred, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID devuelve un usuario por id.
func (u *UsuariosClient) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	var out entity.Usuario
	if err := u.c.doJSON(ctx, "GET", fmt.Sprintf("/usuarios/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List devuelve todos los usuarios.
func (u *UsuariosClient) List(ctx context.Context) ([]entity.Usuario, error) {
	var out []entity.Usuario
	if err := u.c.doJSON(ctx, "GET", "/usuarios", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registra un usuario nuevo.
func (u *UsuariosClient) Create(ctx context.Context, in NuevoUsuario) (*entity.Usuario, error) {
	var out entity.Usuario
	if err := u.c.doJSON(ctx, "POST", "/usuarios", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza un usuario existente (usado para el cambio de rol).
func (u *UsuariosClient) Update(ctx context.Context, id int, in *entity.Usuario) (*entity.Usuario, error) {
	var out entity.Usuario
	if err := u.c.doJSON(ctx, "PUT", fmt.Sprintf("/usuarios/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un usuario por id.
func (u *UsuariosClient) Delete(ctx context.Context, id int) error {
	return u.c.doJSON(ctx, "DELETE", fmt.Sprintf("/usuarios/%d", id), nil, nil)
}
