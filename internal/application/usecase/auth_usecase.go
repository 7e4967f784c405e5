package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/auth"
	"github.com/tu-usuario/automotora-front/internal/domain"
	"github.com/tu-usuario/automotora-front/internal/domain/entity"
	"github.com/tu-usuario/automotora-front/internal/infrastructure/backend"
	"github.com/tu-usuario/automotora-front/internal/routes"
)

// AuthUseCase login, registro y cierre de sesión. El intercambio de credenciales
// vive en el backend; aquí solo se consume el principal resultante y se refleja
// en el contexto de sesión.
type AuthUseCase struct {
	usuarios *backend.UsuariosClient
	sesion   *auth.Context
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(usuarios *backend.UsuariosClient, sesion *auth.Context) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, sesion: sesion}
}

// Login intercambia credenciales por un principal y lo fija en la sesión.
// Una falla del intercambio NO toca el contexto: la sesión previa (si había)
// queda intacta y el error sube para mostrarse como mensaje.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarios.Login(ctx, backend.Credenciales{
		Correo:     in.Correo,
		Contrasena: in.Contrasena,
	})
	if err != nil {
		return nil, err
	}

	// Se guarda SOLO id, nombre y rol; la credencial jamás se retiene.
	principal := &entity.Principal{
		ID:     usuario.ID,
		Nombre: usuario.Nombre,
		Rol:    usuario.Rol,
	}
	if err := uc.sesion.Login(principal); err != nil {
		// La sesión quedó en memoria; solo falló la persistencia a disco.
		return nil, err
	}

	destino := routes.RutaHome
	if principal.EsElevado() {
		destino = "/admin/dashboard"
	}
	return &dto.LoginResponse{
		Usuario: toPrincipalResponse(principal),
		Destino: destino,
		Mensaje: dto.NuevoMensaje(fmt.Sprintf("¡Bienvenido %s!", principal.Nombre), dto.MensajeSuccess),
	}, nil
}

// Registro crea una cuenta nueva con rol cliente.
func (uc *AuthUseCase) Registro(ctx context.Context, in dto.RegistroRequest) (*dto.Mensaje, error) {
	_, err := uc.usuarios.Create(ctx, backend.NuevoUsuario{
		Nombre:     in.Nombre,
		Rut:        in.Rut,
		Correo:     in.Correo,
		Contrasena: in.Contrasena,
		Rol:        &entity.RolRef{ID: entity.RolCliente},
	})
	if err != nil {
		return nil, err
	}
	return dto.NuevoMensaje("Usuario creado exitosamente", dto.MensajeSuccess), nil
}

// Logout cierra la sesión actual; es seguro sin sesión activa.
func (uc *AuthUseCase) Logout() (*dto.Mensaje, error) {
	if err := uc.sesion.Logout(); err != nil {
		return nil, err
	}
	return dto.NuevoMensaje("Sesión cerrada", dto.MensajeSuccess), nil
}

// Perfil devuelve los datos de la pantalla "Mi Perfil".
func (uc *AuthUseCase) Perfil() (*dto.PerfilResponse, error) {
	principal := uc.sesion.Principal()
	if principal == nil {
		return nil, domain.ErrSinSesion
	}
	return &dto.PerfilResponse{Usuario: toPrincipalResponse(principal)}, nil
}
