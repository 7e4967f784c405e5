package usecase

import (
	"context"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/domain/entity"
	"github.com/tu-usuario/automotora-front/internal/infrastructure/backend"
)

// UsuarioUseCase administración de usuarios: listado con catálogo de roles,
// cambio de rol y eliminación.
type UsuarioUseCase struct {
	usuarios  *backend.UsuariosClient
	catalogos *backend.CatalogosClient
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(usuarios *backend.UsuariosClient, catalogos *backend.CatalogosClient) *UsuarioUseCase {
	return &UsuarioUseCase{usuarios: usuarios, catalogos: catalogos}
}

// ListAdmin arma la pantalla admin de usuarios: la lista completa más el
// catálogo de roles para el selector.
func (uc *UsuarioUseCase) ListAdmin(ctx context.Context) (*dto.UsuariosAdminResponse, error) {
	usuarios, err := uc.usuarios.List(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := uc.catalogos.Roles(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.UsuariosAdminResponse{
		Usuarios: make([]dto.UsuarioResponse, 0, len(usuarios)),
		Roles:    make([]dto.ReferenciaResponse, 0, len(roles)),
	}
	for i := range usuarios {
		out.Usuarios = append(out.Usuarios, toUsuarioResponse(&usuarios[i]))
	}
	for _, r := range roles {
		out.Roles = append(out.Roles, dto.ReferenciaResponse{ID: r.ID, Nombre: r.Nombre})
	}
	return out, nil
}

// CambiarRol cambia el rol de un usuario. Se lee el usuario primero porque el
// backend espera el recurso completo en el PUT, no un parche.
func (uc *UsuarioUseCase) CambiarRol(ctx context.Context, id int, in dto.CambiarRolRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	usuario.Rol = &entity.RolRef{ID: in.RolID}

	actualizado, err := uc.usuarios.Update(ctx, id, usuario)
	if err != nil {
		return nil, err
	}
	out := toUsuarioResponse(actualizado)
	return &out, nil
}

// Delete elimina un usuario por id.
func (uc *UsuarioUseCase) Delete(ctx context.Context, id int) error {
	return uc.usuarios.Delete(ctx, id)
}
