package usecase

import (
	"context"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/domain/entity"
	"github.com/tu-usuario/automotora-front/internal/infrastructure/backend"
)

// ConcesionarioUseCase CRUD de concesionarios (admin).
type ConcesionarioUseCase struct {
	concesionarios *backend.ConcesionariosClient
	catalogo       catalogoPurger
}

// NewConcesionarioUseCase construye el caso de uso.
func NewConcesionarioUseCase(concesionarios *backend.ConcesionariosClient, catalogo catalogoPurger) *ConcesionarioUseCase {
	return &ConcesionarioUseCase{concesionarios: concesionarios, catalogo: catalogo}
}

// List lista todos los concesionarios.
func (uc *ConcesionarioUseCase) List(ctx context.Context) ([]dto.ConcesionarioResponse, error) {
	concesionarios, err := uc.concesionarios.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConcesionarioResponse, 0, len(concesionarios))
	for i := range concesionarios {
		items = append(items, toConcesionarioResponse(&concesionarios[i]))
	}
	return items, nil
}

// Create crea un concesionario.
func (uc *ConcesionarioUseCase) Create(ctx context.Context, in dto.GuardarConcesionarioRequest) (*dto.ConcesionarioResponse, error) {
	creado, err := uc.concesionarios.Create(ctx, concesionarioDesdeRequest(0, in))
	if err != nil {
		return nil, err
	}
	uc.catalogo.Purge()
	out := toConcesionarioResponse(creado)
	return &out, nil
}

// Update reemplaza un concesionario.
func (uc *ConcesionarioUseCase) Update(ctx context.Context, id int, in dto.GuardarConcesionarioRequest) (*dto.ConcesionarioResponse, error) {
	actualizado, err := uc.concesionarios.Update(ctx, id, concesionarioDesdeRequest(id, in))
	if err != nil {
		return nil, err
	}
	uc.catalogo.Purge()
	out := toConcesionarioResponse(actualizado)
	return &out, nil
}

// Delete elimina un concesionario.
func (uc *ConcesionarioUseCase) Delete(ctx context.Context, id int) error {
	if err := uc.concesionarios.Delete(ctx, id); err != nil {
		return err
	}
	uc.catalogo.Purge()
	return nil
}

func concesionarioDesdeRequest(id int, in dto.GuardarConcesionarioRequest) *entity.Concesionario {
	return &entity.Concesionario{
		ID:        id,
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Comuna:    &entity.Comuna{ID: in.ComunaID},
	}
}

func toConcesionarioResponse(k *entity.Concesionario) dto.ConcesionarioResponse {
	out := dto.ConcesionarioResponse{
		ID:        k.ID,
		Nombre:    k.Nombre,
		Direccion: k.Direccion,
		Telefono:  k.Telefono,
	}
	if k.Comuna != nil {
		out.Comuna = k.Comuna.Nombre
	}
	return out
}
