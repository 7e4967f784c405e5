package usecase

import (
	"context"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/domain/entity"
	"github.com/tu-usuario/automotora-front/internal/infrastructure/backend"
)

// MarcaUseCase CRUD de marcas (admin). Las mutaciones purgan el catálogo porque
// la marca viaja embebida en cada vehículo.
type MarcaUseCase struct {
	marcas   *backend.MarcasClient
	catalogo catalogoPurger
}

// NewMarcaUseCase construye el caso de uso.
func NewMarcaUseCase(marcas *backend.MarcasClient, catalogo catalogoPurger) *MarcaUseCase {
	return &MarcaUseCase{marcas: marcas, catalogo: catalogo}
}

// List lista todas las marcas.
func (uc *MarcaUseCase) List(ctx context.Context) ([]dto.ReferenciaResponse, error) {
	marcas, err := uc.marcas.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferenciaResponse, 0, len(marcas))
	for _, m := range marcas {
		items = append(items, dto.ReferenciaResponse{ID: m.ID, Nombre: m.Nombre})
	}
	return items, nil
}

// Create crea una marca.
func (uc *MarcaUseCase) Create(ctx context.Context, in dto.GuardarMarcaRequest) (*dto.ReferenciaResponse, error) {
	creada, err := uc.marcas.Create(ctx, &entity.Marca{Nombre: in.Nombre})
	if err != nil {
		return nil, err
	}
	uc.catalogo.Purge()
	return &dto.ReferenciaResponse{ID: creada.ID, Nombre: creada.Nombre}, nil
}

// Update renombra una marca.
func (uc *MarcaUseCase) Update(ctx context.Context, id int, in dto.GuardarMarcaRequest) (*dto.ReferenciaResponse, error) {
	actualizada, err := uc.marcas.Update(ctx, id, &entity.Marca{ID: id, Nombre: in.Nombre})
	if err != nil {
		return nil, err
	}
	uc.catalogo.Purge()
	return &dto.ReferenciaResponse{ID: actualizada.ID, Nombre: actualizada.Nombre}, nil
}

// Delete elimina una marca.
func (uc *MarcaUseCase) Delete(ctx context.Context, id int) error {
	if err := uc.marcas.Delete(ctx, id); err != nil {
		return err
	}
	uc.catalogo.Purge()
	return nil
}
