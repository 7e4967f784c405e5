package usecase

import (
	"context"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/domain/entity"
	"github.com/tu-usuario/automotora-front/internal/infrastructure/backend"
)

// catalogoPurger contrato mínimo para invalidar el caché del catálogo tras una
// mutación; lo implementa *CatalogoUseCase.
type catalogoPurger interface {
	Purge()
}

// VehiculoUseCase CRUD de vehículos para la sección de administración.
type VehiculoUseCase struct {
	vehiculos *backend.VehiculosClient
	catalogo  catalogoPurger
}

// NewVehiculoUseCase construye el caso de uso.
func NewVehiculoUseCase(vehiculos *backend.VehiculosClient, catalogo catalogoPurger) *VehiculoUseCase {
	return &VehiculoUseCase{vehiculos: vehiculos, catalogo: catalogo}
}

// List lista todos los vehículos para la tabla admin.
func (uc *VehiculoUseCase) List(ctx context.Context) ([]dto.VehiculoResponse, error) {
	vehiculos, err := uc.vehiculos.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehiculoResponse, 0, len(vehiculos))
	for i := range vehiculos {
		items = append(items, toVehiculoResponse(&vehiculos[i]))
	}
	return items, nil
}

// Create crea un vehículo y purga el caché del catálogo.
func (uc *VehiculoUseCase) Create(ctx context.Context, in dto.GuardarVehiculoRequest) (*dto.VehiculoResponse, error) {
	creado, err := uc.vehiculos.Create(ctx, vehiculoDesdeRequest(in))
	if err != nil {
		return nil, err
	}
	uc.catalogo.Purge()
	out := toVehiculoResponse(creado)
	return &out, nil
}

// Update reemplaza un vehículo y purga el caché del catálogo.
func (uc *VehiculoUseCase) Update(ctx context.Context, id int, in dto.GuardarVehiculoRequest) (*dto.VehiculoResponse, error) {
	actualizado, err := uc.vehiculos.Update(ctx, id, vehiculoDesdeRequest(in))
	if err != nil {
		return nil, err
	}
	uc.catalogo.Purge()
	out := toVehiculoResponse(actualizado)
	return &out, nil
}

// Delete elimina un vehículo y purga el caché del catálogo.
func (uc *VehiculoUseCase) Delete(ctx context.Context, id int) error {
	if err := uc.vehiculos.Delete(ctx, id); err != nil {
		return err
	}
	uc.catalogo.Purge()
	return nil
}

// vehiculoDesdeRequest arma la entidad con las relaciones por id, que es la
// forma que espera el backend en creación/edición.
func vehiculoDesdeRequest(in dto.GuardarVehiculoRequest) *entity.Vehiculo {
	v := &entity.Vehiculo{
		Modelo: in.Modelo,
		Anio:   in.Anio,
		Precio: in.Precio,
		Imagen: in.Imagen,
		Marca:  &entity.Marca{ID: in.MarcaID},
	}
	if in.TransmisionID > 0 {
		v.Transmision = &entity.Transmision{ID: in.TransmisionID}
	}
	if in.CombustibleID > 0 {
		v.Combustible = &entity.Combustible{ID: in.CombustibleID}
	}
	if in.ConcesionarioID > 0 {
		v.Concesionario = &entity.Concesionario{ID: in.ConcesionarioID}
	}
	return v
}
