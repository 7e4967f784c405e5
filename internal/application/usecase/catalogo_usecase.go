package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/infrastructure/backend"
)

const claveCatalogo = "catalogo"

// CatalogoUseCase pantallas públicas del catálogo (home y detalle de vehículo).
// Las lecturas van con caché LRU con vigencia: el catálogo cambia poco y es la
// pantalla más golpeada; las mutaciones de admin lo purgan vía Purge.
type CatalogoUseCase struct {
	vehiculos *backend.VehiculosClient
	lista     *expirable.LRU[string, []dto.VehiculoResponse]
	detalle   *expirable.LRU[int, dto.VehiculoResponse]
}

// NewCatalogoUseCase construye el caso de uso con caché de tamaño size y vigencia ttl.
func NewCatalogoUseCase(vehiculos *backend.VehiculosClient, size int, ttl time.Duration) *CatalogoUseCase {
	return &CatalogoUseCase{
		vehiculos: vehiculos,
		lista:     expirable.NewLRU[string, []dto.VehiculoResponse](1, nil, ttl),
		detalle:   expirable.NewLRU[int, dto.VehiculoResponse](size, nil, ttl),
	}
}

// Catalogo devuelve todos los vehículos, ordenados por id descendente
// (los recién cargados primero, como en la pantalla original).
func (uc *CatalogoUseCase) Catalogo(ctx context.Context) (*dto.CatalogoResponse, error) {
	if items, ok := uc.lista.Get(claveCatalogo); ok {
		return &dto.CatalogoResponse{Vehiculos: items, Total: len(items)}, nil
	}

	vehiculos, err := uc.vehiculos.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehiculoResponse, 0, len(vehiculos))
	for i := range vehiculos {
		items = append(items, toVehiculoResponse(&vehiculos[i]))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })

	uc.lista.Add(claveCatalogo, items)
	return &dto.CatalogoResponse{Vehiculos: items, Total: len(items)}, nil
}

// Detalle devuelve un vehículo por id.
func (uc *CatalogoUseCase) Detalle(ctx context.Context, id int) (*dto.VehiculoResponse, error) {
	if v, ok := uc.detalle.Get(id); ok {
		return &v, nil
	}

	vehiculo, err := uc.vehiculos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := toVehiculoResponse(vehiculo)
	uc.detalle.Add(id, v)
	return &v, nil
}

// Purge invalida el caché completo; lo llaman las mutaciones de admin.
func (uc *CatalogoUseCase) Purge() {
	uc.lista.Purge()
	uc.detalle.Purge()
}
