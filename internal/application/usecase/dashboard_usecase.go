package usecase

import (
	"context"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/infrastructure/backend"
)

// DashboardUseCase resumen de la pantalla de inicio admin.
type DashboardUseCase struct {
	vehiculos *backend.VehiculosClient
	marcas    *backend.MarcasClient
	usuarios  *backend.UsuariosClient
	reservas  *backend.ReservasClient
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(vehiculos *backend.VehiculosClient, marcas *backend.MarcasClient, usuarios *backend.UsuariosClient, reservas *backend.ReservasClient) *DashboardUseCase {
	return &DashboardUseCase{vehiculos: vehiculos, marcas: marcas, usuarios: usuarios, reservas: reservas}
}

// Resumen cuenta vehículos, marcas y usuarios, y desglosa las reservas por
// estado. Las llamadas van en serie: el dashboard no es ruta caliente y así el
// primer error corta de inmediato.
func (uc *DashboardUseCase) Resumen(ctx context.Context) (*dto.DashboardResponse, error) {
	vehiculos, err := uc.vehiculos.List(ctx)
	if err != nil {
		return nil, err
	}
	marcas, err := uc.marcas.List(ctx)
	if err != nil {
		return nil, err
	}
	usuarios, err := uc.usuarios.List(ctx)
	if err != nil {
		return nil, err
	}
	reservas, err := uc.reservas.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ReservaResponse, 0, len(reservas))
	for i := range reservas {
		items = append(items, toReservaResponse(&reservas[i]))
	}
	return &dto.DashboardResponse{
		TotalVehiculos: len(vehiculos),
		TotalMarcas:    len(marcas),
		TotalUsuarios:  len(usuarios),
		Reservas:       contarEstados(items),
	}, nil
}
