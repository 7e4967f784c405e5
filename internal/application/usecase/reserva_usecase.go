package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/domain"
	"github.com/tu-usuario/automotora-front/internal/domain/entity"
	"github.com/tu-usuario/automotora-front/internal/infrastructure/backend"
)

// ComprobantePDFGenerator puerto para generar el comprobante de una reserva.
type ComprobantePDFGenerator interface {
	Generar(reserva *entity.Reserva) ([]byte, error)
}

// ReservaUseCase flujo de reservas: creación desde el detalle del vehículo,
// pantalla "Mis Reservas" con comprobante, y la administración completa.
type ReservaUseCase struct {
	reservas  *backend.ReservasClient
	vehiculos *backend.VehiculosClient
	catalogos *backend.CatalogosClient
	pdf       ComprobantePDFGenerator
}

// NewReservaUseCase construye el caso de uso.
func NewReservaUseCase(reservas *backend.ReservasClient, vehiculos *backend.VehiculosClient, catalogos *backend.CatalogosClient, pdf ComprobantePDFGenerator) *ReservaUseCase {
	return &ReservaUseCase{reservas: reservas, vehiculos: vehiculos, catalogos: catalogos, pdf: pdf}
}

// Crear reserva el vehículo indicado a nombre del principal. El precio queda
// congelado al valor vigente del vehículo y el estado parte en pendiente.
func (uc *ReservaUseCase) Crear(ctx context.Context, principal *entity.Principal, vehiculoID int, in dto.CrearReservaRequest) (*dto.ReservaResponse, error) {
	if principal == nil {
		return nil, domain.ErrSinSesion
	}

	vehiculo, err := uc.vehiculos.GetByID(ctx, vehiculoID)
	if err != nil {
		return nil, fmt.Errorf("obteniendo vehículo a reservar: %w", err)
	}

	reserva := &entity.Reserva{
		Usuario:      &entity.Usuario{ID: principal.ID},
		Vehiculo:     &entity.Vehiculo{ID: vehiculo.ID},
		FechaReserva: time.Now(),
		FechaEntrega: in.FechaEntrega,
		Precio:       vehiculo.Precio,
		Estado:       &entity.EstadoReserva{ID: uc.estadoPendienteID(ctx)},
	}

	creada, err := uc.reservas.Create(ctx, reserva)
	if err != nil {
		return nil, err
	}
	out := toReservaResponse(creada)
	return &out, nil
}

// MisReservas arma la pantalla "Mis Reservas" del principal.
func (uc *ReservaUseCase) MisReservas(ctx context.Context, principal *entity.Principal) (*dto.MisReservasResponse, error) {
	if principal == nil {
		return nil, domain.ErrSinSesion
	}
	reservas, err := uc.reservas.ListByUsuario(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReservaResponse, 0, len(reservas))
	for i := range reservas {
		items = append(items, toReservaResponse(&reservas[i]))
	}
	return &dto.MisReservasResponse{Reservas: items, Conteos: contarEstados(items)}, nil
}

// Comprobante genera el PDF de una reserva. Solo el dueño de la reserva o un
// rol elevado pueden descargarlo; cualquier otro caso es ErrForbidden.
func (uc *ReservaUseCase) Comprobante(ctx context.Context, principal *entity.Principal, reservaID int) ([]byte, error) {
	if principal == nil {
		return nil, domain.ErrSinSesion
	}
	reserva, err := uc.reservas.GetByID(ctx, reservaID)
	if err != nil {
		return nil, err
	}
	esDueno := reserva.Usuario != nil && reserva.Usuario.ID == principal.ID
	if !esDueno && !principal.EsElevado() {
		return nil, domain.ErrForbidden
	}
	return uc.pdf.Generar(reserva)
}

// ListAdmin arma la pantalla admin de reservas: todas las reservas, el catálogo
// de estados para el selector y los conteos.
func (uc *ReservaUseCase) ListAdmin(ctx context.Context) (*dto.ReservasAdminResponse, error) {
	reservas, err := uc.reservas.List(ctx)
	if err != nil {
		return nil, err
	}
	estados, err := uc.catalogos.EstadosReserva(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.ReservasAdminResponse{
		Reservas: make([]dto.ReservaResponse, 0, len(reservas)),
		Estados:  make([]dto.ReferenciaResponse, 0, len(estados)),
	}
	for i := range reservas {
		out.Reservas = append(out.Reservas, toReservaResponse(&reservas[i]))
	}
	for _, e := range estados {
		out.Estados = append(out.Estados, dto.ReferenciaResponse{ID: e.ID, Nombre: e.Estado})
	}
	out.Conteos = contarEstados(out.Reservas)
	return out, nil
}

// CambiarEstado cambia el estado de una reserva (admin). Lee la reserva primero
// porque el backend espera el recurso completo en el PUT.
func (uc *ReservaUseCase) CambiarEstado(ctx context.Context, id int, in dto.CambiarEstadoReservaRequest) (*dto.ReservaResponse, error) {
	reserva, err := uc.reservas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reserva.Estado = &entity.EstadoReserva{ID: in.EstadoID}

	actualizada, err := uc.reservas.Update(ctx, id, reserva)
	if err != nil {
		return nil, err
	}
	out := toReservaResponse(actualizada)
	return &out, nil
}

// Eliminar elimina una reserva (admin).
func (uc *ReservaUseCase) Eliminar(ctx context.Context, id int) error {
	return uc.reservas.Delete(ctx, id)
}

// estadoPendienteID busca el id del estado pendiente en el catálogo; si el
// catálogo no responde se usa 1, que es el valor sembrado en el backend.
func (uc *ReservaUseCase) estadoPendienteID(ctx context.Context) int {
	estados, err := uc.catalogos.EstadosReserva(ctx)
	if err != nil {
		return 1
	}
	for _, e := range estados {
		if e.Estado == entity.EstadoPendiente {
			return e.ID
		}
	}
	return 1
}
