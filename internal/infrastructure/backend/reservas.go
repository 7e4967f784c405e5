package backend

import (
	"context"
	"fmt"

	"github.com/tu-usuario/automotora-front/internal/domain/entity"
)

// ReservasClient recurso /reservas del backend.
type ReservasClient struct {
	c *Client
}

// NewReservasClient construye el cliente del recurso.
func NewReservasClient(c *Client) *ReservasClient {
	return &ReservasClient{c: c}
}

// List devuelve todas las reservas (vista admin).
func (r *ReservasClient) List(ctx context.Context) ([]entity.Reserva, error) {
	var out []entity.Reserva
	if err := r.c.doJSON(ctx, "GET", "/reservas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByUsuario devuelve las reservas de un usuario.
func (r *ReservasClient) ListByUsuario(ctx context.Context, usuarioID int) ([]entity.Reserva, error) {
	var out []entity.Reserva
	if err := r.c.doJSON(ctx, "GET", fmt.Sprintf("/reservas/usuario/%d", usuarioID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID devuelve una reserva por id.
func (r *ReservasClient) GetByID(ctx context.Context, id int) (*entity.Reserva, error) {
	var out entity.Reserva
	if err := r.c.doJSON(ctx, "GET", fmt.Sprintf("/reservas/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea una reserva.
func (r *ReservasClient) Create(ctx context.Context, in *entity.Reserva) (*entity.Reserva, error) {
	var out entity.Reserva
	if err := r.c.doJSON(ctx, "POST", "/reservas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza una reserva (usado para el cambio de estado).
func (r *ReservasClient) Update(ctx context.Context, id int, in *entity.Reserva) (*entity.Reserva, error) {
	var out entity.Reserva
	if err := r.c.doJSON(ctx, "PUT", fmt.Sprintf("/reservas/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina una reserva por id.
func (r *ReservasClient) Delete(ctx context.Context, id int) error {
	return r.c.doJSON(ctx, "DELETE", fmt.Sprintf("/reservas/%d", id), nil, nil)
}
