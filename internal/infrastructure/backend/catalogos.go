package backend

import (
	"context"

	"github.com/tu-usuario/automotora-front/internal/domain/entity"
)

// CatalogosClient recursos de solo lectura /roles y /estados-reserva.
type CatalogosClient struct {
	c *Client
}

// NewCatalogosClient construye el cliente de catálogos.
func NewCatalogosClient(c *Client) *CatalogosClient {
	return &CatalogosClient{c: c}
}

// Roles devuelve el catálogo de roles.
func (k *CatalogosClient) Roles(ctx context.Context) ([]entity.Rol, error) {
	var out []entity.Rol
	if err := k.c.doJSON(ctx, "GET", "/roles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EstadosReserva devuelve el catálogo de estados de reserva.
func (k *CatalogosClient) EstadosReserva(ctx context.Context) ([]entity.EstadoReserva, error) {
	var out []entity.EstadoReserva
	if err := k.c.doJSON(ctx, "GET", "/estados-reserva", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
