package backend

import (
	"context"
	"fmt"

	"github.com/tu-usuario/automotora-front/internal/domain/entity"
)

// MarcasClient recurso /marcas del backend.
type MarcasClient struct {
	c *Client
}

// NewMarcasClient construye el cliente del recurso.
func NewMarcasClient(c *Client) *MarcasClient {
	return &MarcasClient{c: c}
}

// List devuelve todas las marcas.
func (m *MarcasClient) List(ctx context.Context) ([]entity.Marca, error) {
	var out []entity.Marca
	if err := m.c.doJSON(ctx, "GET", "/marcas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID devuelve una marca por id.
func (m *MarcasClient) GetByID(ctx context.Context, id int) (*entity.Marca, error) {
	var out entity.Marca
	if err := m.c.doJSON(ctx, "GET", fmt.Sprintf("/marcas/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea una marca.
func (m *MarcasClient) Create(ctx context.Context, in *entity.Marca) (*entity.Marca, error) {
	var out entity.Marca
	if err := m.c.doJSON(ctx, "POST", "/marcas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza una marca existente.
func (m *MarcasClient) Update(ctx context.Context, id int, in *entity.Marca) (*entity.Marca, error) {
	var out entity.Marca
	if err := m.c.doJSON(ctx, "PUT", fmt.Sprintf("/marcas/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina una marca por id.
func (m *MarcasClient) Delete(ctx context.Context, id int) error {
	return m.c.doJSON(ctx, "DELETE", fmt.Sprintf("/marcas/%d", id), nil, nil)
}
