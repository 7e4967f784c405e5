package backend

import (
	"context"
	"fmt"

	"github.com/tu-usuario/automotora-front/internal/domain/entity"
)

// VehiculosClient recurso /vehiculos del backend.
type VehiculosClient struct {
	c *Client
}

// NewVehiculosClient construye el cliente del recurso.
func NewVehiculosClient(c *Client) *VehiculosClient {
	return &VehiculosClient{c: c}
}

// List devuelve todos los vehículos del catálogo.
func (v *VehiculosClient) List(ctx context.Context) ([]entity.Vehiculo, error) {
	var out []entity.Vehiculo
	if err := v.c.doJSON(ctx, "GET", "/vehiculos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID devuelve un vehículo por id.
func (v *VehiculosClient) GetByID(ctx context.Context, id int) (*entity.Vehiculo, error) {
	var out entity.Vehiculo
	if err := v.c.doJSON(ctx, "GET", fmt.Sprintf("/vehiculos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea un vehículo y devuelve la versión persistida.
func (v *VehiculosClient) Create(ctx context.Context, in *entity.Vehiculo) (*entity.Vehiculo, error) {
	var out entity.Vehiculo
	if err := v.c.doJSON(ctx, "POST", "/vehiculos", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza un vehículo existente.
func (v *VehiculosClient) Update(ctx context.Context, id int, in *entity.Vehiculo) (*entity.Vehiculo, error) {
	var out entity.Vehiculo
	if err := v.c.doJSON(ctx, "PUT", fmt.Sprintf("/vehiculos/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un vehículo por id.
func (v *VehiculosClient) Delete(ctx context.Context, id int) error {
	return v.c.doJSON(ctx, "DELETE", fmt.Sprintf("/vehiculos/%d", id), nil, nil)
}
