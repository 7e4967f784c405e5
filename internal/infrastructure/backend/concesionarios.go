package backend

import (
	"context"
	"fmt"

	"github.com/tu-usuario/automotora-front/internal/domain/entity"
)

// ConcesionariosClient recurso /concesionarios del backend.
type ConcesionariosClient struct {
	c *Client
}

// NewConcesionariosClient construye el cliente del recurso.
func NewConcesionariosClient(c *Client) *ConcesionariosClient {
	return &ConcesionariosClient{c: c}
}

// List devuelve todos los concesionarios.
func (k *ConcesionariosClient) List(ctx context.Context) ([]entity.Concesionario, error) {
	var out []entity.Concesionario
	if err := k.c.doJSON(ctx, "GET", "/concesionarios", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea un concesionario.
func (k *ConcesionariosClient) Create(ctx context.Context, in *entity.Concesionario) (*entity.Concesionario, error) {
	var out entity.Concesionario
	if err := k.c.doJSON(ctx, "POST", "/concesionarios", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza un concesionario existente.
func (k *ConcesionariosClient) Update(ctx context.Context, id int, in *entity.Concesionario) (*entity.Concesionario, error) {
	var out entity.Concesionario
	if err := k.c.doJSON(ctx, "PUT", fmt.Sprintf("/concesionarios/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un concesionario por id.
func (k *ConcesionariosClient) Delete(ctx context.Context, id int) error {
	return k.c.doJSON(ctx, "DELETE", fmt.Sprintf("/concesionarios/%d", id), nil, nil)
}
