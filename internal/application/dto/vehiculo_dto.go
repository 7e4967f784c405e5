package dto

import "github.com/shopspring/decimal"

// ReferenciaResponse par id/nombre de una relación embebida (marca, concesionario...).
type ReferenciaResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// VehiculoResponse vehículo del catálogo listo para vista: precio ya formateado
// e imagen con respaldo por defecto cuando el backend no trae una.
type VehiculoResponse struct {
	ID            int                 `json:"id"`
	Modelo        string              `json:"modelo"`
	Anio          int                 `json:"anio"`
	Precio        decimal.Decimal     `json:"precio"`
	PrecioFmt     string              `json:"precioFmt"`
	ImagenURL     string              `json:"imagenUrl"`
	Marca         *ReferenciaResponse `json:"marca,omitempty"`
	Transmision   string              `json:"transmision,omitempty"`
	Combustible   string              `json:"combustible,omitempty"`
	Concesionario *ReferenciaResponse `json:"concesionario,omitempty"`
}

// CatalogoResponse pantalla de inicio: el catálogo completo.
type CatalogoResponse struct {
	Vehiculos []VehiculoResponse `json:"vehiculos"`
	Total     int                `json:"total"`
}

// GuardarVehiculoRequest entrada de creación/edición de vehículo (admin).
// Las relaciones van por id, como las envía el formulario de la pantalla.
type GuardarVehiculoRequest struct {
	Modelo          string          `json:"modelo" validate:"required,min=1,max=120"`
	Anio            int             `json:"anio" validate:"required,gte=1950,lte=2100"`
	Precio          decimal.Decimal `json:"precio" validate:"required"`
	Imagen          string          `json:"imagen" validate:"omitempty,url"`
	MarcaID         int             `json:"marcaId" validate:"required,gt=0"`
	TransmisionID   int             `json:"transmisionId" validate:"omitempty,gt=0"`
	CombustibleID   int             `json:"combustibleId" validate:"omitempty,gt=0"`
	ConcesionarioID int             `json:"concesionarioId" validate:"omitempty,gt=0"`
}
