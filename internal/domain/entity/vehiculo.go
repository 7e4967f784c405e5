package entity

import "github.com/shopspring/decimal"

// Marca marca de vehículo (ej. Toyota).
type Marca struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Transmision tipo de transmisión del vehículo.
type Transmision struct {
	ID   int    `json:"id"`
	Tipo string `json:"tipo"`
}

// Combustible tipo de combustible del vehículo.
type Combustible struct {
	ID   int    `json:"id"`
	Tipo string `json:"tipo"`
}

// Comuna ubicación administrativa de un concesionario.
type Comuna struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Concesionario sucursal física donde se exhiben y entregan vehículos.
type Concesionario struct {
	ID        int     `json:"id"`
	Nombre    string  `json:"nombre"`
	Direccion string  `json:"direccion"`
	Telefono  string  `json:"telefono,omitempty"`
	Comuna    *Comuna `json:"comuna,omitempty"`
}

// Vehiculo unidad del catálogo. Las relaciones vienen embebidas desde el backend
// y pueden faltar (vehículos cargados a mano); los lectores deben tolerar nil.
type Vehiculo struct {
	ID            int             `json:"id"`
	Modelo        string          `json:"modelo"`
	Anio          int             `json:"anio"`
	Precio        decimal.Decimal `json:"precio"`
	Imagen        string          `json:"imagen,omitempty"`
	Marca         *Marca          `json:"marca,omitempty"`
	Transmision   *Transmision    `json:"transmision,omitempty"`
	Combustible   *Combustible    `json:"combustible,omitempty"`
	Concesionario *Concesionario  `json:"concesionario,omitempty"`
}
