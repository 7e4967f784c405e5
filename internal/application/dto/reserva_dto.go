package dto

import "time"

// ReservaResponse reserva lista para vista.
type ReservaResponse struct {
	ID            int        `json:"id"`
	UsuarioNombre string     `json:"usuarioNombre,omitempty"`
	UsuarioCorreo string     `json:"usuarioCorreo,omitempty"`
	VehiculoID    int        `json:"vehiculoId,omitempty"`
	Vehiculo      string     `json:"vehiculo,omitempty"` // "Toyota Corolla"
	Anio          int        `json:"anio,omitempty"`
	FechaReserva  time.Time  `json:"fechaReserva"`
	FechaEntrega  *time.Time `json:"fechaEntrega,omitempty"`
	PrecioFmt     string     `json:"precioFmt"`
	EstadoID      int        `json:"estadoId,omitempty"`
	Estado        string     `json:"estado,omitempty"`
}

// MisReservasResponse pantalla "Mis Reservas": reservas del principal más el
// conteo por estado que encabeza la vista.
type MisReservasResponse struct {
	Reservas []ReservaResponse `json:"reservas"`
	Conteos  ConteoEstados     `json:"conteos"`
}

// ConteoEstados totales por estado de reserva.
type ConteoEstados struct {
	Total      int `json:"total"`
	Pendiente  int `json:"pendiente"`
	Confirmada int `json:"confirmada"`
	Cancelada  int `json:"cancelada"`
	Completada int `json:"completada"`
}

// ReservasAdminResponse pantalla admin: todas las reservas más el catálogo de
// estados para el selector de cambio de estado.
type ReservasAdminResponse struct {
	Reservas []ReservaResponse    `json:"reservas"`
	Estados  []ReferenciaResponse `json:"estados"`
	Conteos  ConteoEstados        `json:"conteos"`
}

// CrearReservaRequest entrada para reservar un vehículo desde su detalle.
type CrearReservaRequest struct {
	FechaEntrega *time.Time `json:"fechaEntrega,omitempty"`
}

// CambiarEstadoReservaRequest entrada del selector de estado (admin).
type CambiarEstadoReservaRequest struct {
	EstadoID int `json:"estadoId" validate:"required,gt=0"`
}
