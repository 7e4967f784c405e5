package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de reserva conocidos del backend.
const (
	EstadoPendiente  = "pendiente"
	EstadoConfirmada = "confirmada"
	EstadoCancelada  = "cancelada"
	EstadoCompletada = "completada"
)

// EstadoReserva estado del ciclo de vida de una reserva (/estados-reserva).
type EstadoReserva struct {
	ID     int    `json:"id"`
	Estado string `json:"estado"`
}

// Reserva reserva de un vehículo hecha por un usuario.
type Reserva struct {
	ID           int             `json:"id"`
	Usuario      *Usuario        `json:"usuario,omitempty"`
	Vehiculo     *Vehiculo       `json:"vehiculo,omitempty"`
	FechaReserva time.Time       `json:"fechaReserva"`
	FechaEntrega *time.Time      `json:"fechaEntrega,omitempty"`
	Precio       decimal.Decimal `json:"precio"`
	Estado       *EstadoReserva  `json:"estado,omitempty"`
}
