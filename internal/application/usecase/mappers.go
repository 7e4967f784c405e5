package usecase

import (
	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/domain/entity"
)

// imagenPorDefecto respaldo cuando el backend no trae imagen para el vehículo.
const imagenPorDefecto = "https://www.hola.com/horizon/landscape/ec878ddab16b-cuidardgatito-t.jpg?im=Resize=(960),type=downsize"

func toVehiculoResponse(v *entity.Vehiculo) dto.VehiculoResponse {
	out := dto.VehiculoResponse{
		ID:        v.ID,
		Modelo:    v.Modelo,
		Anio:      v.Anio,
		Precio:    v.Precio,
		PrecioFmt: dto.FormatearPrecio(v.Precio),
		ImagenURL: v.Imagen,
	}
	if out.ImagenURL == "" {
		out.ImagenURL = imagenPorDefecto
	}
	if v.Marca != nil {
		out.Marca = &dto.ReferenciaResponse{ID: v.Marca.ID, Nombre: v.Marca.Nombre}
	}
	if v.Transmision != nil {
		out.Transmision = v.Transmision.Tipo
	}
	if v.Combustible != nil {
		out.Combustible = v.Combustible.Tipo
	}
	if v.Concesionario != nil {
		out.Concesionario = &dto.ReferenciaResponse{ID: v.Concesionario.ID, Nombre: v.Concesionario.Nombre}
	}
	return out
}

func toReservaResponse(r *entity.Reserva) dto.ReservaResponse {
	out := dto.ReservaResponse{
		ID:           r.ID,
		FechaReserva: r.FechaReserva,
		FechaEntrega: r.FechaEntrega,
		PrecioFmt:    dto.FormatearPrecio(r.Precio),
	}
	if r.Usuario != nil {
		out.UsuarioNombre = r.Usuario.Nombre
		out.UsuarioCorreo = r.Usuario.Correo
	}
	if r.Vehiculo != nil {
		out.VehiculoID = r.Vehiculo.ID
		out.Anio = r.Vehiculo.Anio
		out.Vehiculo = r.Vehiculo.Modelo
		if r.Vehiculo.Marca != nil {
			out.Vehiculo = r.Vehiculo.Marca.Nombre + " " + r.Vehiculo.Modelo
		}
	}
	if r.Estado != nil {
		out.EstadoID = r.Estado.ID
		out.Estado = r.Estado.Estado
	}
	return out
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	out := dto.UsuarioResponse{
		ID:     u.ID,
		Nombre: u.Nombre,
		Correo: u.Correo,
	}
	if u.Rol != nil {
		out.RolID = u.Rol.RolID()
		out.Rol = u.Rol.Nombre
	}
	return out
}

func toPrincipalResponse(p *entity.Principal) dto.PrincipalResponse {
	out := dto.PrincipalResponse{
		ID:     p.ID,
		Nombre: p.Nombre,
		RolID:  p.RolID(),
	}
	if p.Rol != nil {
		out.Rol = p.Rol.Nombre
	}
	return out
}

// contarEstados arma los totales por estado que encabezan las pantallas de reservas.
func contarEstados(reservas []dto.ReservaResponse) dto.ConteoEstados {
	c := dto.ConteoEstados{Total: len(reservas)}
	for _, r := range reservas {
		switch r.Estado {
		case entity.EstadoPendiente:
			c.Pendiente++
		case entity.EstadoConfirmada:
			c.Confirmada++
		case entity.EstadoCancelada:
			c.Cancelada++
		case entity.EstadoCompletada:
			c.Completada++
		}
	}
	return c
}
