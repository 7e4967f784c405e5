// Package routes define la tabla estática de rutas navegables y su regla de
// calce. La tabla es la única fuente de metadatos que consultan la puerta de
// acceso (RequiereAdmin) y el resolutor de layout (MostrarNavbar).
package routes

import "strings"

// Nombres de pantalla; el router los mapea a su handler.
const (
	PantallaHome                = "home"
	PantallaLogin               = "login"
	PantallaCrearUsuario        = "crear-usuario"
	PantallaVehiculoDetalle     = "vehiculo-detalle"
	PantallaMisReservas         = "mis-reservas"
	PantallaMiPerfil            = "mi-perfil"
	PantallaAdminDashboard      = "admin-dashboard"
	PantallaAdminVehiculos      = "admin-vehiculos"
	PantallaAdminMarcas         = "admin-marcas"
	PantallaAdminConcesionarios = "admin-concesionarios"
	PantallaAdminUsuarios       = "admin-usuarios"
	PantallaAdminReservas       = "admin-reservas"
	PantallaNoEncontrada        = "no-encontrada"
)

// Rutas de redirección que usa la puerta de acceso.
const (
	RutaLogin = "/login"
	RutaHome  = "/"

	// PrefijoAdmin prefijo reservado de la sección de administración.
	// Solo lo usa el layout; la autorización sale de Descriptor.RequiereAdmin.
	PrefijoAdmin = "/admin"
)

// Descriptor metadatos estáticos de una ruta. Inmutable después del arranque.
type Descriptor struct {
	Ruta          string // patrón; ":param" calza un segmento no vacío, "*" es el centinela final
	Nombre        string // clave de pantalla para el router
	RequiereAdmin bool
	MostrarNavbar bool // relevante solo para rutas no-admin
}

// EsCatchAll indica si el descriptor es el centinela final.
func (d Descriptor) EsCatchAll() bool {
	return d.Ruta == "*"
}

// Tabla lista ordenada de descriptores; gana el primer calce y el centinela va último.
type Tabla []Descriptor

// Nueva devuelve la tabla de rutas de la aplicación.
func Nueva() Tabla {
	publicas := Tabla{
		{Ruta: "/", Nombre: PantallaHome, MostrarNavbar: true},
		{Ruta: "/login", Nombre: PantallaLogin},
		{Ruta: "/create-user", Nombre: PantallaCrearUsuario},
		{Ruta: "/vehiculo/:id", Nombre: PantallaVehiculoDetalle, MostrarNavbar: true},
		{Ruta: "/vehiculo/:id/reservar", Nombre: PantallaVehiculoDetalle, MostrarNavbar: true},
		{Ruta: "/mis-reservas", Nombre: PantallaMisReservas, MostrarNavbar: true},
		{Ruta: "/mis-reservas/:id/comprobante", Nombre: PantallaMisReservas, MostrarNavbar: true},
		{Ruta: "/mi-perfil", Nombre: PantallaMiPerfil, MostrarNavbar: true},
	}
	admin := Tabla{
		{Ruta: "/admin/dashboard", Nombre: PantallaAdminDashboard, RequiereAdmin: true},
		{Ruta: "/admin/vehiculos", Nombre: PantallaAdminVehiculos, RequiereAdmin: true},
		{Ruta: "/admin/vehiculos/:id", Nombre: PantallaAdminVehiculos, RequiereAdmin: true},
		{Ruta: "/admin/marcas", Nombre: PantallaAdminMarcas, RequiereAdmin: true},
		{Ruta: "/admin/marcas/:id", Nombre: PantallaAdminMarcas, RequiereAdmin: true},
		{Ruta: "/admin/concesionarios", Nombre: PantallaAdminConcesionarios, RequiereAdmin: true},
		{Ruta: "/admin/concesionarios/:id", Nombre: PantallaAdminConcesionarios, RequiereAdmin: true},
		{Ruta: "/admin/usuarios", Nombre: PantallaAdminUsuarios, RequiereAdmin: true},
		{Ruta: "/admin/usuarios/:id", Nombre: PantallaAdminUsuarios, RequiereAdmin: true},
		{Ruta: "/admin/reservas", Nombre: PantallaAdminReservas, RequiereAdmin: true},
		{Ruta: "/admin/reservas/:id", Nombre: PantallaAdminReservas, RequiereAdmin: true},
	}

	tabla := append(publicas, admin...)
	// Centinela 404: siempre al final, calza cualquier ruta.
	return append(tabla, Descriptor{Ruta: "*", Nombre: PantallaNoEncontrada})
}

// Match devuelve el primer descriptor cuyo patrón calza el path, en orden de
// declaración. Si ninguno calza devuelve el centinela; ok es false solo si la
// tabla no tiene centinela (tabla mal construida).
func (t Tabla) Match(path string) (Descriptor, bool) {
	for _, d := range t {
		if d.EsCatchAll() || matchPatron(d.Ruta, path) {
			return d, true
		}
	}
	return Descriptor{}, false
}

// matchPatron compara segmento a segmento. ":param" calza cualquier segmento no
// vacío; los demás segmentos calzan por igualdad exacta.
func matchPatron(patron, path string) bool {
	ps := splitSegmentos(patron)
	xs := splitSegmentos(path)
	if len(ps) != len(xs) {
		return false
	}
	for i, seg := range ps {
		if strings.HasPrefix(seg, ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if seg != xs[i] {
			return false
		}
	}
	return true
}

func splitSegmentos(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
