package routes

// Enlace ítem de navegación de la barra.
type Enlace struct {
	Etiqueta string `json:"etiqueta"`
	Ruta     string `json:"ruta"`
}

// Layout variante cosmética derivada del path actual. No es una señal de
// autorización: corre independiente de la puerta de acceso y nunca la sustituye.
type Layout struct {
	EsSeccionAdmin bool     `json:"esSeccionAdmin"`
	MostrarNavbar  bool     `json:"mostrarNavbar"`
	Titulo         string   `json:"titulo"`
	Enlaces        []Enlace `json:"enlaces"`
}

const (
	tituloPublico = "Automotora Front"
	tituloAdmin   = "Admin Automotora"
)

var enlacesPublicos = []Enlace{
	{Etiqueta: "Catálogo", Ruta: "/"},
	{Etiqueta: "Mis Reservas", Ruta: "/mis-reservas"},
	{Etiqueta: "Mi Perfil", Ruta: "/mi-perfil"},
}

var enlacesAdmin = []Enlace{
	{Etiqueta: "Dashboard", Ruta: "/admin/dashboard"},
	{Etiqueta: "Vehículos", Ruta: "/admin/vehiculos"},
	{Etiqueta: "Marcas", Ruta: "/admin/marcas"},
	{Etiqueta: "Concesionarios", Ruta: "/admin/concesionarios"},
	{Etiqueta: "Usuarios", Ruta: "/admin/usuarios"},
	{Etiqueta: "Reservas", Ruta: "/admin/reservas"},
}

// ResolverLayout deriva navbar y título para el path dado:
// la sección admin siempre muestra su barra; fuera de ella manda el
// MostrarNavbar de la ruta calzada (path sin calce ⇒ sin barra).
func ResolverLayout(tabla Tabla, path string) Layout {
	esAdmin := esSeccionAdmin(path)

	mostrar := esAdmin
	if d, ok := tabla.Match(path); ok && !d.EsCatchAll() {
		mostrar = esAdmin || d.MostrarNavbar
	}

	l := Layout{
		EsSeccionAdmin: esAdmin,
		MostrarNavbar:  mostrar,
		Titulo:         tituloPublico,
		Enlaces:        enlacesPublicos,
	}
	if esAdmin {
		l.Titulo = tituloAdmin
		l.Enlaces = enlacesAdmin
	}
	return l
}

func esSeccionAdmin(path string) bool {
	if path == PrefijoAdmin {
		return true
	}
	return len(path) > len(PrefijoAdmin) && path[:len(PrefijoAdmin)+1] == PrefijoAdmin+"/"
}
