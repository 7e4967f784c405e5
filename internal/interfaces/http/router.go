package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/automotora-front/internal/application/usecase"
	"github.com/tu-usuario/automotora-front/internal/auth"
	"github.com/tu-usuario/automotora-front/internal/routes"
	"github.com/tu-usuario/automotora-front/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sesion      *auth.Context
	Tabla       routes.Tabla
	Log         *logger.Logger
	AuthUC      *usecase.AuthUseCase
	CatalogoUC  *usecase.CatalogoUseCase
	ReservaUC   *usecase.ReservaUseCase
	VehiculoUC  *usecase.VehiculoUseCase
	MarcaUC     *usecase.MarcaUseCase
	ConcesionUC *usecase.ConcesionarioUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	DashboardUC *usecase.DashboardUseCase
}

// Router registra la puerta de acceso y las rutas de la aplicación. Las rutas
// registradas espejan la tabla de navegación; la puerta corre antes que todas.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	layoutHandler := NewLayoutHandler(deps.Tabla)
	app.Get("/api/layout", layoutHandler.Resolver)

	// La puerta decide por path para TODA ruta navegable, incluidas las
	// mutaciones bajo /admin; va después de /health para no gatear el probe.
	app.Use(AccessGate(deps.Sesion, deps.Tabla, deps.Log))

	// Pantallas públicas
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	app.Get("/", catalogoHandler.Catalogo)
	app.Get("/vehiculo/:id", catalogoHandler.Detalle)

	authHandler := NewAuthHandler(deps.AuthUC)
	app.Get("/login", pantalla(deps.Tabla, routes.PantallaLogin))
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/create-user", pantalla(deps.Tabla, routes.PantallaCrearUsuario))
	app.Post("/create-user", authHandler.Registro)
	app.Get("/mi-perfil", authHandler.Perfil)

	reservaHandler := NewReservaHandler(deps.ReservaUC, deps.Sesion)
	app.Post("/vehiculo/:id/reservar", reservaHandler.Crear)
	app.Get("/mis-reservas", reservaHandler.MisReservas)
	app.Get("/mis-reservas/:id/comprobante", reservaHandler.Comprobante)

	// Sección de administración (la puerta ya validó rol elevado)
	admin := app.Group(routes.PrefijoAdmin)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	admin.Get("/dashboard", dashboardHandler.Resumen)

	vehiculoHandler := NewAdminVehiculoHandler(deps.VehiculoUC)
	admin.Get("/vehiculos", vehiculoHandler.List)
	admin.Post("/vehiculos", vehiculoHandler.Create)
	admin.Put("/vehiculos/:id", vehiculoHandler.Update)
	admin.Delete("/vehiculos/:id", vehiculoHandler.Delete)

	marcaHandler := NewAdminMarcaHandler(deps.MarcaUC)
	admin.Get("/marcas", marcaHandler.List)
	admin.Post("/marcas", marcaHandler.Create)
	admin.Put("/marcas/:id", marcaHandler.Update)
	admin.Delete("/marcas/:id", marcaHandler.Delete)

	concesionarioHandler := NewAdminConcesionarioHandler(deps.ConcesionUC)
	admin.Get("/concesionarios", concesionarioHandler.List)
	admin.Post("/concesionarios", concesionarioHandler.Create)
	admin.Put("/concesionarios/:id", concesionarioHandler.Update)
	admin.Delete("/concesionarios/:id", concesionarioHandler.Delete)

	usuarioHandler := NewAdminUsuarioHandler(deps.UsuarioUC)
	admin.Get("/usuarios", usuarioHandler.List)
	admin.Put("/usuarios/:id", usuarioHandler.CambiarRol)
	admin.Delete("/usuarios/:id", usuarioHandler.Delete)

	reservaAdminHandler := NewAdminReservaHandler(deps.ReservaUC)
	admin.Get("/reservas", reservaAdminHandler.List)
	admin.Put("/reservas/:id", reservaAdminHandler.CambiarEstado)
	admin.Delete("/reservas/:id", reservaAdminHandler.Delete)

	// Centinela: cualquier path no registrado cae a la pantalla no-encontrada.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"pantalla": routes.PantallaNoEncontrada,
			"layout":   routes.ResolverLayout(deps.Tabla, c.Path()),
		})
	})
}

// pantalla handler genérico de pantallas sin datos propios (login, registro):
// devuelve la clave de pantalla y su layout.
func pantalla(tabla routes.Tabla, nombre string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"pantalla": nombre,
			"layout":   routes.ResolverLayout(tabla, c.Path()),
		})
	}
}
