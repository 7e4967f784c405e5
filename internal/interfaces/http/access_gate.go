package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/automotora-front/internal/auth"
	"github.com/tu-usuario/automotora-front/internal/routes"
	"github.com/tu-usuario/automotora-front/pkg/logger"
)

// AccessGate puerta de acceso por ruta. Calza el path contra la tabla y decide
// antes de que corra cualquier handler:
//
//   - sesión aún cargando        → respuesta neutra de carga, nunca un redirect
//   - ruta admin sin sesión      → redirect a /login
//   - ruta admin con rol no elevado → redirect silencioso a /
//   - en cualquier otro caso     → sigue al handler
//
// Los redirects usan 303 See Other: el navegador no deja la URL denegada en el
// historial de navegación hacia adelante.
//
// La app debe construirse con fiber.Config{CaseSensitive: true}: la tabla calza
// sensible a mayúsculas, y un router insensible despacharía /Admin/... a un
// handler admin que la puerta dejó pasar como ruta desconocida.
func AccessGate(sesion *auth.Context, tabla routes.Tabla, log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		// Mientras la sesión se restaura no hay decisión confiable que tomar.
		if sesion.Cargando() {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"cargando": true})
		}

		d, ok := tabla.Match(c.Path())
		if !ok || !d.RequiereAdmin {
			return c.Next()
		}

		principal := sesion.Principal()
		if principal == nil {
			return c.Redirect(routes.RutaLogin, fiber.StatusSeeOther)
		}
		if !principal.EsElevado() {
			// Silencioso a propósito: no se revela que la ruta existe.
			log.Warn().
				Int("usuario_id", principal.ID).
				Int("rol_id", principal.RolID()).
				Str("ruta", c.Path()).
				Msg("acceso admin denegado por rol insuficiente")
			return c.Redirect(routes.RutaHome, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
