package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/automotora-front/internal/routes"
)

// LayoutHandler resuelve la variante cosmética (barra, título, enlaces) para un
// path dado. Es solo presentación: la autorización corre en la puerta de acceso.
type LayoutHandler struct {
	tabla routes.Tabla
}

// NewLayoutHandler construye el handler.
func NewLayoutHandler(tabla routes.Tabla) *LayoutHandler {
	return &LayoutHandler{tabla: tabla}
}

// Resolver godoc
// @Summary      Resolver layout para un path
// @Tags         layout
// @Produce      json
// @Param        path  query  string  false  "Path a resolver"  default(/)
// @Success      200   {object}  routes.Layout
// @Router       /api/layout [get]
func (h *LayoutHandler) Resolver(c *fiber.Ctx) error {
	path := c.Query("path", routes.RutaHome)
	return c.JSON(routes.ResolverLayout(h.tabla, path))
}
