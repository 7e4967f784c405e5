package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/automotora-front/internal/application/usecase"
)

// DashboardHandler resumen de la pantalla de inicio admin.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumen godoc
// @Summary      Resumen del dashboard (admin)
// @Tags         admin-dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /admin/dashboard [get]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
