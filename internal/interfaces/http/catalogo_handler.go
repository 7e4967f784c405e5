package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/application/usecase"
)

// CatalogoHandler pantallas públicas: home y detalle de vehículo.
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Catalogo godoc
// @Summary      Catálogo de vehículos
// @Tags         catalogo
// @Produce      json
// @Success      200  {object}  dto.CatalogoResponse
// @Router       / [get]
func (h *CatalogoHandler) Catalogo(c *fiber.Ctx) error {
	out, err := h.uc.Catalogo(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Detalle godoc
// @Summary      Detalle de un vehículo
// @Tags         catalogo
// @Produce      json
// @Param        id   path  int  true  "ID del vehículo"
// @Success      200  {object}  dto.VehiculoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /vehiculo/{id} [get]
func (h *CatalogoHandler) Detalle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.Detalle(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
