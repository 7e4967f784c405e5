package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/application/usecase"
)

// AdminReservaHandler administración de reservas: listado, cambio de estado y baja.
type AdminReservaHandler struct {
	uc *usecase.ReservaUseCase
}

// NewAdminReservaHandler construye el handler.
func NewAdminReservaHandler(uc *usecase.ReservaUseCase) *AdminReservaHandler {
	return &AdminReservaHandler{uc: uc}
}

// List godoc
// @Summary      Listar reservas con catálogo de estados (admin)
// @Tags         admin-reservas
// @Produce      json
// @Success      200  {object}  dto.ReservasAdminResponse
// @Router       /admin/reservas [get]
func (h *AdminReservaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAdmin(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CambiarEstado godoc
// @Summary      Cambiar estado de una reserva
// @Tags         admin-reservas
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la reserva"
// @Param        body  body  dto.CambiarEstadoReservaRequest  true  "Estado nuevo"
// @Success      200   {object}  dto.ReservaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/reservas/{id} [put]
func (h *AdminReservaHandler) CambiarEstado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.CambiarEstadoReservaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg, ok := validarStruct(in); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.CambiarEstado(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar reserva
// @Tags         admin-reservas
// @Produce      json
// @Param        id   path  int  true  "ID de la reserva"
// @Success      200  {object}  dto.Mensaje
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/reservas/{id} [delete]
func (h *AdminReservaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Eliminar(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NuevoMensaje("Reserva eliminada", dto.MensajeSuccess))
}
