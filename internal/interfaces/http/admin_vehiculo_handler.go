package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/application/usecase"
)

// AdminVehiculoHandler CRUD de vehículos (pantalla admin).
type AdminVehiculoHandler struct {
	uc *usecase.VehiculoUseCase
}

// NewAdminVehiculoHandler construye el handler.
func NewAdminVehiculoHandler(uc *usecase.VehiculoUseCase) *AdminVehiculoHandler {
	return &AdminVehiculoHandler{uc: uc}
}

// List godoc
// @Summary      Listar vehículos (admin)
// @Tags         admin-vehiculos
// @Produce      json
// @Success      200  {array}  dto.VehiculoResponse
// @Router       /admin/vehiculos [get]
func (h *AdminVehiculoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear vehículo
// @Tags         admin-vehiculos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GuardarVehiculoRequest  true  "Datos del vehículo"
// @Success      201   {object}  dto.VehiculoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/vehiculos [post]
func (h *AdminVehiculoHandler) Create(c *fiber.Ctx) error {
	var in dto.GuardarVehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg, ok := validarStruct(in); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar vehículo
// @Tags         admin-vehiculos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del vehículo"
// @Param        body  body  dto.GuardarVehiculoRequest  true  "Datos del vehículo"
// @Success      200   {object}  dto.VehiculoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/vehiculos/{id} [put]
func (h *AdminVehiculoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.GuardarVehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg, ok := validarStruct(in); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar vehículo
// @Tags         admin-vehiculos
// @Produce      json
// @Param        id   path  int  true  "ID del vehículo"
// @Success      200  {object}  dto.Mensaje
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/vehiculos/{id} [delete]
func (h *AdminVehiculoHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NuevoMensaje("Vehículo eliminado", dto.MensajeSuccess))
}
