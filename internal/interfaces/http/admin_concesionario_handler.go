package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/application/usecase"
)

// AdminConcesionarioHandler CRUD de concesionarios (pantalla admin).
type AdminConcesionarioHandler struct {
	uc *usecase.ConcesionarioUseCase
}

// NewAdminConcesionarioHandler construye el handler.
func NewAdminConcesionarioHandler(uc *usecase.ConcesionarioUseCase) *AdminConcesionarioHandler {
	return &AdminConcesionarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar concesionarios (admin)
// @Tags         admin-concesionarios
// @Produce      json
// @Success      200  {array}  dto.ConcesionarioResponse
// @Router       /admin/concesionarios [get]
func (h *AdminConcesionarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear concesionario
// @Tags         admin-concesionarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GuardarConcesionarioRequest  true  "Datos del concesionario"
// @Success      201   {object}  dto.ConcesionarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/concesionarios [post]
func (h *AdminConcesionarioHandler) Create(c *fiber.Ctx) error {
	var in dto.GuardarConcesionarioRequest
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
// @Summary      Actualizar concesionario
// @Tags         admin-concesionarios
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del concesionario"
// @Param        body  body  dto.GuardarConcesionarioRequest  true  "Datos del concesionario"
// @Success      200   {object}  dto.ConcesionarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/concesionarios/{id} [put]
func (h *AdminConcesionarioHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.GuardarConcesionarioRequest
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
// @Summary      Eliminar concesionario
// @Tags         admin-concesionarios
// @Produce      json
// @Param        id   path  int  true  "ID del concesionario"
// @Success      200  {object}  dto.Mensaje
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/concesionarios/{id} [delete]
func (h *AdminConcesionarioHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NuevoMensaje("Concesionario eliminado", dto.MensajeSuccess))
}
