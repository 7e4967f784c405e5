package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/application/usecase"
)

// AdminMarcaHandler CRUD de marcas (pantalla admin).
type AdminMarcaHandler struct {
	uc *usecase.MarcaUseCase
}

// NewAdminMarcaHandler construye el handler.
func NewAdminMarcaHandler(uc *usecase.MarcaUseCase) *AdminMarcaHandler {
	return &AdminMarcaHandler{uc: uc}
}

// List godoc
// @Summary      Listar marcas (admin)
// @Tags         admin-marcas
// @Produce      json
// @Success      200  {array}  dto.ReferenciaResponse
// @Router       /admin/marcas [get]
func (h *AdminMarcaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear marca
// @Tags         admin-marcas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GuardarMarcaRequest  true  "Nombre de la marca"
// @Success      201   {object}  dto.ReferenciaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /admin/marcas [post]
func (h *AdminMarcaHandler) Create(c *fiber.Ctx) error {
	var in dto.GuardarMarcaRequest
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
// @Summary      Renombrar marca
// @Tags         admin-marcas
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la marca"
// @Param        body  body  dto.GuardarMarcaRequest  true  "Nombre nuevo"
// @Success      200   {object}  dto.ReferenciaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/marcas/{id} [put]
func (h *AdminMarcaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.GuardarMarcaRequest
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
// @Summary      Eliminar marca
// @Tags         admin-marcas
// @Produce      json
// @Param        id   path  int  true  "ID de la marca"
// @Success      200  {object}  dto.Mensaje
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/marcas/{id} [delete]
func (h *AdminMarcaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NuevoMensaje("Marca eliminada", dto.MensajeSuccess))
}
