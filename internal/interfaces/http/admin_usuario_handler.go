package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/application/usecase"
)

// AdminUsuarioHandler administración de usuarios: listado, cambio de rol y baja.
type AdminUsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewAdminUsuarioHandler construye el handler.
func NewAdminUsuarioHandler(uc *usecase.UsuarioUseCase) *AdminUsuarioHandler {
	return &AdminUsuarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios con catálogo de roles (admin)
// @Tags         admin-usuarios
// @Produce      json
// @Success      200  {object}  dto.UsuariosAdminResponse
// @Router       /admin/usuarios [get]
func (h *AdminUsuarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAdmin(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CambiarRol godoc
// @Summary      Cambiar rol de un usuario
// @Tags         admin-usuarios
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.CambiarRolRequest  true  "Rol nuevo"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/usuarios/{id} [put]
func (h *AdminUsuarioHandler) CambiarRol(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.CambiarRolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg, ok := validarStruct(in); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.CambiarRol(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         admin-usuarios
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.Mensaje
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/usuarios/{id} [delete]
func (h *AdminUsuarioHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NuevoMensaje("Usuario eliminado", dto.MensajeSuccess))
}
