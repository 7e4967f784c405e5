package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/application/usecase"
	"github.com/tu-usuario/automotora-front/internal/domain"
	"github.com/tu-usuario/automotora-front/internal/routes"
)

// AuthHandler maneja login, logout, registro y la pantalla de perfil.
type AuthHandler struct {
	uc *usecase.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg, ok := validarStruct(in); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Mensaje
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	out, err := h.uc.Logout()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Registro godoc
// @Summary      Crear cuenta de cliente
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.Mensaje
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /create-user [post]
func (h *AuthHandler) Registro(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg, ok := validarStruct(in); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Registro(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Perfil godoc
// @Summary      Pantalla "Mi Perfil"
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.PerfilResponse
// @Failure      303  {string}  string  "redirect a /login sin sesión"
// @Router       /mi-perfil [get]
func (h *AuthHandler) Perfil(c *fiber.Ctx) error {
	out, err := h.uc.Perfil()
	if err != nil {
		// Pantalla navegable: sin sesión se navega al login, como en la SPA.
		if errors.Is(err, domain.ErrSinSesion) {
			return c.Redirect(routes.RutaLogin, fiber.StatusSeeOther)
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}
