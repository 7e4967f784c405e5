package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/automotora-front/internal/application/dto"
	"github.com/tu-usuario/automotora-front/internal/application/usecase"
	"github.com/tu-usuario/automotora-front/internal/auth"
	"github.com/tu-usuario/automotora-front/internal/domain"
	"github.com/tu-usuario/automotora-front/internal/routes"
)

// ReservaHandler flujo de reservas del cliente: reservar desde el detalle,
// "Mis Reservas" y la descarga del comprobante.
type ReservaHandler struct {
	uc     *usecase.ReservaUseCase
	sesion *auth.Context
}

// NewReservaHandler construye el handler.
func NewReservaHandler(uc *usecase.ReservaUseCase, sesion *auth.Context) *ReservaHandler {
	return &ReservaHandler{uc: uc, sesion: sesion}
}

// Crear godoc
// @Summary      Reservar un vehículo
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del vehículo"
// @Param        body  body  dto.CrearReservaRequest  false  "Fecha de entrega deseada"
// @Success      201   {object}  dto.ReservaResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /vehiculo/{id}/reservar [post]
func (h *ReservaHandler) Crear(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.CrearReservaRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.uc.Crear(c.UserContext(), h.sesion.Principal(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MisReservas godoc
// @Summary      Pantalla "Mis Reservas"
// @Tags         reservas
// @Produce      json
// @Success      200  {object}  dto.MisReservasResponse
// @Failure      303  {string}  string  "redirect a /login sin sesión"
// @Router       /mis-reservas [get]
func (h *ReservaHandler) MisReservas(c *fiber.Ctx) error {
	out, err := h.uc.MisReservas(c.UserContext(), h.sesion.Principal())
	if err != nil {
		// Es una pantalla navegable: sin sesión se navega al login, como
		// hacía la SPA, en vez de responder un error de API.
		if errors.Is(err, domain.ErrSinSesion) {
			return c.Redirect(routes.RutaLogin, fiber.StatusSeeOther)
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Comprobante godoc
// @Summary      Descargar comprobante de reserva en PDF
// @Tags         reservas
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la reserva"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /mis-reservas/{id}/comprobante [get]
func (h *ReservaHandler) Comprobante(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	pdfBytes, err := h.uc.Comprobante(c.UserContext(), h.sesion.Principal(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reserva-%d.pdf"`, id))
	return c.Send(pdfBytes)
}
