package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
)

// fail mapea los errores sentinel del dominio al status HTTP y cuerpo de
// error estándar. Los handlers lo usan como rama por defecto; los casos
// con mensaje específico se tratan inline antes de llegar aquí.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "datos inválidos"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("UNAUTHORIZED", "credenciales inválidas"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Error("FORBIDDEN", "acceso denegado al recurso"))
	// El token de un usuario borrado es 401, pero ese caso lo responde el
	// middleware de auth directamente; aquí un usuario inexistente es un
	// recurso que no resuelve, igual que cualquier otro id.
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "usuario no encontrado"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.Error("EMAIL_EXISTS", "el email ya está registrado"))
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		return c.Status(fiber.StatusConflict).JSON(dto.Error("ALREADY_CHECKED_IN", "ya existe un check-in para hoy"))
	case errors.Is(err, domain.ErrAlreadyConverted):
		return c.Status(fiber.StatusConflict).JSON(dto.Error("ALREADY_CONVERTED", "el lead ya fue convertido"))
	case errors.Is(err, domain.ErrNoActiveCheckIn):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("NO_ACTIVE_CHECKIN", "no hay un check-in abierto para hoy"))
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Error("CONFLICT", "conflicto con el estado actual del recurso"))
	case errors.Is(err, domain.ErrUpstream):
		return c.Status(fiber.StatusBadGateway).JSON(dto.Error("UPSTREAM", "fallo en un colaborador externo"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
	}
}

// badRequest atajo para errores de entrada con mensaje propio.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", message))
}
