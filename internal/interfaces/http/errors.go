package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// respondError mapea la taxonomía de errores de dominio a respuestas HTTP
// estructuradas. Los errores inesperados se loguean y salen como 500 opaco.
func respondError(c *fiber.Ctx, err error) error {
	var uniq *domain.UniquenessError
	if errors.As(err, &uniq) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "UNIQUENESS_VIOLATION", Message: uniq.Error(),
		})
	}
	var dep *domain.DependencyError
	if errors.As(err, &dep) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "DEPENDENCY_VIOLATION", Message: dep.Error(), Details: dep.Counts,
		})
	}
	var cycle *domain.CycleError
	if errors.As(err, &cycle) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "CYCLIC_HIERARCHY", Message: cycle.Error(),
		})
	}
	var tv *domain.TypeValidationError
	if errors.As(err, &tv) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "TYPE_VALIDATION", Message: tv.Error(),
		})
	}
	var inUse *domain.InUseError
	if errors.As(err, &inUse) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "IN_USE", Message: inUse.Error(), Details: map[string]int{"values": inUse.Count},
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "UNIQUENESS_VIOLATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: err.Error(),
		})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "error interno del servidor",
	})
}

// notFound respuesta 404 estándar para lookups que devuelven nil.
func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: message})
}

// badRequest respuesta 400 estándar para entradas malformadas.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: message})
}
