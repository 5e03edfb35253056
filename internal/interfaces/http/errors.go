package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/holawaleh/e-commerce/internal/application/dto"
	"github.com/holawaleh/e-commerce/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP. Un
// ValidationError con fallo de stock insuficiente es 409 (conflicto con el
// estado actual), el resto de fallos de validación son 400.
func respondError(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidation(err); ok {
		status := fiber.StatusBadRequest
		code := "VALIDATION"
		if ve.Has(domain.CodeInsufficientStock) {
			status = fiber.StatusConflict
			code = "INSUFFICIENT_STOCK"
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Code:    code,
			Message: "validación fallida",
			Fields:  toFieldErrors(ve.Fields),
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrAlertResolved):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALERT_RESOLVED", Message: "la alerta ya fue resuelta"})
	case errors.Is(err, domain.ErrConcurrency):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONCURRENCY", Message: "conflicto de concurrencia, reintente la operación"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func toFieldErrors(fields []domain.FieldError) []dto.FieldError {
	out := make([]dto.FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, dto.FieldError{Field: f.Field, Code: f.Code, Message: f.Message})
	}
	return out
}
