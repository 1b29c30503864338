package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/smartsell/smartsell-api/internal/application/dto"
	"github.com/smartsell/smartsell-api/internal/domain"
)

// respondError mapea la taxonomía de errores del dominio a HTTP:
// NotFound -> 404, Validation/InsufficientStock -> 400, resto -> 500.
// Los handlers que necesitan un mensaje específico para stock insuficiente
// (ajuste vs venta) lo tratan antes de llegar aquí.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	var stockErr *domain.InsufficientStockError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("No hay stock suficiente. Disponible: %d, Solicitado: %d", stockErr.Available, stockErr.Requested),
		})
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: fmt.Sprintf("%s %s", vErr.Field, vErr.Reason),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
