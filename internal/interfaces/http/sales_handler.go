package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartsell/smartsell-api/internal/application/dto"
	"github.com/smartsell/smartsell-api/internal/application/ledger"
)

// SalesHandler maneja las peticiones HTTP del libro de ventas (protegido).
type SalesHandler struct {
	core *ledger.Core
}

// NewSalesHandler construye el handler.
func NewSalesHandler(core *ledger.Core) *SalesHandler {
	return &SalesHandler{core: core}
}

// Add godoc
// @Summary      Registrar una venta (descuenta stock y agrega al libro, atómico)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Producto y cantidad"
// @Success      201   {object}  dto.RecordSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/add [post]
func (h *SalesHandler) Add(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.core.RecordSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas, la más reciente primero
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales/list [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.core.ListSales())
}

// Summary godoc
// @Summary      Resumen para el dashboard: histórico y día en curso
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesSummaryResponse
// @Router       /api/sales/summary [get]
func (h *SalesHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.core.Summarize())
}
