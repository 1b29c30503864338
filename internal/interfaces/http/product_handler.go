package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/smartsell/smartsell-api/internal/application/dto"
	"github.com/smartsell/smartsell-api/internal/application/ledger"
	"github.com/smartsell/smartsell-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP del inventario (protegido).
type ProductHandler struct {
	core              *ledger.Core
	lowStockThreshold int
}

// NewProductHandler construye el handler. threshold <= 0 usa el umbral por defecto.
func NewProductHandler(core *ledger.Core, lowStockThreshold int) *ProductHandler {
	if lowStockThreshold <= 0 {
		lowStockThreshold = ledger.DefaultLowStockThreshold
	}
	return &ProductHandler{core: core, lowStockThreshold: lowStockThreshold}
}

// Add godoc
// @Summary      Agregar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/add [post]
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.core.AddProduct(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos (orden de inserción)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/list [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.core.ListProducts())
}

// LowStock godoc
// @Summary      Productos con poco stock, el faltante más urgente primero
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral de reposición"  default(5)
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", h.lowStockThreshold)
	return c.JSON(h.core.ListLowStock(threshold))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.core.GetProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar nombre, precio o ícono de un producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.core.UpdateProduct(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AdjustStock godoc
// @Summary      Sumar o restar stock
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "Dirección y cantidad"
// @Success      200   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [put]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.core.AdjustStock(c.Context(), c.Params("id"), in)
	if err != nil {
		// Mensaje específico del ajuste, como el dashboard original.
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "INSUFFICIENT_STOCK",
				Message: fmt.Sprintf("No se pueden retirar %d unidades, solo hay %d disponibles", stockErr.Requested, stockErr.Available),
			})
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductMutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	out, err := h.core.DeleteProduct(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
