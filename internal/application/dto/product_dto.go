package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock" validate:"min=0"`
	Icon  string          `json:"icon"` // opcional; por defecto 📦
}

// UpdateProductRequest entrada para editar un producto.
// Stock no se toca aquí: solo cambia vía ajuste de stock o venta, para no
// romper la ley de conservación del inventario.
type UpdateProductRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price *decimal.Decimal `json:"price"`
	Icon  *string          `json:"icon"`
}

// AdjustStockRequest entrada para sumar o restar stock.
// Direction: "increase" | "decrease" (se aceptan "add" | "remove" por
// compatibilidad con el dashboard original).
type AdjustStockRequest struct {
	Direction string `json:"direction"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Icon      string          `json:"icon"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProductMutationResponse salida de las operaciones que mutan un producto
// (crear, editar, ajustar stock, eliminar), con mensaje para el dashboard.
type ProductMutationResponse struct {
	Success bool            `json:"success"`
	Product ProductResponse `json:"product"`
	Message string          `json:"message"`
}
