package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultIcon es el glifo que recibe un producto cuando no se indica otro.
const DefaultIcon = "📦"

// Product representa un producto del inventario.
// Stock nunca es negativo: toda mutación pasa por AdjustStock o RecordSale.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"` // precio unitario de venta
	Stock     int             `json:"stock"`
	Icon      string          `json:"icon"` // glifo para el dashboard
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Clone devuelve una copia independiente (el núcleo entrega copias, nunca
// punteros a su estado interno).
func (p *Product) Clone() *Product {
	c := *p
	return &c
}
