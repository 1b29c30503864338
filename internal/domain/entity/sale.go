package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es un registro inmutable del libro de ventas (append-only).
// ProductName y UnitPrice son copias tomadas al momento de la venta:
// si el producto se edita o elimina después, la venta histórica no cambia.
type Sale struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"` // UnitPrice * Quantity, calculado una sola vez
	Timestamp   time.Time       `json:"timestamp"`
}

// Clone devuelve una copia independiente.
func (s *Sale) Clone() *Sale {
	c := *s
	return &c
}

// SoldOn indica si la venta ocurrió en el día calendario de ref
// (zona horaria local del servidor, igual que el dashboard original).
func (s *Sale) SoldOn(ref time.Time) bool {
	y1, m1, d1 := s.Timestamp.Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
