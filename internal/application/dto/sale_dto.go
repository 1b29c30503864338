package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta.
type RecordSaleRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// SaleResponse salida de una venta del libro.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	Timestamp   time.Time       `json:"timestamp"`
}

// RecordSaleResponse salida de registrar una venta: la venta creada más el
// stock resultante del producto, para refrescar el dashboard sin otra consulta.
type RecordSaleResponse struct {
	Success      bool         `json:"success"`
	Sale         SaleResponse `json:"sale"`
	UpdatedStock int          `json:"updatedStock"`
	Message      string       `json:"message"`
}

// AllTimeSummary acumulados históricos del libro de ventas.
type AllTimeSummary struct {
	Revenue   decimal.Decimal `json:"revenue"`
	ItemsSold int             `json:"itemsSold"`
	SaleCount int             `json:"saleCount"`
}

// TodaySummary acumulados del día calendario en curso (hora local del servidor).
type TodaySummary struct {
	Revenue   decimal.Decimal `json:"revenue"`
	ItemsSold int             `json:"itemsSold"`
}

// SalesSummaryResponse resumen para las tarjetas del dashboard.
// Con cero ventas todos los campos numéricos son 0, nunca null.
type SalesSummaryResponse struct {
	AllTime AllTimeSummary `json:"allTime"`
	Today   TodaySummary   `json:"today"`
}
