package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartsell/smartsell-api/internal/application/dto"
)

// ListSales devuelve el libro completo, la venta más reciente primero.
func (c *Core) ListSales() []dto.SaleResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]dto.SaleResponse, 0, len(c.sales))
	for i := len(c.sales) - 1; i >= 0; i-- {
		items = append(items, toSaleResponse(c.sales[i]))
	}
	return items
}

// Summarize reduce el libro de ventas a los acumulados del dashboard:
// histórico completo y día calendario en curso (hora local del servidor,
// igual que el dashboard original). Con cero ventas todo es 0.
func (c *Core) Summarize() *dto.SalesSummaryResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	summary := &dto.SalesSummaryResponse{
		AllTime: dto.AllTimeSummary{Revenue: decimal.Zero},
		Today:   dto.TodaySummary{Revenue: decimal.Zero},
	}
	for _, s := range c.sales {
		summary.AllTime.Revenue = summary.AllTime.Revenue.Add(s.Total)
		summary.AllTime.ItemsSold += s.Quantity
		summary.AllTime.SaleCount++
		if s.SoldOn(now) {
			summary.Today.Revenue = summary.Today.Revenue.Add(s.Total)
			summary.Today.ItemsSold += s.Quantity
		}
	}
	return summary
}
