package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartsell/smartsell-api/internal/application/dto"
	"github.com/smartsell/smartsell-api/internal/domain"
	"github.com/smartsell/smartsell-api/internal/domain/entity"
)

// RecordSale registra una venta como unidad atómica: valida producto, cantidad
// y stock disponible, toma la copia de nombre/precio del momento, descuenta el
// stock y agrega la venta al libro. Nunca queda una venta sin su descuento ni
// un descuento sin su venta.
//
// Los pasos de validación son puros; la única fase con efectos es el guardado
// de las dos instantáneas. Se guarda primero el libro de ventas y luego el
// inventario; si el segundo guardado falla, se restaura el libro anterior
// (guardado compensatorio) y la operación falla sin efecto alguno.
func (c *Core) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	if in.Quantity < 1 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "debe ser un entero positivo"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i, product := c.findProduct(in.ProductID)
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity > product.Stock {
		return nil, &domain.InsufficientStockError{Available: product.Stock, Requested: in.Quantity}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		ProductName: product.Name, // copia del momento: ediciones posteriores no la tocan
		UnitPrice:   product.Price,
		Quantity:    in.Quantity,
		Total:       product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Timestamp:   now,
	}
	updated := product.Clone()
	updated.Stock -= in.Quantity
	updated.UpdatedAt = now

	nextSales := c.appendSale(sale)
	nextProducts := c.replaceProduct(i, updated)

	if err := c.saveSales(ctx, nextSales); err != nil {
		return nil, err
	}
	if err := c.saveProducts(ctx, nextProducts); err != nil {
		// Compensación: el libro ya se guardó con la venta nueva; se vuelve a
		// guardar el libro anterior para no dejar una venta sin descuento.
		if rbErr := c.saleStore.SaveSales(ctx, c.sales); rbErr != nil {
			return nil, &domain.PersistenceError{Op: "revertir libro de ventas", Err: errors.Join(err, rbErr)}
		}
		return nil, err
	}
	c.sales = nextSales
	c.products = nextProducts

	return &dto.RecordSaleResponse{
		Success:      true,
		Sale:         toSaleResponse(sale),
		UpdatedStock: updated.Stock,
		Message:      fmt.Sprintf("Venta registrada: %d x %s por $%s", sale.Quantity, sale.ProductName, sale.Total.String()),
	}, nil
}
