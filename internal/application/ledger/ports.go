package ledger

import (
	"context"

	"github.com/smartsell/smartsell-api/internal/domain/entity"
)

// ProductStore define el puerto de persistencia para la colección de productos.
// El contrato es por instantánea completa: Save reemplaza todo lo guardado y
// Load devuelve slice vacío (no error) si nunca se escribió nada.
type ProductStore interface {
	LoadProducts(ctx context.Context) ([]*entity.Product, error)
	SaveProducts(ctx context.Context, products []*entity.Product) error
}

// SaleStore define el puerto de persistencia para el libro de ventas.
// Mismo contrato de instantánea que ProductStore.
type SaleStore interface {
	LoadSales(ctx context.Context) ([]*entity.Sale, error)
	SaveSales(ctx context.Context, sales []*entity.Sale) error
}
