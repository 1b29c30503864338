// Package ledger implementa el núcleo del dashboard: el inventario de
// productos y el libro de ventas append-only, acoplados únicamente por
// RecordSale.
//
// El Core es el único escritor de ambas colecciones. Mantiene el estado de
// trabajo en memoria bajo un solo RWMutex y persiste por instantáneas a
// través de los puertos ProductStore/SaleStore: cada mutación construye las
// colecciones nuevas, las guarda y solo entonces las publica en memoria.
// Un lector jamás observa una venta a medio aplicar.
package ledger

import (
	"context"
	"sync"

	"github.com/smartsell/smartsell-api/internal/application/dto"
	"github.com/smartsell/smartsell-api/internal/domain"
	"github.com/smartsell/smartsell-api/internal/domain/entity"
)

// Core estado de trabajo del inventario y el libro de ventas.
type Core struct {
	mu       sync.RWMutex
	products []*entity.Product // orden de inserción
	sales    []*entity.Sale    // orden de registro (cronológico)

	productStore ProductStore
	saleStore    SaleStore
}

// NewCore construye el núcleo sobre el colaborador de persistencia.
// Llamar Open antes de operar.
func NewCore(productStore ProductStore, saleStore SaleStore) *Core {
	return &Core{
		productStore: productStore,
		saleStore:    saleStore,
	}
}

// Open carga ambas colecciones desde el almacenamiento. Un almacenamiento
// vacío entrega slices vacíos, no error.
func (c *Core) Open(ctx context.Context) error {
	products, err := c.productStore.LoadProducts(ctx)
	if err != nil {
		return &domain.PersistenceError{Op: "cargar productos", Err: err}
	}
	sales, err := c.saleStore.LoadSales(ctx)
	if err != nil {
		return &domain.PersistenceError{Op: "cargar ventas", Err: err}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
	c.sales = sales
	return nil
}

// ── Helpers internos (el caller debe tener el lock) ──────────────────────────

// findProduct devuelve índice y puntero del producto, o (-1, nil).
func (c *Core) findProduct(id string) (int, *entity.Product) {
	for i, p := range c.products {
		if p.ID == id {
			return i, p
		}
	}
	return -1, nil
}

// saveProducts persiste la instantánea y envuelve el fallo en PersistenceError.
func (c *Core) saveProducts(ctx context.Context, products []*entity.Product) error {
	if err := c.productStore.SaveProducts(ctx, products); err != nil {
		return &domain.PersistenceError{Op: "guardar productos", Err: err}
	}
	return nil
}

// saveSales persiste la instantánea del libro de ventas.
func (c *Core) saveSales(ctx context.Context, sales []*entity.Sale) error {
	if err := c.saleStore.SaveSales(ctx, sales); err != nil {
		return &domain.PersistenceError{Op: "guardar ventas", Err: err}
	}
	return nil
}

// replaceProduct devuelve una colección nueva con updated en la posición i.
// Los demás elementos se comparten: son inmutables una vez publicados.
func (c *Core) replaceProduct(i int, updated *entity.Product) []*entity.Product {
	next := make([]*entity.Product, len(c.products))
	copy(next, c.products)
	next[i] = updated
	return next
}

// appendProduct devuelve una colección nueva con p al final.
func (c *Core) appendProduct(p *entity.Product) []*entity.Product {
	next := make([]*entity.Product, len(c.products), len(c.products)+1)
	copy(next, c.products)
	return append(next, p)
}

// removeProduct devuelve una colección nueva sin la posición i.
func (c *Core) removeProduct(i int) []*entity.Product {
	next := make([]*entity.Product, 0, len(c.products)-1)
	next = append(next, c.products[:i]...)
	return append(next, c.products[i+1:]...)
}

// appendSale devuelve el libro nuevo con s al final.
func (c *Core) appendSale(s *entity.Sale) []*entity.Sale {
	next := make([]*entity.Sale, len(c.sales), len(c.sales)+1)
	copy(next, c.sales)
	return append(next, s)
}

// ── Mapeo a DTOs ─────────────────────────────────────────────────────────────

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Icon:      p.Icon,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		UnitPrice:   s.UnitPrice,
		Quantity:    s.Quantity,
		Total:       s.Total,
		Timestamp:   s.Timestamp,
	}
}
