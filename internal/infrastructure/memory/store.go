// Package memory implementa el colaborador de persistencia en memoria.
// Es el motor de demostración: nada sobrevive al reinicio del proceso.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartsell/smartsell-api/internal/application/ledger"
	"github.com/smartsell/smartsell-api/internal/domain/entity"
)

// Las aserciones de interfaz van aquí para que un cambio en los puertos
// falle en compilación.
var (
	_ ledger.ProductStore = (*Store)(nil)
	_ ledger.SaleStore    = (*Store)(nil)
)

// Store guarda instantáneas de ambas colecciones en memoria.
type Store struct {
	mu       sync.Mutex
	products []*entity.Product
	sales    []*entity.Sale
}

// NewStore construye un almacenamiento vacío.
func NewStore() *Store {
	return &Store{}
}

// NewDemoStore construye el almacenamiento precargado con los datos de la
// pastelería de demostración del dashboard original.
func NewDemoStore() *Store {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	cake := demoProduct("Chocolate Cake", 30, 12, "🎂", now)
	croissant := demoProduct("Croissant", 15, 25, "🥐", now)
	muffin := demoProduct("Blueberry Muffin", 15, 4, "🧁", now)

	return &Store{
		products: []*entity.Product{cake, croissant, muffin},
		sales: []*entity.Sale{
			demoSale(cake, 5, yesterday.Add(10*time.Hour+30*time.Minute)),
			demoSale(croissant, 10, yesterday.Add(11*time.Hour)),
			demoSale(muffin, 8, yesterday.Add(12*time.Hour)),
		},
	}
}

func demoProduct(name string, price int64, stock int, icon string, now time.Time) *entity.Product {
	return &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     decimal.NewFromInt(price),
		Stock:     stock,
		Icon:      icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func demoSale(p *entity.Product, quantity int, at time.Time) *entity.Sale {
	return &entity.Sale{
		ID:          uuid.New().String(),
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Quantity:    quantity,
		Total:       p.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Timestamp:   at,
	}
}

// LoadProducts devuelve una copia de la instantánea guardada.
func (s *Store) LoadProducts(_ context.Context) ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProducts(s.products), nil
}

// SaveProducts reemplaza la instantánea guardada.
func (s *Store) SaveProducts(_ context.Context, products []*entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = cloneProducts(products)
	return nil
}

// LoadSales devuelve una copia del libro guardado.
func (s *Store) LoadSales(_ context.Context) ([]*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSales(s.sales), nil
}

// SaveSales reemplaza el libro guardado.
func (s *Store) SaveSales(_ context.Context, sales []*entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = cloneSales(sales)
	return nil
}

func cloneProducts(in []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0, len(in))
	for _, p := range in {
		out = append(out, p.Clone())
	}
	return out
}

func cloneSales(in []*entity.Sale) []*entity.Sale {
	out := make([]*entity.Sale, 0, len(in))
	for _, s := range in {
		out = append(out, s.Clone())
	}
	return out
}
