package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsell/smartsell-api/internal/application/dto"
	"github.com/smartsell/smartsell-api/internal/application/ledger"
	"github.com/smartsell/smartsell-api/internal/domain"
	"github.com/smartsell/smartsell-api/internal/domain/entity"
	"github.com/smartsell/smartsell-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale: camino feliz
// ──────────────────────────────────────────────────────────────────────────────

// Croissant a $15 con stock 25; vender 10 deja stock 15 y total $150.
func TestRecordSale_DescuentaYRegistra(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()
	p := addProduct(t, core, "Croissant", 15, 25)

	out, err := core.RecordSale(ctx, dto.RecordSaleRequest{ProductID: p.ID, Quantity: 10})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, 15, out.UpdatedStock)
	assert.Equal(t, "Croissant", out.Sale.ProductName)
	assert.True(t, out.Sale.UnitPrice.Equal(decimal.NewFromInt(15)))
	assert.True(t, out.Sale.Total.Equal(decimal.NewFromInt(150)), "total = 10 x 15, obtuvo %s", out.Sale.Total)
	assert.Contains(t, out.Message, "10 x Croissant")

	after, err := core.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, after.Stock)

	require.Len(t, core.ListSales(), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale: rechazos sin efecto
// ──────────────────────────────────────────────────────────────────────────────

// Vender 999 con stock 25 falla con el faltante exacto y no cambia nada.
func TestRecordSale_StockInsuficiente(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()
	p := addProduct(t, core, "Croissant", 15, 25)

	_, err := core.RecordSale(ctx, dto.RecordSaleRequest{ProductID: p.ID, Quantity: 999})
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 25, stockErr.Available)
	assert.Equal(t, 999, stockErr.Requested)

	after, err := core.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, after.Stock, "el stock no debe cambiar tras un rechazo")
	assert.Empty(t, core.ListSales(), "no debe quedar venta en el libro")
}

func TestRecordSale_CantidadInvalida(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()
	p := addProduct(t, core, "Croissant", 15, 25)

	for _, qty := range []int{0, -3} {
		_, err := core.RecordSale(ctx, dto.RecordSaleRequest{ProductID: p.ID, Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d", qty)
	}
	assert.Empty(t, core.ListSales())
}

func TestRecordSale_ProductoInexistente(t *testing.T) {
	core := newTestCore(t)

	_, err := core.RecordSale(context.Background(), dto.RecordSaleRequest{ProductID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale: atomicidad ante fallos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

var errDisco = errors.New("disco lleno")

// failingStore envuelve el almacenamiento en memoria y permite hacer fallar
// cada guardado por separado, para verificar el guardado compensatorio.
type failingStore struct {
	inner            *memory.Store
	failSaveProducts bool
	failSaveSales    bool
}

func (s *failingStore) LoadProducts(ctx context.Context) ([]*entity.Product, error) {
	return s.inner.LoadProducts(ctx)
}

func (s *failingStore) SaveProducts(ctx context.Context, products []*entity.Product) error {
	if s.failSaveProducts {
		return errDisco
	}
	return s.inner.SaveProducts(ctx, products)
}

func (s *failingStore) LoadSales(ctx context.Context) ([]*entity.Sale, error) {
	return s.inner.LoadSales(ctx)
}

func (s *failingStore) SaveSales(ctx context.Context, sales []*entity.Sale) error {
	if s.failSaveSales {
		return errDisco
	}
	return s.inner.SaveSales(ctx, sales)
}

// Si falla el guardado del libro, la operación falla sin efecto alguno.
func TestRecordSale_FalloAlGuardarVentas(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{inner: memory.NewStore()}
	core := ledger.NewCore(store, store)
	require.NoError(t, core.Open(ctx))
	p := addProduct(t, core, "Croissant", 15, 25)

	store.failSaveSales = true
	_, err := core.RecordSale(ctx, dto.RecordSaleRequest{ProductID: p.ID, Quantity: 10})
	var persistErr *domain.PersistenceError
	require.ErrorAs(t, err, &persistErr)
	assert.ErrorIs(t, err, errDisco)

	after, err := core.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, after.Stock)
	assert.Empty(t, core.ListSales())

	persisted, err := store.inner.LoadSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted, "nada debe haberse escrito en el almacenamiento")
}

// Si falla el guardado del inventario después de guardar el libro, el
// guardado compensatorio restaura el libro anterior: ni venta ni descuento.
func TestRecordSale_FalloAlGuardarInventarioRevierteElLibro(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{inner: memory.NewStore()}
	core := ledger.NewCore(store, store)
	require.NoError(t, core.Open(ctx))
	p := addProduct(t, core, "Croissant", 15, 25)

	store.failSaveProducts = true
	_, err := core.RecordSale(ctx, dto.RecordSaleRequest{ProductID: p.ID, Quantity: 10})
	require.ErrorIs(t, err, errDisco)

	// Estado en memoria intacto.
	after, err := core.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, after.Stock)
	assert.Empty(t, core.ListSales())

	// Estado persistido también: el libro guardado volvió a quedar vacío.
	persistedSales, err := store.inner.LoadSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, persistedSales, "el guardado compensatorio debe dejar el libro como estaba")

	persistedProducts, err := store.inner.LoadProducts(ctx)
	require.NoError(t, err)
	require.Len(t, persistedProducts, 1)
	assert.Equal(t, 25, persistedProducts[0].Stock)
}

// Tras un fallo transitorio el núcleo sigue siendo utilizable.
func TestRecordSale_SeRecuperaTrasElFallo(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{inner: memory.NewStore()}
	core := ledger.NewCore(store, store)
	require.NoError(t, core.Open(ctx))
	p := addProduct(t, core, "Croissant", 15, 25)

	store.failSaveProducts = true
	_, err := core.RecordSale(ctx, dto.RecordSaleRequest{ProductID: p.ID, Quantity: 10})
	require.Error(t, err)

	store.failSaveProducts = false
	out, err := core.RecordSale(ctx, dto.RecordSaleRequest{ProductID: p.ID, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, 15, out.UpdatedStock)
	require.Len(t, core.ListSales(), 1)
}
