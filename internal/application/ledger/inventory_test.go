package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsell/smartsell-api/internal/application/dto"
	"github.com/smartsell/smartsell-api/internal/application/ledger"
	"github.com/smartsell/smartsell-api/internal/domain"
	"github.com/smartsell/smartsell-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newTestCore construye el núcleo sobre un almacenamiento en memoria vacío.
func newTestCore(t *testing.T) *ledger.Core {
	t.Helper()
	store := memory.NewStore()
	core := ledger.NewCore(store, store)
	require.NoError(t, core.Open(context.Background()))
	return core
}

// addProduct agrega un producto y devuelve su representación.
func addProduct(t *testing.T, core *ledger.Core, name string, price int64, stock int) dto.ProductResponse {
	t.Helper()
	out, err := core.AddProduct(context.Background(), dto.CreateProductRequest{
		Name:  name,
		Price: decimal.NewFromInt(price),
		Stock: stock,
	})
	require.NoError(t, err, "debe poder agregarse el producto %q", name)
	return out.Product
}

// ──────────────────────────────────────────────────────────────────────────────
// AddProduct
// ──────────────────────────────────────────────────────────────────────────────

// El producto creado conserva el stock de entrada y aparece exactamente una vez.
func TestAddProduct_ApareceUnaVezEnElListado(t *testing.T) {
	core := newTestCore(t)

	created := addProduct(t, core, "Croissant", 15, 25)
	assert.Equal(t, 25, created.Stock)
	assert.NotEmpty(t, created.ID)

	list := core.ListProducts()
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Croissant", list[0].Name)
}

// Sin ícono explícito se asigna el glifo genérico.
func TestAddProduct_IconoPorDefecto(t *testing.T) {
	core := newTestCore(t)

	created := addProduct(t, core, "Croissant", 15, 25)
	assert.Equal(t, "📦", created.Icon)
}

// Entradas fuera de rango fallan con error de validación y no mutan nada.
func TestAddProduct_Validaciones(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()

	cases := []struct {
		nombre string
		in     dto.CreateProductRequest
	}{
		{"nombre vacío", dto.CreateProductRequest{Name: "  ", Price: decimal.NewFromInt(10), Stock: 1}},
		{"precio negativo", dto.CreateProductRequest{Name: "Torta", Price: decimal.NewFromInt(-1), Stock: 1}},
		{"stock negativo", dto.CreateProductRequest{Name: "Torta", Price: decimal.NewFromInt(10), Stock: -1}},
	}
	for _, tc := range cases {
		_, err := core.AddProduct(ctx, tc.in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, tc.nombre)
	}
	assert.Empty(t, core.ListProducts(), "ninguna validación fallida debe crear productos")
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_AumentaYDisminuye(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()
	p := addProduct(t, core, "Croissant", 15, 10)

	out, err := core.AdjustStock(ctx, p.ID, dto.AdjustStockRequest{Direction: "decrease", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 6, out.Product.Stock)
	assert.Contains(t, out.Message, "Nuevo stock: 6")

	out, err = core.AdjustStock(ctx, p.ID, dto.AdjustStockRequest{Direction: "increase", Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 11, out.Product.Stock)
}

// Alias del dashboard original: "add" y "remove".
func TestAdjustStock_AliasAddRemove(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()
	p := addProduct(t, core, "Croissant", 15, 10)

	out, err := core.AdjustStock(ctx, p.ID, dto.AdjustStockRequest{Direction: "add", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 12, out.Product.Stock)

	out, err = core.AdjustStock(ctx, p.ID, dto.AdjustStockRequest{Direction: "remove", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 9, out.Product.Stock)
}

// Restar más de lo disponible falla con el faltante exacto y no muta el stock.
func TestAdjustStock_InsuficienteNoMuta(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()
	p := addProduct(t, core, "Croissant", 15, 3)

	_, err := core.AdjustStock(ctx, p.ID, dto.AdjustStockRequest{Direction: "decrease", Quantity: 7})
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 7, stockErr.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	after, err := core.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, after.Stock, "el stock no debe cambiar tras un ajuste rechazado")
}

func TestAdjustStock_EntradasInvalidas(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()
	p := addProduct(t, core, "Croissant", 15, 3)

	_, err := core.AdjustStock(ctx, p.ID, dto.AdjustStockRequest{Direction: "sideways", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = core.AdjustStock(ctx, p.ID, dto.AdjustStockRequest{Direction: "increase", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = core.AdjustStock(ctx, "no-existe", dto.AdjustStockRequest{Direction: "increase", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListLowStock
// ──────────────────────────────────────────────────────────────────────────────

// Stocks [0,3,6,5,12] con umbral 5 => subconjunto {0,3,5} ascendente.
func TestListLowStock_SubconjuntoAscendente(t *testing.T) {
	core := newTestCore(t)

	addProduct(t, core, "A", 10, 0)
	addProduct(t, core, "B", 10, 3)
	addProduct(t, core, "C", 10, 6)
	addProduct(t, core, "D", 10, 5)
	addProduct(t, core, "E", 10, 12)

	low := core.ListLowStock(5)
	require.Len(t, low, 3)
	assert.Equal(t, []int{0, 3, 5}, []int{low[0].Stock, low[1].Stock, low[2].Stock})
}

// Empates en stock se resuelven por orden de inserción.
func TestListLowStock_EmpatesPorOrdenDeInsercion(t *testing.T) {
	core := newTestCore(t)

	first := addProduct(t, core, "Primero", 10, 2)
	second := addProduct(t, core, "Segundo", 10, 2)

	low := core.ListLowStock(5)
	require.Len(t, low, 2)
	assert.Equal(t, first.ID, low[0].ID)
	assert.Equal(t, second.ID, low[1].ID)
}

// Umbral no positivo usa el valor por defecto (5).
func TestListLowStock_UmbralPorDefecto(t *testing.T) {
	core := newTestCore(t)

	addProduct(t, core, "Justo", 10, 5)
	addProduct(t, core, "Sobrado", 10, 6)

	low := core.ListLowStock(0)
	require.Len(t, low, 1)
	assert.Equal(t, "Justo", low[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateProduct / DeleteProduct
// ──────────────────────────────────────────────────────────────────────────────

// La edición no toca el stock: ese solo se mueve por ajuste o venta.
func TestUpdateProduct_NoTocaElStock(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()
	p := addProduct(t, core, "Croissant", 15, 25)

	newName := "Croissant de mantequilla"
	newPrice := decimal.NewFromInt(18)
	out, err := core.UpdateProduct(ctx, p.ID, dto.UpdateProductRequest{Name: &newName, Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, newName, out.Product.Name)
	assert.True(t, out.Product.Price.Equal(newPrice))
	assert.Equal(t, 25, out.Product.Stock)
}

func TestUpdateProduct_Validaciones(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()
	p := addProduct(t, core, "Croissant", 15, 25)

	empty := "   "
	_, err := core.UpdateProduct(ctx, p.ID, dto.UpdateProductRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negative := decimal.NewFromInt(-5)
	_, err = core.UpdateProduct(ctx, p.ID, dto.UpdateProductRequest{Price: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = core.UpdateProduct(ctx, "no-existe", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProduct_EliminaYDevuelveElRegistro(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()
	p := addProduct(t, core, "Croissant", 15, 25)

	out, err := core.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, out.Product.ID)
	assert.Contains(t, out.Message, "Croissant")
	assert.Empty(t, core.ListProducts())

	_, err = core.DeleteProduct(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ley de conservación del inventario
// ──────────────────────────────────────────────────────────────────────────────

// Lo vendido más el stock actual debe igualar todo lo ingresado menos lo
// retirado por ajustes (creación + aumentos - disminuciones).
func TestConservacionDeInventario(t *testing.T) {
	core := newTestCore(t)
	ctx := context.Background()
	p := addProduct(t, core, "Croissant", 15, 10)

	_, err := core.AdjustStock(ctx, p.ID, dto.AdjustStockRequest{Direction: "increase", Quantity: 5})
	require.NoError(t, err)
	_, err = core.RecordSale(ctx, dto.RecordSaleRequest{ProductID: p.ID, Quantity: 4})
	require.NoError(t, err)
	_, err = core.RecordSale(ctx, dto.RecordSaleRequest{ProductID: p.ID, Quantity: 3})
	require.NoError(t, err)
	_, err = core.AdjustStock(ctx, p.ID, dto.AdjustStockRequest{Direction: "decrease", Quantity: 2})
	require.NoError(t, err)

	sold := 0
	for _, s := range core.ListSales() {
		sold += s.Quantity
	}
	after, err := core.GetProduct(p.ID)
	require.NoError(t, err)

	ingresado := 10 + 5 - 2 // creación + aumento - retiro por ajuste
	assert.Equal(t, ingresado, sold+after.Stock)
}
