package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smartsell/smartsell-api/internal/application/dto"
	"github.com/smartsell/smartsell-api/internal/domain"
	"github.com/smartsell/smartsell-api/internal/domain/entity"
)

// DefaultLowStockThreshold umbral de reposición cuando no se indica otro.
const DefaultLowStockThreshold = 5

// Direcciones de ajuste de stock.
const (
	DirectionIncrease = "increase"
	DirectionDecrease = "decrease"
)

// normalizeDirection acepta los alias "add"/"remove" del dashboard original.
func normalizeDirection(direction string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case DirectionIncrease, "add":
		return DirectionIncrease, nil
	case DirectionDecrease, "remove":
		return DirectionDecrease, nil
	default:
		return "", &domain.ValidationError{Field: "direction", Reason: `debe ser "increase" o "decrease"`}
	}
}

// AddProduct valida y persiste un producto nuevo. Devuelve el producto creado
// con mensaje de confirmación.
func (c *Core) AddProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductMutationResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "es requerido"}
	}
	if in.Price.IsNegative() {
		return nil, &domain.ValidationError{Field: "price", Reason: "no puede ser negativo"}
	}
	if in.Stock < 0 {
		return nil, &domain.ValidationError{Field: "stock", Reason: "no puede ser negativo"}
	}
	icon := in.Icon
	if icon == "" {
		icon = entity.DefaultIcon
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     in.Price,
		Stock:     in.Stock,
		Icon:      icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
	next := c.appendProduct(product)
	if err := c.saveProducts(ctx, next); err != nil {
		return nil, err
	}
	c.products = next

	return &dto.ProductMutationResponse{
		Success: true,
		Product: toProductResponse(product),
		Message: fmt.Sprintf("Producto %q agregado correctamente", product.Name),
	}, nil
}

// ListProducts devuelve todos los productos en orden de inserción.
func (c *Core) ListProducts() []dto.ProductResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]dto.ProductResponse, 0, len(c.products))
	for _, p := range c.products {
		items = append(items, toProductResponse(p))
	}
	return items
}

// GetProduct devuelve un producto por ID.
func (c *Core) GetProduct(id string) (*dto.ProductResponse, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, p := c.findProduct(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

// ListLowStock devuelve los productos con stock <= threshold, ordenados por
// stock ascendente (el faltante más urgente primero); empates en orden de
// inserción. threshold <= 0 usa el umbral por defecto.
func (c *Core) ListLowStock(threshold int) []dto.ProductResponse {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]dto.ProductResponse, 0)
	for _, p := range c.products {
		if p.Stock <= threshold {
			items = append(items, toProductResponse(p))
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Stock < items[j].Stock })
	return items
}

// UpdateProduct edita nombre, precio o ícono. El stock no se edita aquí:
// solo se mueve vía AdjustStock o RecordSale. Las ventas históricas no
// cambian (llevan su propia copia de nombre y precio).
func (c *Core) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductMutationResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "no puede quedar vacío"}
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, &domain.ValidationError{Field: "price", Reason: "no puede ser negativo"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i, p := c.findProduct(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	updated := p.Clone()
	if in.Name != nil {
		updated.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		updated.Price = *in.Price
	}
	if in.Icon != nil && *in.Icon != "" {
		updated.Icon = *in.Icon
	}
	updated.UpdatedAt = time.Now()

	next := c.replaceProduct(i, updated)
	if err := c.saveProducts(ctx, next); err != nil {
		return nil, err
	}
	c.products = next

	return &dto.ProductMutationResponse{
		Success: true,
		Product: toProductResponse(updated),
		Message: fmt.Sprintf("Producto %q actualizado correctamente", updated.Name),
	}, nil
}

// AdjustStock suma o resta unidades al stock de un producto.
// Una resta mayor al stock disponible falla con InsufficientStockError y no
// muta nada; el stock nunca queda negativo.
func (c *Core) AdjustStock(ctx context.Context, id string, in dto.AdjustStockRequest) (*dto.ProductMutationResponse, error) {
	direction, err := normalizeDirection(in.Direction)
	if err != nil {
		return nil, err
	}
	if in.Quantity < 1 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "debe ser un entero positivo"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i, p := c.findProduct(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}

	updated := p.Clone()
	var message string
	if direction == DirectionIncrease {
		updated.Stock += in.Quantity
		message = fmt.Sprintf("Se agregaron %d unidades. Nuevo stock: %d", in.Quantity, updated.Stock)
	} else {
		if in.Quantity > p.Stock {
			return nil, &domain.InsufficientStockError{Available: p.Stock, Requested: in.Quantity}
		}
		updated.Stock -= in.Quantity
		message = fmt.Sprintf("Se retiraron %d unidades. Nuevo stock: %d", in.Quantity, updated.Stock)
	}
	updated.UpdatedAt = time.Now()

	next := c.replaceProduct(i, updated)
	if err := c.saveProducts(ctx, next); err != nil {
		return nil, err
	}
	c.products = next

	return &dto.ProductMutationResponse{
		Success: true,
		Product: toProductResponse(updated),
		Message: message,
	}, nil
}

// DeleteProduct elimina un producto definitivamente y lo devuelve para el
// mensaje de confirmación. No toca las ventas históricas: cada venta lleva
// su copia de nombre y precio.
func (c *Core) DeleteProduct(ctx context.Context, id string) (*dto.ProductMutationResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, p := c.findProduct(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}

	next := c.removeProduct(i)
	if err := c.saveProducts(ctx, next); err != nil {
		return nil, err
	}
	c.products = next

	return &dto.ProductMutationResponse{
		Success: true,
		Product: toProductResponse(p),
		Message: fmt.Sprintf("Producto %q eliminado correctamente", p.Name),
	}, nil
}
