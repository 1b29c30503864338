package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartsell/smartsell-api/internal/application/ledger"
	"github.com/smartsell/smartsell-api/internal/domain/entity"
)

var (
	_ ledger.ProductStore = (*Store)(nil)
	_ ledger.SaleStore    = (*Store)(nil)
)

// Store persiste instantáneas completas en dos tablas. La columna position
// conserva el orden de inserción de la colección, que es parte del contrato
// del almacenamiento (los listados lo respetan).
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el store con el pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema crea las tablas si no existen. Idempotente; se llama al arrancar.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS products (
	position    INTEGER PRIMARY KEY,
	id          TEXT NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	price       NUMERIC(14,2) NOT NULL,
	stock       INTEGER NOT NULL CHECK (stock >= 0),
	icon        TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS sales (
	position      INTEGER PRIMARY KEY,
	id            TEXT NOT NULL UNIQUE,
	product_id    TEXT NOT NULL,
	product_name  TEXT NOT NULL,
	unit_price    NUMERIC(14,2) NOT NULL,
	quantity      INTEGER NOT NULL CHECK (quantity >= 1),
	total         NUMERIC(14,2) NOT NULL,
	sold_at       TIMESTAMPTZ NOT NULL
);`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("postgres: crear esquema: %w", err)
	}
	return nil
}

// LoadProducts lee la tabla completa en orden de inserción.
func (s *Store) LoadProducts(ctx context.Context) ([]*entity.Product, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, price, stock, icon, created_at, updated_at
		 FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("postgres: cargar productos: %w", err)
	}
	defer rows.Close()

	products := []*entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Icon, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("postgres: escanear producto: %w", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: cargar productos: %w", err)
	}
	return products, nil
}

// SaveProducts reescribe la tabla con la instantánea, en una transacción.
func (s *Store) SaveProducts(ctx context.Context, products []*entity.Product) error {
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM products`); err != nil {
			return err
		}
		for i, p := range products {
			if _, err := tx.Exec(ctx,
				`INSERT INTO products (position, id, name, price, stock, icon, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				i, p.ID, p.Name, p.Price, p.Stock, p.Icon, p.CreatedAt, p.UpdatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres: guardar productos: %w", err)
	}
	return nil
}

// LoadSales lee el libro completo en orden de registro.
func (s *Store) LoadSales(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, product_id, product_name, unit_price, quantity, total, sold_at
		 FROM sales ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("postgres: cargar ventas: %w", err)
	}
	defer rows.Close()

	sales := []*entity.Sale{}
	for rows.Next() {
		var sale entity.Sale
		if err := rows.Scan(&sale.ID, &sale.ProductID, &sale.ProductName, &sale.UnitPrice, &sale.Quantity, &sale.Total, &sale.Timestamp); err != nil {
			return nil, fmt.Errorf("postgres: escanear venta: %w", err)
		}
		sales = append(sales, &sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: cargar ventas: %w", err)
	}
	return sales, nil
}

// SaveSales reescribe el libro con la instantánea, en una transacción.
func (s *Store) SaveSales(ctx context.Context, sales []*entity.Sale) error {
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM sales`); err != nil {
			return err
		}
		for i, sale := range sales {
			if _, err := tx.Exec(ctx,
				`INSERT INTO sales (position, id, product_id, product_name, unit_price, quantity, total, sold_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				i, sale.ID, sale.ProductID, sale.ProductName, sale.UnitPrice, sale.Quantity, sale.Total, sale.Timestamp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres: guardar ventas: %w", err)
	}
	return nil
}

// inTx ejecuta fn dentro de una transacción: Commit si todo ok, Rollback si falla.
func (s *Store) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
