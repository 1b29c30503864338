// Package bolt implementa el colaborador de persistencia sobre bbolt, una
// base de datos embebida de documentos: un bucket por colección y cada
// registro como documento JSON. Es el reemplazo del backend MongoDB del
// dashboard original sin requerir un servidor externo.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/smartsell/smartsell-api/internal/application/ledger"
	"github.com/smartsell/smartsell-api/internal/domain/entity"
	bbolt "go.etcd.io/bbolt"
)

var (
	_ ledger.ProductStore = (*Store)(nil)
	_ ledger.SaleStore    = (*Store)(nil)
)

var (
	bucketProducts = []byte("products")
	bucketSales    = []byte("sales")
)

// Store persiste instantáneas completas: cada Save reescribe el bucket.
// La clave es la posición en la colección (cero-padded) para que el cursor
// del bucket devuelva los documentos en el orden de inserción original.
type Store struct {
	db *bbolt.DB
}

// NewStore abre (o crea) el archivo de la base de datos.
func NewStore(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: abrir %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close cierra el archivo de la base de datos.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadProducts lee el bucket de productos; vacío si nunca se escribió.
func (s *Store) LoadProducts(_ context.Context) ([]*entity.Product, error) {
	products := []*entity.Product{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		return forEachDoc(tx, bucketProducts, func(doc []byte) error {
			var p entity.Product
			if err := json.Unmarshal(doc, &p); err != nil {
				return fmt.Errorf("decodificar producto: %w", err)
			}
			products = append(products, &p)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("bolt: cargar productos: %w", err)
	}
	return products, nil
}

// SaveProducts reescribe el bucket de productos con la instantánea.
func (s *Store) SaveProducts(_ context.Context, products []*entity.Product) error {
	docs := make([]any, len(products))
	for i, p := range products {
		docs[i] = p
	}
	if err := s.rewriteBucket(bucketProducts, docs); err != nil {
		return fmt.Errorf("bolt: guardar productos: %w", err)
	}
	return nil
}

// LoadSales lee el bucket de ventas; vacío si nunca se escribió.
func (s *Store) LoadSales(_ context.Context) ([]*entity.Sale, error) {
	sales := []*entity.Sale{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		return forEachDoc(tx, bucketSales, func(doc []byte) error {
			var sale entity.Sale
			if err := json.Unmarshal(doc, &sale); err != nil {
				return fmt.Errorf("decodificar venta: %w", err)
			}
			sales = append(sales, &sale)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("bolt: cargar ventas: %w", err)
	}
	return sales, nil
}

// SaveSales reescribe el bucket de ventas con la instantánea.
func (s *Store) SaveSales(_ context.Context, sales []*entity.Sale) error {
	docs := make([]any, len(sales))
	for i, sale := range sales {
		docs[i] = sale
	}
	if err := s.rewriteBucket(bucketSales, docs); err != nil {
		return fmt.Errorf("bolt: guardar ventas: %w", err)
	}
	return nil
}

// rewriteBucket elimina y vuelve a crear el bucket con los documentos en
// orden, todo dentro de una transacción bbolt (commit o nada).
func (s *Store) rewriteBucket(name []byte, docs []any) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		b, err := tx.CreateBucket(name)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			data, err := json.Marshal(doc)
			if err != nil {
				return err
			}
			if err := b.Put(positionKey(i), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// forEachDoc recorre el bucket en orden de clave; bucket inexistente = vacío.
func forEachDoc(tx *bbolt.Tx, name []byte, fn func(doc []byte) error) error {
	b := tx.Bucket(name)
	if b == nil {
		return nil
	}
	return b.ForEach(func(_, v []byte) error { return fn(v) })
}

func positionKey(i int) []byte {
	return []byte(fmt.Sprintf("%010d", i))
}
