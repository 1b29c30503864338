// Package jsonfile implementa el colaborador de persistencia sobre dos
// archivos JSON planos (products.json y sales.json), como el backend de
// archivos del dashboard original.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartsell/smartsell-api/internal/application/ledger"
	"github.com/smartsell/smartsell-api/internal/domain/entity"
)

var (
	_ ledger.ProductStore = (*Store)(nil)
	_ ledger.SaleStore    = (*Store)(nil)
)

const (
	productsFile = "products.json"
	salesFile    = "sales.json"
)

// Store persiste cada colección como un array JSON en su propio archivo.
// La escritura es atómica (archivo temporal + rename) para que un proceso
// caído a mitad de escritura no corrompa los datos.
type Store struct {
	productsPath string
	salesPath    string
}

// NewStore crea el directorio de datos si no existe.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonfile: crear directorio %s: %w", dir, err)
	}
	return &Store{
		productsPath: filepath.Join(dir, productsFile),
		salesPath:    filepath.Join(dir, salesFile),
	}, nil
}

// LoadProducts lee products.json; si el archivo no existe devuelve vacío.
func (s *Store) LoadProducts(_ context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := readJSON(s.productsPath, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []*entity.Product{}
	}
	return products, nil
}

// SaveProducts reemplaza products.json con la instantánea.
func (s *Store) SaveProducts(_ context.Context, products []*entity.Product) error {
	return writeJSON(s.productsPath, products)
}

// LoadSales lee sales.json; si el archivo no existe devuelve vacío.
func (s *Store) LoadSales(_ context.Context) ([]*entity.Sale, error) {
	var sales []*entity.Sale
	if err := readJSON(s.salesPath, &sales); err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []*entity.Sale{}
	}
	return sales, nil
}

// SaveSales reemplaza sales.json con la instantánea.
func (s *Store) SaveSales(_ context.Context, sales []*entity.Sale) error {
	return writeJSON(s.salesPath, sales)
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("jsonfile: leer %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("jsonfile: decodificar %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: codificar %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("jsonfile: escribir %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("jsonfile: renombrar %s: %w", tmp, err)
	}
	return nil
}
