package bolt

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/tu-usuario/petshop-pos/internal/domain/entity"
	"github.com/tu-usuario/petshop-pos/internal/domain/repository"
)

// ProductRepo persistencia del catálogo de productos.
type ProductRepo struct {
	q Querier
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

// NewProductRepo crea el repositorio sobre el Querier dado.
func NewProductRepo(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func (r *ProductRepo) Create(p *entity.Product) error {
	value, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	return r.q.Update(func(tx *bbolt.Tx) error {
		return appendRecord(tx, bucketProducts, p.ID, value)
	})
}

// GetByID devuelve nil sin error si el producto no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var product *entity.Product
	err := r.q.View(func(tx *bbolt.Tx) error {
		value := getRecord(tx, bucketProducts, id)
		if value == nil {
			return nil
		}
		product = &entity.Product{}
		return json.Unmarshal(value, product)
	})
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return product, nil
}

// GetByBarcode devuelve el primer producto con ese código de barras, o nil
// sin error si ninguno lo tiene.
func (r *ProductRepo) GetByBarcode(code string) (*entity.Product, error) {
	var found *entity.Product
	err := r.q.View(func(tx *bbolt.Tx) error {
		return forEachRecord(tx, bucketProducts, func(value []byte) error {
			if found != nil {
				return nil
			}
			var p entity.Product
			if err := json.Unmarshal(value, &p); err != nil {
				return err
			}
			if p.Barcode == code {
				found = &p
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("get product by barcode: %w", err)
	}
	return found, nil
}

// List devuelve el catálogo completo en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	products := make([]*entity.Product, 0)
	err := r.q.View(func(tx *bbolt.Tx) error {
		return forEachRecord(tx, bucketProducts, func(value []byte) error {
			var p entity.Product
			if err := json.Unmarshal(value, &p); err != nil {
				return err
			}
			products = append(products, &p)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepo) Update(p *entity.Product) error {
	value, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	return r.q.Update(func(tx *bbolt.Tx) error {
		return updateRecord(tx, bucketProducts, p.ID, value)
	})
}

func (r *ProductRepo) Delete(id string) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		return deleteRecord(tx, bucketProducts, id)
	})
}

// ReplaceAll descarta el catálogo y lo reconstruye con los registros dados,
// en el orden del slice.
func (r *ProductRepo) ReplaceAll(products []*entity.Product) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		if err := resetCollection(tx, bucketProducts); err != nil {
			return err
		}
		for _, p := range products {
			value, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("marshal product: %w", err)
			}
			if err := appendRecord(tx, bucketProducts, p.ID, value); err != nil {
				return err
			}
		}
		return nil
	})
}
