package repository

import "github.com/tu-usuario/petshop-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// List devuelve los productos en orden de inserción; ReplaceAll sustituye la
// colección completa respetando el orden recibido (restauración de respaldos).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(code string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	ReplaceAll(products []*entity.Product) error
}
