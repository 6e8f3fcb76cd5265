package repository

import "github.com/tu-usuario/petshop-pos/internal/domain/entity"

// OrderRepository puerto de persistencia para Order. Las órdenes son
// inmutables: no hay Update ni Delete individual, solo el reemplazo masivo
// que usa la restauración de respaldos.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List() ([]*entity.Order, error)
	ReplaceAll(orders []*entity.Order) error
}
