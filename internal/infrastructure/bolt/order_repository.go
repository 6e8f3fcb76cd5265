package bolt

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/tu-usuario/petshop-pos/internal/domain/entity"
	"github.com/tu-usuario/petshop-pos/internal/domain/repository"
)

// OrderRepo persistencia del historial de órdenes. Las órdenes nunca se
// actualizan ni se borran individualmente: solo se agregan, se listan o se
// reemplazan en bloque al importar un respaldo.
type OrderRepo struct {
	q Querier
}

var _ repository.OrderRepository = (*OrderRepo)(nil)

// NewOrderRepo crea el repositorio sobre el Querier dado.
func NewOrderRepo(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

func (r *OrderRepo) Create(o *entity.Order) error {
	value, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	return r.q.Update(func(tx *bbolt.Tx) error {
		return appendRecord(tx, bucketOrders, o.ID, value)
	})
}

// GetByID devuelve nil sin error si la orden no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	var order *entity.Order
	err := r.q.View(func(tx *bbolt.Tx) error {
		value := getRecord(tx, bucketOrders, id)
		if value == nil {
			return nil
		}
		order = &entity.Order{}
		return json.Unmarshal(value, order)
	})
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return order, nil
}

// List devuelve el historial completo en orden de inserción.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0)
	err := r.q.View(func(tx *bbolt.Tx) error {
		return forEachRecord(tx, bucketOrders, func(value []byte) error {
			var o entity.Order
			if err := json.Unmarshal(value, &o); err != nil {
				return err
			}
			orders = append(orders, &o)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ReplaceAll descarta el historial y lo reconstruye en el orden del slice.
func (r *OrderRepo) ReplaceAll(orders []*entity.Order) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		if err := resetCollection(tx, bucketOrders); err != nil {
			return err
		}
		for _, o := range orders {
			value, err := json.Marshal(o)
			if err != nil {
				return fmt.Errorf("marshal order: %w", err)
			}
			if err := appendRecord(tx, bucketOrders, o.ID, value); err != nil {
				return err
			}
		}
		return nil
	})
}
