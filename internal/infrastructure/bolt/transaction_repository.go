package bolt

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/tu-usuario/petshop-pos/internal/domain/entity"
	"github.com/tu-usuario/petshop-pos/internal/domain/repository"
)

// TransactionRepo persistencia del libro mayor. Solo agrega y lista: los
// asientos son inmutables una vez registrados.
type TransactionRepo struct {
	q Querier
}

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// NewTransactionRepo crea el repositorio sobre el Querier dado.
func NewTransactionRepo(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func (r *TransactionRepo) Create(t *entity.Transaction) error {
	value, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal transaction: %w", err)
	}
	return r.q.Update(func(tx *bbolt.Tx) error {
		return appendRecord(tx, bucketTransactions, t.ID, value)
	})
}

// List devuelve el libro mayor completo en orden de inserción.
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	transactions := make([]*entity.Transaction, 0)
	err := r.q.View(func(tx *bbolt.Tx) error {
		return forEachRecord(tx, bucketTransactions, func(value []byte) error {
			var t entity.Transaction
			if err := json.Unmarshal(value, &t); err != nil {
				return err
			}
			transactions = append(transactions, &t)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

// ReplaceAll descarta el libro mayor y lo reconstruye en el orden del slice.
func (r *TransactionRepo) ReplaceAll(transactions []*entity.Transaction) error {
	return r.q.Update(func(tx *bbolt.Tx) error {
		if err := resetCollection(tx, bucketTransactions); err != nil {
			return err
		}
		for _, t := range transactions {
			value, err := json.Marshal(t)
			if err != nil {
				return fmt.Errorf("marshal transaction: %w", err)
			}
			if err := appendRecord(tx, bucketTransactions, t.ID, value); err != nil {
				return err
			}
		}
		return nil
	})
}
