package repository

import "github.com/tu-usuario/petshop-pos/internal/domain/entity"

// TransactionRepository puerto de persistencia para el libro mayor.
// Solo agrega y lee; el único camino de escritura destructiva es ReplaceAll.
type TransactionRepository interface {
	Create(transaction *entity.Transaction) error
	List() ([]*entity.Transaction, error)
	ReplaceAll(transactions []*entity.Transaction) error
}
